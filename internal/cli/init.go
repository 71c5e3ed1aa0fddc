package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockroom storage",
		Long: `Create the configuration directory with a default config.yaml, then
initialize the data directory with an empty inventory sized from the config.
Running init again leaves existing configuration and items untouched.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := ensureDefaultConfigFile(a.configDir, a.dataDir); err != nil {
		return systemError{err}
	}
	// Pick up the file just written.
	if err := a.load(cmd); err != nil {
		return err
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Fix the space on first init so later config edits cannot strand items.
	if !s.found {
		if err := s.save(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if a.jsonMode {
		return printJSON(out, map[string]any{
			"config_dir": a.configDir,
			"data_dir":   s.dataDir,
			"space":      s.inv.Space(),
			"strategy":   s.inv.Strategy().Name(),
		})
	}
	space := s.inv.Space()
	fmt.Fprintln(out, "Stockroom initialized successfully")
	fmt.Fprintln(out, "  config:  ", a.configDir)
	fmt.Fprintln(out, "  data:    ", s.dataDir)
	fmt.Fprintf(out, "  space:    %d rows x %d shelves x %d zones\n", space.Rows, space.Shelves, space.Zones)
	fmt.Fprintln(out, "  strategy:", s.inv.Strategy().Name())
	return nil
}
