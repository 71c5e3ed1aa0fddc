// Package cli implements the stockroom command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/logging"
	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state loaded before a subcommand runs.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool

	settings settings
	logger   *zap.Logger
}

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "stockroom",
		Short:   "Slot inventory for a shelved storage space",
		Long:    "Stockroom places goods into row/shelf/zone slots using a configurable\nallocation strategy, and finds, lists, and removes them again.",
		Version: stockroom.Version,
		// Errors are reported once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(a.logger)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(
		a.newVersionCmd(),
		a.newInitCmd(),
		a.newAddCmd(),
		a.newAllocateCmd(),
		a.newRemoveCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newGetCmd(),
		a.newFindCmd(),
		a.newWhereCmd(),
		a.newExpiredCmd(),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stockroom:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// load resolves the config directory, reads config.yaml, and builds the
// logger for this invocation.
func (a *app) load(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return systemError{fmt.Errorf("resolve config dir: %w", err)}
	}
	a.configDir = configDir

	s, err := loadSettings(configDir)
	if err != nil {
		return systemError{err}
	}
	a.settings = s

	logger, err := logging.New(logging.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.logger = logger
	return nil
}

// systemError marks failures of the environment (filesystem, storage) as
// opposed to bad input.
type systemError struct {
	err error
}

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
