package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/inventory"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored items sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				return a.printPlacements(cmd.OutOrStdout(), inv.DisplaySorted())
			})
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every occupied slot in position order",
		Long: `Show prints the space, the strategy, and each occupied slot in row,
shelf, zone order. With --json the full stored snapshot is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				out := cmd.OutOrStdout()
				if a.jsonMode {
					return printJSON(out, inv.Snapshot())
				}
				space := inv.Space()
				fmt.Fprintf(out, "Space: %d x %d x %d, strategy: %s, used: %d, free: %d\n",
					space.Rows, space.Shelves, space.Zones, inv.Strategy().Name(), inv.Len(), inv.FreeCount())
				for _, p := range inv.Placements() {
					fmt.Fprintln(out, describePlacement(p))
				}
				return nil
			})
		},
	}
}
