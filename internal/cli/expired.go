package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/inventory"
)

func (a *app) newExpiredCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "expired",
		Short: "List items that have reached their expiration day",
		Long: `Expired lists the items whose expiration day is on or before the given
day, sorted by name. Items stay in their slots. An item counts as expired on
its expiration day itself.

Example:
  stockroom expired
  stockroom expired --day 2026-12-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := today()
			if day != "" {
				var err error
				if current, err = parseDay(day); err != nil {
					return err
				}
			}
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				return a.printPlacements(cmd.OutOrStdout(), inv.ListExpired(current))
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "current day as YYYY-MM-DD or day number (default: today)")
	return cmd
}
