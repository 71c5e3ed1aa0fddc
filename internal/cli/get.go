package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/inventory"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				p, err := inv.SearchByID(args[0])
				if err != nil {
					return err
				}
				if a.jsonMode {
					return printJSON(cmd.OutOrStdout(), p)
				}
				fmt.Fprintln(cmd.OutOrStdout(), describePlacement(p))
				return nil
			})
		},
	}
}

func (a *app) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find every item with an exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				return a.printPlacements(cmd.OutOrStdout(), inv.SearchByName(args[0]))
			})
		},
	}
}

func (a *app) newWhereCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "where [id]",
		Short: "Print the position of an item",
		Long: `Where prints the slot holding the item with the given id, or with --name
the slots of every item with that exact name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (name != "") {
				return fmt.Errorf("where needs exactly one of an id or --name")
			}
			return a.withInventory(false, func(inv *inventory.Inventory) error {
				var positions []types.Position
				if name != "" {
					positions = inv.PositionsNamed(name)
				} else {
					pos, err := inv.PositionOf(args[0])
					if err != nil {
						return err
					}
					positions = []types.Position{pos}
				}

				out := cmd.OutOrStdout()
				if a.jsonMode {
					return printJSON(out, positions)
				}
				if len(positions) == 0 {
					fmt.Fprintln(out, "No items")
				}
				for _, p := range positions {
					fmt.Fprintln(out, p)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "look up every item with this name")
	return cmd
}
