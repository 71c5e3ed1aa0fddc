package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/inventory"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// itemFlags describes a new item on the command line.
type itemFlags struct {
	id       string
	name     string
	quantity int
	quality  string
	expires  string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "item name (required)")
	cmd.Flags().StringVar(&f.id, "id", "", "item id (default: generated)")
	cmd.Flags().IntVar(&f.quantity, "quantity", 1, "number of units")
	cmd.Flags().StringVar(&f.quality, "quality", string(types.QualityNew), "condition: new, good, worn, damaged")
	cmd.Flags().StringVar(&f.expires, "expires", "", "expiration as YYYY-MM-DD or day number (default: never)")
	_ = cmd.MarkFlagRequired("name")
}

func (f *itemFlags) item() (types.Item, error) {
	quality, err := types.ParseQuality(f.quality)
	if err != nil {
		return types.Item{}, err
	}
	expires := types.NeverExpires
	if f.expires != "" {
		if expires, err = parseDay(f.expires); err != nil {
			return types.Item{}, err
		}
	}
	return types.Item{
		ItemID:        f.id,
		Name:          f.name,
		Quantity:      f.quantity,
		Quality:       quality,
		ExpirationDay: expires,
	}, nil
}

func (a *app) newAddCmd() *cobra.Command {
	var f itemFlags
	var at string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new item",
		Long: `Add stores an item in the slot chosen by the configured allocation
strategy. With --at the item goes into that slot directly and the strategy
is not consulted.

Example:
  stockroom add --name "Hex bolts" --quantity 200
  stockroom add --name Milk --quality good --expires 2026-11-02
  stockroom add --name Crate --at 0,3,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := f.item()
			if err != nil {
				return err
			}
			return a.withInventory(true, func(inv *inventory.Inventory) error {
				var placed types.Placement
				if at != "" {
					pos, err := types.ParsePosition(at)
					if err != nil {
						return err
					}
					stored, err := inv.Insert(pos, item)
					if err != nil {
						return err
					}
					placed = types.Placement{Position: pos, Item: stored}
				} else {
					placed, err = inv.Add(item)
					if err != nil {
						return err
					}
				}
				return a.printPlacement(cmd.OutOrStdout(), "Stored", placed)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "place directly at row,shelf,zone")
	return cmd
}

func (a *app) newAllocateCmd() *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Show where the strategy would place an item",
		Long: `Allocate asks the configured strategy for a slot for the described item
without storing it. A round-robin cursor still advances, and the advance is
saved, so the next add continues after the reported slot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := f.item()
			if err != nil {
				return err
			}
			return a.withInventory(true, func(inv *inventory.Inventory) error {
				pos, err := inv.AllocateNewItem(item)
				if err != nil {
					return err
				}
				if a.jsonMode {
					return printJSON(cmd.OutOrStdout(), map[string]any{"position": pos})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Next position for %q: %s\n", item.Name, pos)
				return nil
			})
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) newRemoveCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an item by id or position",
		Long: `Remove takes an item out of its slot, identified either by its id or by
the slot position with --at.

Example:
  stockroom remove 0190f5a2-7c1e-7b3a-9d4e-2f6a8b1c3d5e
  stockroom remove --at 2,0,7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (at != "") {
				return fmt.Errorf("remove needs exactly one of an id or --at")
			}
			return a.withInventory(true, func(inv *inventory.Inventory) error {
				var removed types.Placement
				if at != "" {
					pos, err := types.ParsePosition(at)
					if err != nil {
						return err
					}
					item, err := inv.RemoveAt(pos)
					if err != nil {
						return err
					}
					removed = types.Placement{Position: pos, Item: item}
				} else {
					var err error
					if removed, err = inv.RemoveByID(args[0]); err != nil {
						return err
					}
				}
				return a.printPlacement(cmd.OutOrStdout(), "Removed", removed)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "remove the item at row,shelf,zone")
	return cmd
}
