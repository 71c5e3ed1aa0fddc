package inventory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Snapshot captures the inventory's space, stored items in position order,
// and the strategy cursor when the strategy has one.
func (inv *Inventory) Snapshot() types.Snapshot {
	snap := types.Snapshot{
		Space:      inv.space,
		Strategy:   inv.strategy.Name(),
		Placements: inv.Placements(),
	}
	if cs, ok := inv.strategy.(types.CursorStrategy); ok {
		cursor := cs.Cursor()
		snap.Cursor = &cursor
	}
	return snap
}

// Restore rebuilds an inventory from snap using strategy. The stored cursor
// is applied only when strategy is a cursor strategy of the same name as the
// one that produced the snapshot. Every placement goes through Insert, so a
// snapshot that breaks slot exclusivity or id uniqueness is rejected.
func Restore(snap types.Snapshot, strategy types.Strategy, opts ...Option) (*Inventory, error) {
	inv, err := New(snap.Space, strategy, opts...)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	for _, p := range snap.Placements {
		if p.Item.ItemID == "" {
			return nil, fmt.Errorf("restore item at %s: %w", p.Position, types.ErrInvalidData)
		}
		if _, err := inv.Insert(p.Position, p.Item); err != nil {
			return nil, fmt.Errorf("restore: %w", err)
		}
	}
	if cs, ok := strategy.(types.CursorStrategy); ok && snap.Cursor != nil && snap.Strategy == strategy.Name() {
		if err := cs.Seek(inv.space, *snap.Cursor); err != nil {
			return nil, fmt.Errorf("restore: %w", err)
		}
	}
	inv.logger.Debug("restored inventory",
		zap.String("strategy", strategy.Name()),
		zap.Int("items", inv.Len()),
		zap.Int("free", inv.FreeCount()))
	return inv, nil
}
