package inventory

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Compile-time interface check.
var _ types.CursorStrategy = (*RoundRobin)(nil)

// RoundRobin hands out free positions in enumeration order starting at a
// cursor, wrapping past the last position back to the first. After each
// allocation the cursor moves to the position just past the one returned,
// so consecutive allocations spread across the space. Removals and direct
// insertions never move the cursor.
//
// The zero value starts at the first position of any space.
type RoundRobin struct {
	cursor types.Position
}

// NewRoundRobin returns a RoundRobin whose cursor is at the first position.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name implements types.Strategy.
func (r *RoundRobin) Name() string { return types.StrategyRoundRobin }

// Allocate implements types.Strategy.
func (r *RoundRobin) Allocate(view types.OccupancyView) (types.Position, error) {
	space := view.Space()
	n := space.Size()
	if n == 0 || view.FreeCount() == 0 {
		return types.Position{}, types.ErrNoSpaceAvailable
	}

	start := 0
	if space.Contains(r.cursor) {
		start = space.Index(r.cursor)
	}
	for step := 0; step < n; step++ {
		idx := (start + step) % n
		p := space.At(idx)
		if view.IsFree(p) {
			r.cursor = space.At((idx + 1) % n)
			return p, nil
		}
	}
	return types.Position{}, types.ErrNoSpaceAvailable
}

// Cursor implements types.CursorStrategy.
func (r *RoundRobin) Cursor() types.Position { return r.cursor }

// Seek implements types.CursorStrategy.
func (r *RoundRobin) Seek(space types.Space, p types.Position) error {
	if !space.Contains(p) {
		return fmt.Errorf("seek to %s: %w", p, types.ErrInvalidPosition)
	}
	r.cursor = p
	return nil
}
