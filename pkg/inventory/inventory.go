package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Inventory maps every position of its space to an optional item.
// Slots are an arena indexed by Space.Index; byID indexes the same arena.
type Inventory struct {
	space    types.Space
	strategy types.Strategy
	slots    []*types.Item
	byID     map[string]int
	logger   *zap.Logger
	newID    func() (string, error)
}

// Option configures inventory construction.
type Option func(*Inventory)

// WithLogger sets the logger used for allocation and mutation records.
func WithLogger(logger *zap.Logger) Option {
	return func(inv *Inventory) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID v7 generator used for items inserted
// without an id.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(inv *Inventory) {
		if gen != nil {
			inv.newID = gen
		}
	}
}

// New creates an empty inventory over space that places items with strategy.
// Returns ErrInvalidSpace if a dimension is not positive or the space holds
// more than types.MaxSlots positions, and ErrStrategyUnknown if strategy is
// nil.
func New(space types.Space, strategy types.Strategy, opts ...Option) (*Inventory, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		return nil, types.ErrStrategyUnknown
	}
	inv := &Inventory{
		space:    space,
		strategy: strategy,
		slots:    make([]*types.Item, space.Size()),
		byID:     make(map[string]int),
		logger:   zap.NewNop(),
		newID:    generateUUID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(inv)
		}
	}
	return inv, nil
}

// generateUUID generates a new UUID v7 for item IDs.
func generateUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return id.String(), nil
}

// Space returns the valid position space.
func (inv *Inventory) Space() types.Space { return inv.space }

// Strategy returns the configured allocation strategy.
func (inv *Inventory) Strategy() types.Strategy { return inv.strategy }

// Len returns the number of stored items, which always equals the number of
// occupied positions.
func (inv *Inventory) Len() int { return len(inv.byID) }

// FreeCount returns the number of free positions.
func (inv *Inventory) FreeCount() int { return inv.space.Size() - len(inv.byID) }

// AllocateNewItem asks the strategy for a free position for item without
// storing it. The caller commits with Insert. The item is validated first so
// that a rejected item does not move a strategy cursor.
//
// Returns ErrNoSpaceAvailable when the strategy finds no free position and
// ErrDuplicateID when item carries an id that is already stored.
func (inv *Inventory) AllocateNewItem(item types.Item) (types.Position, error) {
	if err := item.Validate(); err != nil {
		return types.Position{}, fmt.Errorf("allocate %q: %w", item.Name, err)
	}
	if item.ItemID != "" {
		if _, ok := inv.byID[item.ItemID]; ok {
			return types.Position{}, fmt.Errorf("allocate %s: %w", item.ItemID, types.ErrDuplicateID)
		}
	}

	pos, err := inv.strategy.Allocate(occupancy{inv: inv})
	if err != nil {
		inv.logger.Debug("allocation failed",
			zap.String("strategy", inv.strategy.Name()),
			zap.String("name", item.Name),
			zap.Error(err))
		return types.Position{}, fmt.Errorf("allocate %q: %w", item.Name, err)
	}
	inv.logger.Debug("allocated position",
		zap.String("strategy", inv.strategy.Name()),
		zap.String("name", item.Name),
		zap.Stringer("position", pos))
	return pos, nil
}

// Insert stores item at pos and returns the stored copy, whose ItemID is
// assigned when item had none. Direct insertion does not move any strategy
// cursor.
//
// Fails with ErrInvalidPosition when pos is outside the space,
// ErrPositionOccupied when the slot holds an item, and ErrDuplicateID when
// the id is already stored. On failure the inventory is unchanged.
func (inv *Inventory) Insert(pos types.Position, item types.Item) (types.Item, error) {
	if !inv.space.Contains(pos) {
		return types.Item{}, fmt.Errorf("insert at %s: %w", pos, types.ErrInvalidPosition)
	}
	if err := item.Validate(); err != nil {
		return types.Item{}, fmt.Errorf("insert %q: %w", item.Name, err)
	}
	idx := inv.space.Index(pos)
	if inv.slots[idx] != nil {
		return types.Item{}, fmt.Errorf("insert at %s: %w", pos, types.ErrPositionOccupied)
	}
	if item.ItemID == "" {
		id, err := inv.newID()
		if err != nil {
			return types.Item{}, err
		}
		item.ItemID = id
	}
	if _, ok := inv.byID[item.ItemID]; ok {
		return types.Item{}, fmt.Errorf("insert %s: %w", item.ItemID, types.ErrDuplicateID)
	}

	stored := item
	inv.slots[idx] = &stored
	inv.byID[item.ItemID] = idx

	inv.logger.Debug("inserted item",
		zap.String("item_id", item.ItemID),
		zap.String("name", item.Name),
		zap.Stringer("position", pos))
	return item, nil
}

// Add allocates a position for item and inserts it there in one call.
func (inv *Inventory) Add(item types.Item) (types.Placement, error) {
	pos, err := inv.AllocateNewItem(item)
	if err != nil {
		return types.Placement{}, err
	}
	stored, err := inv.Insert(pos, item)
	if err != nil {
		return types.Placement{}, err
	}
	return types.Placement{Position: pos, Item: stored}, nil
}

// RemoveAt detaches and returns the item at pos, leaving the slot free.
// Returns ErrInvalidPosition when pos is outside the space and ErrNotFound
// when the slot is empty.
func (inv *Inventory) RemoveAt(pos types.Position) (types.Item, error) {
	if !inv.space.Contains(pos) {
		return types.Item{}, fmt.Errorf("remove at %s: %w", pos, types.ErrInvalidPosition)
	}
	idx := inv.space.Index(pos)
	stored := inv.slots[idx]
	if stored == nil {
		return types.Item{}, fmt.Errorf("remove at %s: %w", pos, types.ErrNotFound)
	}
	inv.detach(idx)
	return *stored, nil
}

// RemoveByID detaches and returns the item with id along with the position
// it occupied. Returns ErrNotFound when no stored item has that id.
func (inv *Inventory) RemoveByID(id string) (types.Placement, error) {
	idx, ok := inv.byID[id]
	if !ok {
		return types.Placement{}, fmt.Errorf("remove %s: %w", id, types.ErrNotFound)
	}
	stored := inv.slots[idx]
	inv.detach(idx)
	return types.Placement{Position: inv.space.At(idx), Item: *stored}, nil
}

func (inv *Inventory) detach(idx int) {
	stored := inv.slots[idx]
	inv.slots[idx] = nil
	delete(inv.byID, stored.ItemID)

	inv.logger.Debug("removed item",
		zap.String("item_id", stored.ItemID),
		zap.String("name", stored.Name),
		zap.Stringer("position", inv.space.At(idx)))
}

// SearchByID returns the item with id and its position.
// Returns ErrNotFound when no stored item has that id.
func (inv *Inventory) SearchByID(id string) (types.Placement, error) {
	idx, ok := inv.byID[id]
	if !ok {
		return types.Placement{}, fmt.Errorf("search %s: %w", id, types.ErrNotFound)
	}
	return types.Placement{Position: inv.space.At(idx), Item: *inv.slots[idx]}, nil
}

// SearchByName returns every stored item whose name equals name exactly.
// The result is empty, not nil, when nothing matches.
func (inv *Inventory) SearchByName(name string) []types.Placement {
	out := []types.Placement{}
	for idx, stored := range inv.slots {
		if stored != nil && stored.Name == name {
			out = append(out, types.Placement{Position: inv.space.At(idx), Item: *stored})
		}
	}
	sortByName(out)
	return out
}

// PositionOf returns the position of the item with id.
// Returns ErrNotFound when no stored item has that id.
func (inv *Inventory) PositionOf(id string) (types.Position, error) {
	p, err := inv.SearchByID(id)
	if err != nil {
		return types.Position{}, err
	}
	return p.Position, nil
}

// PositionsNamed returns the positions of every item named name, in the same
// order as SearchByName.
func (inv *Inventory) PositionsNamed(name string) []types.Position {
	matches := inv.SearchByName(name)
	out := make([]types.Position, len(matches))
	for i, m := range matches {
		out[i] = m.Position
	}
	return out
}

// Placements returns every stored item in position order.
func (inv *Inventory) Placements() []types.Placement {
	out := make([]types.Placement, 0, len(inv.byID))
	for idx, stored := range inv.slots {
		if stored != nil {
			out = append(out, types.Placement{Position: inv.space.At(idx), Item: *stored})
		}
	}
	return out
}

// DisplaySorted returns every stored item ordered by name, compared without
// regard to case. Ties fall back to the exact name and then to the id, so
// the order is fully determined.
func (inv *Inventory) DisplaySorted() []types.Placement {
	out := inv.Placements()
	sortByName(out)
	return out
}

// ListExpired returns the stored items that are expired on currentDay, in
// DisplaySorted order. Expired items stay in the inventory.
func (inv *Inventory) ListExpired(currentDay int) []types.Placement {
	out := []types.Placement{}
	for _, p := range inv.DisplaySorted() {
		if p.Item.Expired(currentDay) {
			out = append(out, p)
		}
	}
	return out
}

func sortByName(ps []types.Placement) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i].Item, ps[j].Item
		if la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name); la != lb {
			return la < lb
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ItemID < b.ItemID
	})
}

// occupancy is the read-only view handed to strategies.
type occupancy struct {
	inv *Inventory
}

func (o occupancy) Space() types.Space { return o.inv.space }

func (o occupancy) IsFree(p types.Position) bool {
	return o.inv.space.Contains(p) && o.inv.slots[o.inv.space.Index(p)] == nil
}

func (o occupancy) FreeCount() int { return o.inv.FreeCount() }
