package inventory

import "github.com/mesh-intelligence/stockroom/pkg/types"

// Compile-time interface check.
var _ types.Strategy = (*NearestFree)(nil)

// Metric measures the distance between two positions. Only the ordering of
// results matters, so a metric may return a monotonic transform of the true
// distance.
type Metric func(a, b types.Position) int

// Manhattan is the sum of absolute coordinate differences.
func Manhattan(a, b types.Position) int {
	return abs(a.Row-b.Row) + abs(a.Shelf-b.Shelf) + abs(a.Zone-b.Zone)
}

// SquaredEuclidean is the square of the straight-line distance. It orders
// positions exactly like Euclidean distance without floating point.
func SquaredEuclidean(a, b types.Position) int {
	dr, ds, dz := a.Row-b.Row, a.Shelf-b.Shelf, a.Zone-b.Zone
	return dr*dr + ds*ds + dz*dz
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// NearestFree hands out the free position closest to a fixed entry point.
// Among equally close positions the lowest in position order wins. It keeps
// no state between calls, so a freed slot near the entry is reused before a
// farther one regardless of which became free first.
type NearestFree struct {
	entry  types.Position
	metric Metric
}

// NewNearestFree returns a NearestFree measuring from entry with metric.
// A nil metric means Manhattan. The entry need not lie inside the space.
func NewNearestFree(entry types.Position, metric Metric) *NearestFree {
	if metric == nil {
		metric = Manhattan
	}
	return &NearestFree{entry: entry, metric: metric}
}

// Name implements types.Strategy.
func (s *NearestFree) Name() string { return types.StrategyNearestFree }

// Entry returns the reference point distances are measured from.
func (s *NearestFree) Entry() types.Position { return s.entry }

// Allocate implements types.Strategy.
func (s *NearestFree) Allocate(view types.OccupancyView) (types.Position, error) {
	if view.FreeCount() == 0 {
		return types.Position{}, types.ErrNoSpaceAvailable
	}

	space := view.Space()
	var best types.Position
	bestDist, found := 0, false
	// Enumeration order is position order, so keeping only strictly closer
	// candidates resolves ties toward the lowest position.
	for idx, n := 0, space.Size(); idx < n; idx++ {
		p := space.At(idx)
		if !view.IsFree(p) {
			continue
		}
		d := s.metric(s.entry, p)
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
			if d == 0 {
				break
			}
		}
	}
	if !found {
		return types.Position{}, types.ErrNoSpaceAvailable
	}
	return best, nil
}
