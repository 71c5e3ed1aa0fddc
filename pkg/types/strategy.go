package types

// OccupancyView is the read-only picture of an inventory that a Strategy
// inspects. Implementations must not let a strategy change occupancy.
type OccupancyView interface {
	// Space returns the valid position space.
	Space() Space

	// IsFree reports whether p is inside the space and holds no item.
	IsFree(p Position) bool

	// FreeCount returns the number of free positions.
	FreeCount() int
}

// Strategy chooses the position a new item should occupy.
type Strategy interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Allocate returns a free position of view. It returns
	// ErrNoSpaceAvailable when no position is free. Allocate never changes
	// the view; it may update state owned by the strategy itself.
	Allocate(view OccupancyView) (Position, error)
}

// CursorStrategy is a Strategy whose choice depends on a cursor that moves
// between calls. The cursor is exposed so it can be persisted and restored.
type CursorStrategy interface {
	Strategy

	// Cursor returns the position the next scan starts from.
	Cursor() Position

	// Seek moves the cursor to p. Returns ErrInvalidPosition when p is
	// outside space.
	Seek(space Space, p Position) error
}

// Strategy names accepted by StrategyConfig.
const (
	StrategyRoundRobin  = "round_robin"
	StrategyNearestFree = "nearest_free"
)

// Distance metric names accepted by StrategyConfig.
const (
	MetricManhattan = "manhattan"
	MetricEuclidean = "euclidean"
)

// knownStrategies lists the strategies that Validate accepts.
var knownStrategies = map[string]bool{
	StrategyRoundRobin:  true,
	StrategyNearestFree: true,
}

// knownMetrics lists the metrics that Validate accepts. The empty string
// selects the default metric.
var knownMetrics = map[string]bool{
	"":              true,
	MetricManhattan: true,
	MetricEuclidean: true,
}

// StrategyConfig selects and parameterizes an allocation strategy.
type StrategyConfig struct {
	// Name is StrategyRoundRobin or StrategyNearestFree.
	Name string `json:"name" yaml:"name"`

	// Entry is the reference point NearestFree measures distance from.
	Entry Position `json:"entry" yaml:"entry"`

	// Metric is the NearestFree distance metric; empty means manhattan.
	Metric string `json:"metric,omitempty" yaml:"metric,omitempty"`
}

// Validate checks the strategy and metric names.
func (c StrategyConfig) Validate() error {
	if !knownStrategies[c.Name] {
		return ErrStrategyUnknown
	}
	if !knownMetrics[c.Metric] {
		return ErrMetricUnknown
	}
	return nil
}
