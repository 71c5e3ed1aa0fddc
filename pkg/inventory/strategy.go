package inventory

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// NewStrategy builds the strategy described by cfg.
// Returns ErrStrategyUnknown or ErrMetricUnknown for unrecognized names.
func NewStrategy(cfg types.StrategyConfig) (types.Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("strategy %q: %w", cfg.Name, err)
	}
	switch cfg.Name {
	case types.StrategyNearestFree:
		return NewNearestFree(cfg.Entry, metricByName(cfg.Metric)), nil
	default:
		return NewRoundRobin(), nil
	}
}

func metricByName(name string) Metric {
	if name == types.MetricEuclidean {
		return SquaredEuclidean
	}
	return Manhattan
}
