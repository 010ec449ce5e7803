package generator

import (
	"strconv"

	v1 "featuregen/pkg/api/v1"
	"featuregen/pkg/constraints"
)

// Strategies draws a count from [0, maxCount) and fills each slot with a
// flexibleRollout (90%) or default strategy. A zero count returns nil.
func (g *Generator) Strategies(maxCount int) []v1.Strategy {
	count := g.src.IntRange(0, maxCount)
	if count == 0 {
		return nil
	}
	strategies := make([]v1.Strategy, 0, count)
	for i := 0; i < count; i++ {
		var s v1.Strategy
		if g.src.IntRange(0, 100) < flexibleRolloutOdds {
			s = g.FlexibleRollout()
		} else {
			s = DefaultStrategy()
		}
		g.observer.RecordStrategy(s.Name)
		strategies = append(strategies, s)
	}
	return strategies
}

// FlexibleRollout returns a percentage rollout with a random sort order.
func (g *Generator) FlexibleRollout() v1.Strategy {
	rollout := g.src.IntRange(0, maxRolloutPercent)
	return v1.Strategy{
		Name: constraints.StrategyFlexibleRollout,
		Parameters: map[string]string{
			constraints.ParamRollout: strconv.Itoa(rollout),
		},
		SortOrder: ptr(int32(g.src.IntRange(0, maxSortOrder))),
	}
}

func DefaultStrategy() v1.Strategy {
	return v1.Strategy{
		Name:      constraints.StrategyDefault,
		SortOrder: ptr(int32(0)),
	}
}
