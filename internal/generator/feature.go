package generator

import (
	v1 "featuregen/pkg/api/v1"
	"featuregen/pkg/constraints"
)

// Feature assembles one feature record with a fresh strategy list.
func (g *Generator) Feature() v1.ClientFeature {
	createdAt := g.src.DaysAgo(createdAtWindowDays)
	f := v1.ClientFeature{
		Name:           g.src.FirstName(),
		Type:           ptr(constraints.FeatureTypeRelease),
		Description:    g.src.Sentence(minDescriptionWords, maxDescriptionWords),
		CreatedAt:      &createdAt,
		Enabled:        g.src.Bool(enabledProbability),
		Stale:          ptr(false),
		ImpressionData: ptr(false),
		Project:        ptr(constraints.ProjectDefault),
		Strategies:     g.Strategies(g.maxStrategies),
	}
	g.observer.RecordFeature(f.Enabled)
	return f
}

func ptr[T any](v T) *T {
	return &v
}
