package generator

import (
	"featuregen/internal/metrics"
	"featuregen/internal/random"
	v1 "featuregen/pkg/api/v1"
	"featuregen/pkg/constraints"
)

const (
	enabledProbability  = 0.9
	createdAtWindowDays = 365
	flexibleRolloutOdds = 90 // out of 100 strategy slots
	maxRolloutPercent   = 100
	maxSortOrder        = 10000
	minDescriptionWords = 3
	maxDescriptionWords = 5
)

// Generator builds client-features datasets from a single random source.
type Generator struct {
	src           *random.Source
	observer      metrics.GeneratorObserver
	maxStrategies int
}

type Option func(*Generator)

func WithObserver(o metrics.GeneratorObserver) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// NewGenerator creates a generator. maxStrategies is the exclusive upper
// bound on strategies per feature; values below 2 produce no strategies.
func NewGenerator(src *random.Source, maxStrategies int, opts ...Option) *Generator {
	g := &Generator{
		src:           src,
		observer:      metrics.NewNopObserver(),
		maxStrategies: maxStrategies,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Summary describes a generated dataset.
type Summary struct {
	Features          int
	Enabled           int
	WithoutStrategies int
	StrategiesByKind  map[string]int
}

func (s Summary) Strategies() int {
	total := 0
	for _, n := range s.StrategiesByKind {
		total += n
	}
	return total
}

// Generate produces exactly featureCount features in generation order.
func (g *Generator) Generate(featureCount int) v1.ClientFeatures {
	if featureCount < 0 {
		featureCount = 0
	}
	features := make([]v1.ClientFeature, 0, featureCount)
	for i := 0; i < featureCount; i++ {
		features = append(features, g.Feature())
	}
	return v1.ClientFeatures{
		Version:  constraints.SchemaVersion,
		Features: features,
	}
}

// Summarize tallies a dataset for logging.
func Summarize(cf v1.ClientFeatures) Summary {
	s := Summary{
		Features:         len(cf.Features),
		StrategiesByKind: map[string]int{},
	}
	for _, f := range cf.Features {
		if f.Enabled {
			s.Enabled++
		}
		if len(f.Strategies) == 0 {
			s.WithoutStrategies++
		}
		for _, st := range f.Strategies {
			s.StrategiesByKind[st.Name]++
		}
	}
	return s
}
