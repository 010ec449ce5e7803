package random

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the single random handle threaded through every generator.
// A Source is not safe for concurrent use.
type Source struct {
	seed  uint64
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   func() time.Time
}

type Option func(*Source)

// WithClock replaces time.Now for timestamp providers.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.now = now
	}
}

// NewSource seeds a PCG generator shared by the numeric and fake-data
// providers. A zero seed picks a random one; Seed reports the value in use.
func NewSource(seed uint64, opts ...Option) *Source {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	pcg := rand.NewPCG(seed, seed)
	s := &Source{
		seed:  seed,
		rng:   rand.New(pcg),
		faker: gofakeit.NewFaker(pcg, false),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Seed() uint64 {
	return s.seed
}

// FirstName returns a person's first name.
func (s *Source) FirstName() string {
	return s.faker.FirstName()
}

// Sentence returns lorem text whose word count is drawn from [minWords, maxWords).
func (s *Source) Sentence(minWords, maxWords int) string {
	n := s.IntRange(minWords, maxWords)
	if n < 1 {
		n = 1
	}
	return s.faker.Sentence(n)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// IntRange returns a uniform integer in [lo, hi). An empty range yields lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo)
}

// DaysAgo returns now minus a whole number of days drawn from [0, maxDays).
func (s *Source) DaysAgo(maxDays int) time.Time {
	days := s.IntRange(0, maxDays)
	return s.now().Add(-time.Duration(days) * 24 * time.Hour)
}

// Now is the clock the source stamps timestamps with.
func (s *Source) Now() time.Time {
	return s.now()
}
