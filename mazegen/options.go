package mazegen

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults.
const (
	defaultSeed    = int64(1)
	defaultDensity = 0.25
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	density float64
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed gives the generator its own RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the wall probability used by Random. Carved ignores it.
// Panics unless 0 ≤ p < 1.
func WithDensity(p float64) Option {
	if p < 0 || p >= 1 {
		panic(fmt.Sprintf("mazegen: WithDensity(%v): must be in [0,1)", p))
	}
	return func(c *config) {
		c.density = p
	}
}
