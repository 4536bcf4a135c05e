// SPDX-License-Identifier: MIT
package gridgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors for generators.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("gridgen: width and height must be ≥ 1")
	// ErrBadCostRange indicates min < 1 or max < min.
	ErrBadCostRange = errors.New("gridgen: cost range must satisfy 1 ≤ min ≤ max")
	// ErrUnknownKind indicates an unsupported terrain kind.
	ErrUnknownKind = errors.New("gridgen: unknown terrain kind")
)

// Kind names a terrain generator for configuration-driven construction.
type Kind string

// Supported kinds.
const (
	KindUniform            Kind = "uniform"
	KindRandom             Kind = "random"
	KindVerticalGradient   Kind = "vertical-gradient"
	KindHorizontalGradient Kind = "horizontal-gradient"
	KindBoulder            Kind = "boulder"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindUniform, KindRandom, KindVerticalGradient, KindHorizontalGradient, KindBoulder}
}

// Defaults for the boulder terrain: cost = boulderPeak / (boulderSpread + d²).
const (
	boulderPeak   = 500
	boulderSpread = 10
	defaultSeed   = 1
)

// genConfig accumulates options for a single generator call.
type genConfig struct {
	rng       *rand.Rand
	obstacles float64
	clear     map[grid.State]struct{}
}

func newConfig(opts []Option) *genConfig {
	cfg := &genConfig{
		rng:   rand.New(rand.NewSource(defaultSeed)),
		clear: make(map[grid.State]struct{}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option customizes a generator call.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithObstacles turns each cell into a wall with the given probability,
// except cells listed with WithClear. Panics unless 0 ≤ density ≤ 1.
func WithObstacles(density float64) Option {
	if density < 0 || density > 1 {
		panic("gridgen: WithObstacles density must be in [0,1]")
	}
	return func(c *genConfig) {
		c.obstacles = density
	}
}

// WithClear marks cells that must never become walls, typically the start
// and goal of the search.
func WithClear(states ...grid.State) Option {
	return func(c *genConfig) {
		for _, s := range states {
			c.clear[s] = struct{}{}
		}
	}
}

// Spec describes a terrain for Build.
type Spec struct {
	Kind    Kind
	Width   int
	Height  int
	Cost    int        // uniform cost
	MinCost int        // random lower bound
	MaxCost int        // random upper bound
	Center  grid.State // boulder center
}
