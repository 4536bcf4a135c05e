package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that the requested target cannot be reached.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Unreachable is the distance reported for cells that were never settled.
const Unreachable = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – cells whose distance would exceed this value are not explored.
// Target      – optional early-exit cell; HasTarget reports whether it is set.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
	Target      grid.State
	HasTarget   bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithTarget stops the search once t is settled.
func WithTarget(t grid.State) Option {
	return func(o *Options) {
		o.Target = t
		o.HasTarget = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessor map, no distance cap, no target.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
