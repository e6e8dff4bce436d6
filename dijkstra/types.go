package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *gridworld.Grid was passed to Distances.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceNotFound indicates that the source cell lies outside the grid.
	ErrSourceNotFound = errors.New("dijkstra: source cell not in grid")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Distances.
//
// Source      – starting cell (must be set and inside the grid).
// Reverse     – if true, dist[p] is the cost of the cheapest walk p → Source;
//
//	otherwise dist[p] is the cost of the cheapest walk Source → p.
//
// MaxDistance – optional cap; cells whose distance would exceed it are not
//
//	recorded. Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Source      gridworld.Position // The source cell
	Reverse     bool               // Whether to compute costs towards Source
	MaxDistance int                // Maximum distance to explore

	hasSource bool
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// Source sets the Source cell. Must be given.
func Source(p gridworld.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.hasSource = true
	}
}

// WithReverse makes Distances report, for each cell, the cost of reaching
// Source from it. Useful as an exact "remaining cost" oracle for a goal.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:      unset (validated in Distances).
//   - Reverse:     false.
//   - MaxDistance: math.MaxInt (no distance limit).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
	}
}
