package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates a nil *gridworld.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must be non-negative and should never overestimate.
type Heuristic func(from, to gridworld.Position) int

// GoalPath records one arrival at the goal.
type GoalPath struct {
	Path []gridworld.Position // start … goal
	G    int                  // exact cost of Path
}

// Result is the outcome of one Search.
//
//   - Offsets:   delta sequence of the best path, ending in gridworld.Arrived;
//     nil when the goal was never reached.
//   - Path:      the best path as positions, start … goal.
//   - Cost:      g-cost of the best path (sum of entered cells).
//   - Found:     whether any goal path was recorded.
//   - Expanded:  number of frontier entries expanded.
//   - GoalPaths: every goal arrival, in pop order.
type Result struct {
	Offsets   []gridworld.Offset
	Path      []gridworld.Position
	Cost      int
	Found     bool
	Expanded  int
	GoalPaths []GoalPath
}

// Options configures Search.
type Options struct {
	// Heuristic estimates remaining cost. Defaults to Manhattan.
	Heuristic Heuristic

	// OnExpand is called when an entry is popped, before its successors are
	// generated. Receives the cell, its g-cost and its priority.
	OnExpand func(p gridworld.Position, g, priority int)

	// OnGoal is called each time the goal is popped.
	OnGoal func(gp GoalPath)

	// OnSuppress is called for every successor discarded because its cell is
	// already explored or queued.
	OnSuppress func(p gridworld.Position, g int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Manhattan,
		OnExpand:   func(gridworld.Position, int, int) {},
		OnGoal:     func(GoalPath) {},
		OnSuppress: func(gridworld.Position, int) {},
	}
}

// WithHeuristic replaces the default Manhattan heuristic.
// A nil heuristic is recorded as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback run for every expansion.
func WithOnExpand(fn func(p gridworld.Position, g, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback run for every goal arrival.
func WithOnGoal(fn func(gp GoalPath)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// WithOnSuppress registers a callback run for every discarded successor.
func WithOnSuppress(fn func(p gridworld.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSuppress = fn
		}
	}
}
