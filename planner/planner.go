// Package planner is the request boundary in front of the search engine.
//
// Plan rejects requests the engine must never see (a start or goal off the
// grid or on impassable terrain), runs astar.Search on a private copy of
// the cost table, and renders the result when a path exists. A request
// whose goal cannot be reached is not an error: it yields Found == false.
//
// Plan keeps no state between calls and never mutates the request, so a
// single Request may be planned from many goroutines at once.
package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfinder/astar"
	"github.com/katalvlaran/wayfinder/dijkstra"
	"github.com/katalvlaran/wayfinder/gridworld"
	"github.com/katalvlaran/wayfinder/render"
)

var (
	// ErrNilGrid indicates a request without a grid.
	ErrNilGrid = errors.New("planner: grid is nil")
	// ErrStartOutOfBounds indicates a start outside the grid.
	ErrStartOutOfBounds = errors.New("planner: start is outside the grid")
	// ErrGoalOutOfBounds indicates a goal outside the grid.
	ErrGoalOutOfBounds = errors.New("planner: goal is outside the grid")
	// ErrStartImpassable indicates a start on impassable terrain.
	ErrStartImpassable = errors.New("planner: cannot start on impassable terrain")
	// ErrGoalImpassable indicates a goal on impassable terrain.
	ErrGoalImpassable = errors.New("planner: cannot finish on impassable terrain")
)

// Request describes one planning job. Start and Goal use x = column,
// y = row.
type Request struct {
	Grid    *gridworld.Grid
	Costs   gridworld.CostTable
	Moves   gridworld.MoveSet
	Start   gridworld.Point
	Goal    gridworld.Point
	Compare bool // also compute the exact optimum
}

// Solution is the outcome of Plan.
//
// Cost is the rendered cost (cells departed from); SearchCost is the
// engine's g-cost (cells entered). Optimal is the least g-cost over all
// paths and is set only when the request asked to Compare and the goal is
// reachable.
type Solution struct {
	Found      bool
	Offsets    []gridworld.Offset
	Cost       int
	SearchCost int
	Rendered   *render.Rendering
	Expanded   int

	Optimal      int
	OptimalKnown bool
}

// Suboptimal reports whether a comparison found a cheaper path than the
// one returned.
func (s *Solution) Suboptimal() bool {
	return s.OptimalKnown && s.Found && s.Optimal < s.SearchCost
}

// Plan validates req, searches, and renders the result.
// Extra options are passed to astar.Search unchanged.
func Plan(req Request, opts ...astar.Option) (*Solution, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	costs := req.Costs.Clone()

	res, err := astar.Search(req.Grid, costs, req.Moves, req.Start, req.Goal, opts...)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	sol := &Solution{
		Found:      res.Found,
		Offsets:    res.Offsets,
		SearchCost: res.Cost,
		Expanded:   res.Expanded,
	}

	if res.Found {
		sol.Rendered, err = render.Render(req.Grid, res.Offsets, req.Start, req.Goal, costs)
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}
		sol.Cost = sol.Rendered.Cost
	}

	if req.Compare {
		dist, err := dijkstra.Distances(req.Grid, costs, req.Moves, dijkstra.Source(req.Start.Position()))
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}
		sol.Optimal, sol.OptimalKnown = dist[req.Goal.Position()]
	}

	return sol, nil
}

func validate(req Request) error {
	g := req.Grid
	if g == nil {
		return ErrNilGrid
	}
	s, t := req.Start.Position(), req.Goal.Position()
	if !g.InBounds(s) {
		return fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, req.Start, g.Cols(), g.Rows())
	}
	if !g.InBounds(t) {
		return fmt.Errorf("%w: %v in %dx%d", ErrGoalOutOfBounds, req.Goal, g.Cols(), g.Rows())
	}
	if !g.IsPassable(g.CellAt(s)) {
		return fmt.Errorf("%w: %v", ErrStartImpassable, req.Start)
	}
	if !g.IsPassable(g.CellAt(t)) {
		return fmt.Errorf("%w: %v", ErrGoalImpassable, req.Goal)
	}
	if err := req.Costs.Validate(g); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if req.Moves.Len() == 0 {
		return fmt.Errorf("planner: %w", gridworld.ErrEmptyMoveSet)
	}
	return nil
}
