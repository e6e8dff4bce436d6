package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// Search finds the least-cost path from start to goal on g.
//
// start and goal are given in caller convention (X = column, Y = row) and
// transposed once here; everything below works in (Row, Col).
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. moves must be non-empty (gridworld.ErrEmptyMoveSet).
//  4. costs must cover every passable symbol of g (gridworld.ErrMissingCost,
//     gridworld.ErrNegativeCost).
//  5. start and goal must lie inside g (ErrOutOfBounds).
//
// Passability of start and goal is the caller's concern and is not checked.
//
// An unreachable goal yields Result{Found: false} and a nil error.
func Search(
	g *gridworld.Grid,
	costs gridworld.CostTable,
	moves gridworld.MoveSet,
	start, goal gridworld.Point,
	opts ...Option,
) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if moves.Len() == 0 {
		return Result{}, gridworld.ErrEmptyMoveSet
	}
	if err := costs.Validate(g); err != nil {
		return Result{}, err
	}

	s, t := start.Position(), goal.Position()
	if !g.InBounds(s) {
		return Result{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(t) {
		return Result{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	r := &runner{
		grid:     g,
		costs:    costs,
		moves:    moves,
		goal:     t,
		options:  cfg,
		frontier: newFrontier(),
		explored: mapset.New[gridworld.Position](),
	}
	r.init(s)
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single Search.
type runner struct {
	grid     *gridworld.Grid
	costs    gridworld.CostTable
	moves    gridworld.MoveSet
	goal     gridworld.Position
	options  Options
	frontier *frontier
	explored mapset.Set[gridworld.Position]
	goals    []GoalPath
	expanded int
}

// init seeds the frontier with the start cell at g = 0.
func (r *runner) init(start gridworld.Position) {
	r.frontier.insert(&entry{
		position: start,
		priority: r.options.Heuristic(start, r.goal),
		path:     []gridworld.Position{start},
		g:        0,
	})
}

// process expands entries until the frontier is empty. The goal is recorded
// on every pop and still expanded like any other cell.
func (r *runner) process() {
	for !r.frontier.isEmpty() {
		// 1) Pop the lowest-priority entry; equal priorities leave in arrival order.
		current, _ := r.frontier.popMin()
		r.expanded++
		r.options.OnExpand(current.position, current.g, current.priority)

		// 2) Record every arrival at the goal. The search does not stop here.
		if current.position == r.goal {
			gp := GoalPath{Path: current.path, G: current.g}
			r.goals = append(r.goals, gp)
			r.options.OnGoal(gp)
		}

		// 3) Queue successors not yet explored or queued; the first sighting wins.
		for _, s := range gridworld.Successors(r.grid, current.position, r.moves) {
			cost, _ := r.costs.Cost(r.grid.CellAt(s))
			total := current.g + cost
			if r.explored.Has(s) || r.frontier.contains(s) {
				r.options.OnSuppress(s, total)
				continue
			}
			r.frontier.insert(&entry{
				position: s,
				priority: total + r.options.Heuristic(s, r.goal),
				path:     extend(current.path, s),
				g:        total,
			})
		}

		// 4) Mark the cell explored.
		r.explored.Put(current.position)
	}
}

// result picks the cheapest recorded goal path. The first one wins ties.
func (r *runner) result() Result {
	res := Result{Expanded: r.expanded, GoalPaths: r.goals}
	best := -1
	for i, gp := range r.goals {
		if best < 0 || gp.G < r.goals[best].G {
			best = i
		}
	}
	if best < 0 {
		return res
	}
	res.Found = true
	res.Path = r.goals[best].Path
	res.Cost = r.goals[best].G
	res.Offsets = Offsets(res.Path)
	return res
}

// extend returns path + [p] without sharing the backing array with path.
func extend(path []gridworld.Position, p gridworld.Position) []gridworld.Position {
	out := make([]gridworld.Position, len(path), len(path)+1)
	copy(out, path)
	return append(out, p)
}

// Offsets converts a path into its delta sequence: for each consecutive pair
// the step from the first to the second, then gridworld.Arrived for the last
// cell. An empty path yields nil.
func Offsets(path []gridworld.Position) []gridworld.Offset {
	if len(path) == 0 {
		return nil
	}
	out := make([]gridworld.Offset, 0, len(path))
	for i := 0; i < len(path)-1; i++ {
		out = append(out, path[i+1].Sub(path[i]))
	}
	return append(out, gridworld.Arrived)
}
