package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// Distances computes least costs between Options.Source and every reachable
// cell of g. Unreachable cells are absent from the returned map.
//
// Preconditions and validation (in order):
//  1. Source must be given (ErrNoSource).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must be inside g (ErrSourceNotFound).
//  4. costs must cover g (gridworld.ErrMissingCost, gridworld.ErrNegativeCost).
//  5. moves must be non-empty (gridworld.ErrEmptyMoveSet).
func Distances(g *gridworld.Grid, costs gridworld.CostTable, moves gridworld.MoveSet, opts ...Option) (map[gridworld.Position]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, cfg.Source)
	}
	if err := costs.Validate(g); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if moves.Len() == 0 {
		return nil, gridworld.ErrEmptyMoveSet
	}

	r := &runner{
		g:       g,
		costs:   costs,
		moves:   moves,
		options: cfg,
		dist:    make(map[gridworld.Position]int),
		settled: mapset.New[gridworld.Position](),
		pq: heap.New[nodeItem](func(a, b nodeItem) bool {
			return a.dist < b.dist
		}),
	}
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Distances execution.
type runner struct {
	g       *gridworld.Grid
	costs   gridworld.CostTable
	moves   gridworld.MoveSet
	options Options
	dist    map[gridworld.Position]int     // best known distance per cell
	settled mapset.Set[gridworld.Position] // cells whose distance is final
	pq      *heap.Heap[nodeItem]           // lazy min-heap
}

// nodeItem pairs a cell with a tentative distance.
type nodeItem struct {
	p    gridworld.Position
	dist int
}

func (r *runner) init() {
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{p: r.options.Source, dist: 0})
}

// process settles cells in order of increasing distance until the heap is
// empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Size() > 0 {
		// 1) Pop the smallest-distance item.
		item, _ := r.pq.Pop()
		// 2) Skip stale entries for cells already settled.
		if r.settled.Has(item.p) {
			continue
		}
		// 3) Stop once the cap is exceeded.
		if item.dist > r.options.MaxDistance {
			break
		}
		// 4) Settle and relax the neighbors.
		r.settled.Put(item.p)
		r.relax(item)
	}
}

// relax pushes improved distances for the neighbors of u.
func (r *runner) relax(u nodeItem) {
	var next []gridworld.Position
	var step int
	if r.options.Reverse {
		if !r.g.IsPassable(r.g.CellAt(u.p)) {
			return
		}
		// leaving v for u costs the cost of entering u
		next = gridworld.Predecessors(r.g, u.p, r.moves)
		step, _ = r.costs.Cost(r.g.CellAt(u.p))
	} else {
		next = gridworld.Successors(r.g, u.p, r.moves)
	}
	for _, v := range next {
		w := step
		if !r.options.Reverse {
			w, _ = r.costs.Cost(r.g.CellAt(v))
		}
		nd := u.dist + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.pq.Push(nodeItem{p: v, dist: nd})
	}
}
