// Package dijkstra provides exact least-cost distances on a gridworld.Grid.
//
// Overview:
//
//   - Distances settles cells in increasing cost order from a single Source,
//     using the terrain cost model of the rest of the module: a step costs
//     the CostTable value of the cell it enters.
//   - WithReverse flips the direction: the result holds, for every cell, the
//     cost of the cheapest walk from that cell to Source. Run from a goal, it
//     is the true remaining cost an admissible heuristic must never exceed.
//
// When to use:
//
//   - To check what the A* search in package astar returned against the true
//     optimum (planner.Request.Compare does exactly this).
//   - As a brute-force oracle in tests.
//
// Key features:
//
//   - Functional options: Source, WithReverse, WithMaxDistance.
//   - Lazy decrease-key on a binary heap (github.com/zyedidia/generic/heap).
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       Source option missing.
//   - ErrNilGrid:        nil grid.
//   - ErrSourceNotFound: Source outside the grid.
//   - ErrBadMaxDistance: returned (via panic) if you set MaxDistance < 0.
//   - gridworld.ErrMissingCost / ErrNegativeCost / ErrEmptyMoveSet, wrapped.
//
// Example usage:
//
//	dist, err := dijkstra.Distances(g, costs, gridworld.Cardinal(),
//	    dijkstra.Source(goal),
//	    dijkstra.WithReverse(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("remaining cost from start:", dist[start])
package dijkstra
