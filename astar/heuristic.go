package astar

import "github.com/katalvlaran/wayfinder/gridworld"

// Manhattan returns |Δrow| + |Δcol|. It is admissible for unit cardinal moves
// whenever every passable cell costs at least 1.
func Manhattan(from, to gridworld.Position) int {
	return abs(to.Row-from.Row) + abs(to.Col-from.Col)
}

// Zero always returns 0, turning Search into uniform-cost search. Use it
// when the cost table contains zero-cost terrain.
func Zero(_, _ gridworld.Position) int {
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
