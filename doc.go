// Package wayfinder finds least-cost walks across emoji terrain maps.
//
// A world is a rectangular grid of terrain symbols. Entering a cell costs
// the value its symbol has in a cost table; one symbol marks impassable
// ground. An A* search over unit moves in the four cardinal directions
// returns the walk as a sequence of steps, and a renderer draws it back
// onto the map.
//
// Layout:
//
//	gridworld/      grid, positions, cost table, move set, successors
//	astar/          A* search with a stable (priority, arrival) frontier
//	dijkstra/       exact cost-to-reach, forward or reverse
//	render/         step glyphs ⏩ ⏪ ⏫ ⏬ and the goal 🎁 on a copy of the grid
//	worlds/         built-in YAML worlds "small" and "large"
//	planner/        request validation, search, render, optional comparison
//	cmd/wayfinder/  command-line front end
//
// Quick example:
//
//	🌾🌲🌲        ⏬🌲🌲
//	🌾🌾🌾   →    ⏩⏩⏬
//	🌲🗻🌾        🌲🗻🎁
//
// Coordinates: callers speak (x, y) with x the column; everything inside
// works in (row, col). gridworld.Point.Position is the only place the two
// meet.
package wayfinder
