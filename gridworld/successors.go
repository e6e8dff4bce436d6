package gridworld

// Successors returns the neighbors of p reachable in one move: in bounds and
// not impassable. The result follows the order of moves.
// Complexity: O(len(moves)).
func Successors(g *Grid, p Position, moves MoveSet) []Position {
	out := make([]Position, 0, len(moves.offsets))
	for _, o := range moves.offsets {
		q := p.Add(o)
		if !g.InBounds(q) {
			continue
		}
		if !g.IsPassable(g.CellAt(q)) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Predecessors returns the cells from which p is reachable in one move.
// It mirrors Successors for searches that run from the target backwards.
func Predecessors(g *Grid, p Position, moves MoveSet) []Position {
	out := make([]Position, 0, len(moves.offsets))
	for _, o := range moves.offsets {
		q := Position{Row: p.Row - o.DRow, Col: p.Col - o.DCol}
		if !g.InBounds(q) {
			continue
		}
		if !g.IsPassable(g.CellAt(q)) {
			continue
		}
		out = append(out, q)
	}
	return out
}
