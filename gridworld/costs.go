package gridworld

import (
	"fmt"
	"math"
)

// CostTable maps each passable terrain symbol to the cost of entering a
// cell carrying it. The impassable symbol never needs an entry.
type CostTable map[Symbol]int

// Cost returns the cost of s and whether it is present.
func (ct CostTable) Cost(s Symbol) (int, bool) {
	c, ok := ct[s]
	return c, ok
}

// Clone returns an independent copy, so one search never observes edits
// made for another.
func (ct CostTable) Clone() CostTable {
	out := make(CostTable, len(ct))
	for s, c := range ct {
		out[s] = c
	}
	return out
}

// Validate checks that every passable symbol of g has a non-negative cost.
// Entries for symbols absent from g are allowed; an entry for the impassable
// symbol is ignored.
func (ct CostTable) Validate(g *Grid) error {
	for s, c := range ct {
		if c < 0 && g.IsPassable(s) {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCost, s, c)
		}
	}
	for _, s := range g.Symbols() {
		if !g.IsPassable(s) {
			continue
		}
		if _, ok := ct[s]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingCost, s)
		}
	}
	return nil
}

// MinCost returns the smallest cost among passable symbols of g, or
// math.MaxInt when g has no passable cell. Manhattan distance is admissible
// only when this is at least 1.
func (ct CostTable) MinCost(g *Grid) int {
	best := math.MaxInt
	for _, s := range g.Symbols() {
		if !g.IsPassable(s) {
			continue
		}
		if c, ok := ct[s]; ok && c < best {
			best = c
		}
	}
	return best
}
