// Package render overlays a solved delta sequence on a copy of a grid.
//
// Every visited cell except the last gets the glyph of the step leaving it
// (⏩ ⏪ ⏫ ⏬), the goal gets 🎁, and the cost is the sum of the costs of the
// cells departed from. Note this differs from the search's g-cost, which
// charges the cells entered: the two agree only when start and goal carry
// the same cost.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfinder/gridworld"
)

// Glyphs drawn on the copy.
const (
	GlyphRight gridworld.Symbol = "⏩"
	GlyphLeft  gridworld.Symbol = "⏪"
	GlyphUp    gridworld.Symbol = "⏫"
	GlyphDown  gridworld.Symbol = "⏬"
	GlyphGoal  gridworld.Symbol = "🎁"
)

var (
	// ErrNilGrid indicates a nil *gridworld.Grid.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrEmptyPath indicates an empty delta sequence ("no path" must be
	// reported by the caller, not rendered).
	ErrEmptyPath = errors.New("render: empty delta sequence")
	// ErrMalformedPath indicates an arrival marker before the end, a missing
	// final marker, or a walk that does not finish on the goal.
	ErrMalformedPath = errors.New("render: malformed delta sequence")
	// ErrUnknownDirection indicates an offset with no glyph.
	ErrUnknownDirection = errors.New("render: no glyph for offset")
	// ErrOutOfBounds indicates the walk left the grid.
	ErrOutOfBounds = errors.New("render: path leaves the grid")
)

// Rendering is an annotated copy of a grid plus the walked cost.
type Rendering struct {
	Cells [][]gridworld.Symbol
	Cost  int
}

// String returns the annotated grid, one line per row.
func (r *Rendering) String() string {
	return Format(r.Cells)
}

// Glyph returns the symbol drawn for a step in direction o.
func Glyph(o gridworld.Offset) (gridworld.Symbol, bool) {
	switch o {
	case gridworld.Right:
		return GlyphRight, true
	case gridworld.Left:
		return GlyphLeft, true
	case gridworld.Up:
		return GlyphUp, true
	case gridworld.Down:
		return GlyphDown, true
	}
	return "", false
}

// Render walks offsets from start, drawing on a copy of g. start and goal
// are in caller convention (x = column, y = row). g is not modified.
func Render(g *gridworld.Grid, offsets []gridworld.Offset, start, goal gridworld.Point, costs gridworld.CostTable) (*Rendering, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(offsets) == 0 {
		return nil, ErrEmptyPath
	}
	if err := costs.Validate(g); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	last := len(offsets) - 1
	if offsets[last] != gridworld.Arrived {
		return nil, fmt.Errorf("%w: last offset %v is not the arrival marker", ErrMalformedPath, offsets[last])
	}

	cur, target := start.Position(), goal.Position()
	if !g.InBounds(cur) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	out := &Rendering{Cells: g.Cells()}
	for i, o := range offsets[:last] {
		if o == gridworld.Arrived {
			return nil, fmt.Errorf("%w: arrival marker at step %d of %d", ErrMalformedPath, i, last)
		}
		glyph, ok := Glyph(o)
		if !ok {
			return nil, fmt.Errorf("%w: %v at step %d", ErrUnknownDirection, o, i)
		}
		cost, _ := costs.Cost(g.CellAt(cur))
		out.Cost += cost
		out.Cells[cur.Row][cur.Col] = glyph
		cur = cur.Add(o)
		if !g.InBounds(cur) {
			return nil, fmt.Errorf("%w: step %d reaches %v", ErrOutOfBounds, i, cur.Point())
		}
	}
	if cur != target {
		return nil, fmt.Errorf("%w: walk ends at %v, goal is %v", ErrMalformedPath, cur.Point(), goal)
	}
	out.Cells[cur.Row][cur.Col] = GlyphGoal

	return out, nil
}

// Format joins cells row by row without separators.
func Format(cells [][]gridworld.Symbol) string {
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteString(string(s))
		}
	}
	return b.String()
}
