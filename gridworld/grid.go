package gridworld

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular array of terrain symbols.
// cells[r][c] holds the symbol at Position{r, c}.
type Grid struct {
	rows, cols int
	cells      [][]Symbol
	impassable Symbol
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrEmptySymbol if the
// impassable marker or any cell is empty.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Symbol, impassable Symbol) (*Grid, error) {
	if impassable == "" {
		return nil, ErrEmptySymbol
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Symbol, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = make([]Symbol, w)
		for c, s := range row {
			if s == "" {
				return nil, fmt.Errorf("%w: cell %v", ErrEmptySymbol, Position{Row: r, Col: c})
			}
			cells[r][c] = s
		}
	}

	return &Grid{rows: h, cols: w, cells: cells, impassable: impassable}, nil
}

// Rows returns the number of rows (the Y extent).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (the X extent).
func (g *Grid) Cols() int { return g.cols }

// Impassable returns the reserved impassable symbol.
func (g *Grid) Impassable() Symbol { return g.impassable }

// InBounds reports whether p lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellAt returns the symbol at p. p must be in bounds.
func (g *Grid) CellAt(p Position) Symbol {
	return g.cells[p.Row][p.Col]
}

// IsPassable reports whether s differs from the impassable marker.
func (g *Grid) IsPassable(s Symbol) bool {
	return s != g.impassable
}

// Cells returns a deep copy of the cells, safe to annotate.
func (g *Grid) Cells() [][]Symbol {
	out := make([][]Symbol, g.rows)
	for r := range g.cells {
		out[r] = make([]Symbol, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Symbols returns the distinct symbols of the grid in row-major order of
// first appearance.
func (g *Grid) Symbols() []Symbol {
	var out []Symbol
	seen := make(map[Symbol]bool)
	for _, row := range g.cells {
		for _, s := range row {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// FromRows builds a Grid from text rows. A row containing whitespace is split
// into fields; otherwise every rune is one cell.
//
//	g, _ := gridworld.FromRows([]string{"..#", ".#."}, "#")
func FromRows(lines []string, impassable Symbol) (*Grid, error) {
	rows := make([][]Symbol, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitRow(line))
	}
	return NewGrid(rows, impassable)
}

func splitRow(line string) []Symbol {
	var row []Symbol
	if strings.ContainsAny(line, " \t") {
		for _, f := range strings.Fields(line) {
			row = append(row, Symbol(f))
		}
		return row
	}
	for _, r := range line {
		row = append(row, Symbol(string(r)))
	}
	return row
}
