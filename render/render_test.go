package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/gridworld"
	"github.com/katalvlaran/wayfinder/render"
)

var (
	R = gridworld.Right
	L = gridworld.Left
	U = gridworld.Up
	D = gridworld.Down
	A = gridworld.Arrived
)

func mustGrid(t *testing.T, rows ...string) *gridworld.Grid {
	t.Helper()
	g, err := gridworld.FromRows(rows, "#")
	require.NoError(t, err)
	return g
}

func TestRender_Detour(t *testing.T) {
	g := mustGrid(t,
		".#.",
		".#.",
		"...",
	)
	out, err := render.Render(g, []gridworld.Offset{D, D, R, R, U, U, A},
		gridworld.Point{X: 0, Y: 0}, gridworld.Point{X: 2, Y: 0}, gridworld.CostTable{".": 1})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Cost)
	assert.Equal(t, "⏬#🎁\n⏬#⏫\n⏩⏩⏫", out.String())

	// the source grid is untouched
	assert.Equal(t, ".#.\n.#.\n...", render.Format(g.Cells()))
}

// TestRender_CostsDepartedCells: the start cell is paid, the goal is not.
func TestRender_CostsDepartedCells(t *testing.T) {
	g := mustGrid(t, "s..f")
	costs := gridworld.CostTable{".": 1, "s": 7, "f": 3}
	out, err := render.Render(g, []gridworld.Offset{R, R, R, A},
		gridworld.Point{X: 0}, gridworld.Point{X: 3}, costs)
	require.NoError(t, err)
	assert.Equal(t, 7+1+1, out.Cost)
	assert.Equal(t, "⏩⏩⏩🎁", out.String())
}

func TestRender_StartIsGoal(t *testing.T) {
	g := mustGrid(t, "..", "..")
	out, err := render.Render(g, []gridworld.Offset{A},
		gridworld.Point{X: 1, Y: 0}, gridworld.Point{X: 1, Y: 0}, gridworld.CostTable{".": 1})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Cost)
	assert.Equal(t, ".🎁\n..", out.String())
}

func TestRender_Errors(t *testing.T) {
	g := mustGrid(t, "...")
	costs := gridworld.CostTable{".": 1}
	origin := gridworld.Point{}
	cases := []struct {
		name    string
		offsets []gridworld.Offset
		goal    gridworld.Point
		costs   gridworld.CostTable
		err     error
	}{
		{"Empty", nil, origin, costs, render.ErrEmptyPath},
		{"NoFinalMarker", []gridworld.Offset{R}, gridworld.Point{X: 1}, costs, render.ErrMalformedPath},
		{"EarlyMarker", []gridworld.Offset{R, A, R, A}, gridworld.Point{X: 2}, costs, render.ErrMalformedPath},
		{"WrongGoal", []gridworld.Offset{R, A}, gridworld.Point{X: 2}, costs, render.ErrMalformedPath},
		{"OffGrid", []gridworld.Offset{L, A}, origin, costs, render.ErrOutOfBounds},
		{"Diagonal", []gridworld.Offset{{DRow: 1, DCol: 1}, A}, origin, costs, render.ErrUnknownDirection},
		{"MissingCost", []gridworld.Offset{A}, origin, gridworld.CostTable{}, gridworld.ErrMissingCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := render.Render(g, tc.offsets, origin, tc.goal, tc.costs)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRender_NilGrid(t *testing.T) {
	var err error
	assert.NotPanics(t, func() {
		_, err = render.Render(nil, []gridworld.Offset{A}, gridworld.Point{}, gridworld.Point{}, gridworld.CostTable{".": 1})
	})
	assert.ErrorIs(t, err, render.ErrNilGrid)
}

func TestGlyph(t *testing.T) {
	for o, want := range map[gridworld.Offset]gridworld.Symbol{
		R: render.GlyphRight, L: render.GlyphLeft, U: render.GlyphUp, D: render.GlyphDown,
	} {
		got, ok := render.Glyph(o)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := render.Glyph(A)
	assert.False(t, ok)
}
