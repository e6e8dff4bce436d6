package worlds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/gridworld"
	"github.com/katalvlaran/wayfinder/worlds"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"large", "small"}, worlds.Names())
}

func TestLoad_Builtin(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"small", 7, 7},
		{"large", 27, 27},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := worlds.Load(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, w.Name)
			assert.Equal(t, tc.rows, w.Grid.Rows())
			assert.Equal(t, tc.cols, w.Grid.Cols())
			assert.Equal(t, gridworld.Symbol("🗻"), w.Grid.Impassable())
			assert.Equal(t, worlds.DefaultCosts(), w.Costs())
			assert.Equal(t, "Swamp", w.Label("🐊"))
		})
	}
}

func TestLoad_SmallWorldLayout(t *testing.T) {
	w, err := worlds.Load("small")
	require.NoError(t, err)
	for c := 0; c < 7; c++ {
		assert.Equal(t, gridworld.Symbol("🌾"), w.Grid.CellAt(gridworld.Position{Row: 3, Col: c}))
	}
	assert.Equal(t, gridworld.Symbol("🌲"), w.Grid.CellAt(gridworld.Position{Row: 0, Col: 1}))
}

func TestLoad_Unknown(t *testing.T) {
	_, err := worlds.Load("atlantis")
	assert.ErrorIs(t, err, worlds.ErrUnknownWorld)
}

func TestCosts_Independent(t *testing.T) {
	w, err := worlds.Load("small")
	require.NoError(t, err)
	ct := w.Costs()
	ct["🌾"] = 100
	assert.Equal(t, 1, w.Costs()["🌾"])
}

func TestParse(t *testing.T) {
	w, err := worlds.Parse([]byte(`
name: tiny
terrain:
  - {symbol: ".", label: Plains, cost: 1}
  - {symbol: "#", impassable: true}
rows:
  - ". . #"
  - ". # ."
`))
	require.NoError(t, err)
	assert.Equal(t, 2, w.Grid.Rows())
	assert.Equal(t, 3, w.Grid.Cols())
	assert.Equal(t, gridworld.CostTable{".": 1}, w.Costs())
	assert.Equal(t, "#", w.Label("#"))
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"NoName": `
terrain: [{symbol: ".", cost: 1}, {symbol: "#", impassable: true}]
rows: ["."]`,
		"UnknownKey": `
name: x
colour: red
terrain: [{symbol: ".", cost: 1}, {symbol: "#", impassable: true}]
rows: ["."]`,
		"NoWall": `
name: x
terrain: [{symbol: ".", cost: 1}]
rows: ["."]`,
		"TwoWalls": `
name: x
terrain: [{symbol: "#", impassable: true}, {symbol: "^", impassable: true}]
rows: ["#"]`,
		"Duplicate": `
name: x
terrain: [{symbol: ".", cost: 1}, {symbol: ".", cost: 2}, {symbol: "#", impassable: true}]
rows: ["."]`,
		"Ragged": `
name: x
terrain: [{symbol: ".", cost: 1}, {symbol: "#", impassable: true}]
rows: [". .", "."]`,
		"UnlistedSymbol": `
name: x
terrain: [{symbol: ".", cost: 1}, {symbol: "#", impassable: true}]
rows: [". ~"]`,
		"NegativeCost": `
name: x
terrain: [{symbol: ".", cost: -1}, {symbol: "#", impassable: true}]
rows: ["."]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := worlds.Parse([]byte(doc))
			assert.ErrorIs(t, err, worlds.ErrMalformed)
		})
	}
}
