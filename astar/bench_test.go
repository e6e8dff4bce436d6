package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wayfinder/astar"
	"github.com/katalvlaran/wayfinder/gridworld"
)

// BenchmarkSearch_Open measures a corner-to-corner search on an open
// 100×100 unit-cost grid. Every cell is expanded once.
func BenchmarkSearch_Open(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(rng, 100, 100, ".")
	goal := gridworld.Point{X: 99, Y: 99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, unit, gridworld.Cardinal(), gridworld.Point{}, goal)
	}
}

// BenchmarkSearch_Terrain measures the same search over mixed terrain
// with roughly one wall in six cells.
func BenchmarkSearch_Terrain(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(rng, 100, 100, "..fsf#")
	costs := gridworld.CostTable{".": 1, "f": 3, "s": 7}
	goal := gridworld.Point{X: 99, Y: 99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, costs, gridworld.Cardinal(), gridworld.Point{}, goal)
	}
}
