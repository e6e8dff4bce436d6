package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/gridworld"
	"github.com/katalvlaran/wayfinder/worlds"
)

func TestApplyCosts(t *testing.T) {
	w, err := worlds.Load("small")
	require.NoError(t, err)

	table, err := applyCosts(w, map[string]int{"forest": 2, "🌾": 4})
	require.NoError(t, err)
	assert.Equal(t, 2, table["🌲"])
	assert.Equal(t, 4, table["🌾"])
	assert.Equal(t, 3, w.Costs()["🌲"])

	_, err = applyCosts(w, map[string]int{"lava": 1})
	assert.Error(t, err)
	_, err = applyCosts(w, map[string]int{"Mountains": 1})
	assert.Error(t, err)
	_, err = applyCosts(w, map[string]int{"Plains": -1})
	assert.ErrorIs(t, err, gridworld.ErrNegativeCost)
}

func TestToPoint(t *testing.T) {
	p, err := toPoint("start", []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, gridworld.Point{X: 3, Y: 1}, p)

	_, err = toPoint("goal", []int{1})
	assert.Error(t, err)
}
