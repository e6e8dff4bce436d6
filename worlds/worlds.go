// Package worlds loads terrain maps described in YAML.
//
// A world file names its terrain once, in display order, and lists the grid
// as space separated rows:
//
//	name: tiny
//	terrain:
//	  - {symbol: ".", label: Plains, cost: 1}
//	  - {symbol: "#", label: Wall, impassable: true}
//	rows:
//	  - ". . #"
//	  - ". # ."
//
// Two worlds are built in: "small" (7×7) and "large" (27×27).
package worlds

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfinder/gridworld"
)

//go:embed data/*.yaml
var builtin embed.FS

var (
	// ErrUnknownWorld indicates no built-in world has the requested name.
	ErrUnknownWorld = errors.New("worlds: unknown world")
	// ErrMalformed indicates a world file that cannot describe a grid.
	ErrMalformed = errors.New("worlds: malformed world file")
)

// Terrain describes one symbol of a world.
type Terrain struct {
	Symbol     gridworld.Symbol `yaml:"symbol"`
	Label      string           `yaml:"label"`
	Cost       int              `yaml:"cost"`
	Impassable bool             `yaml:"impassable"`
}

// World is a parsed world file.
type World struct {
	Name        string
	Description string
	Terrain     []Terrain
	Grid        *gridworld.Grid
}

type document struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Terrain     []Terrain `yaml:"terrain"`
	Rows        []string  `yaml:"rows"`
}

// DefaultCosts returns the cost table shared by the built-in worlds.
func DefaultCosts() gridworld.CostTable {
	return gridworld.CostTable{"🌾": 1, "🌲": 3, "🪨": 5, "🐊": 7}
}

// Parse decodes and validates a world file. Unknown keys are rejected.
// Exactly one terrain must be impassable, symbols must be unique, costs
// non-negative, and every grid symbol must be listed.
func Parse(data []byte) (*World, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformed)
	}

	var impassable gridworld.Symbol
	seen := make(map[gridworld.Symbol]bool, len(doc.Terrain))
	for _, t := range doc.Terrain {
		if t.Symbol == "" {
			return nil, fmt.Errorf("%w: terrain without symbol", ErrMalformed)
		}
		if seen[t.Symbol] {
			return nil, fmt.Errorf("%w: terrain %q listed twice", ErrMalformed, t.Symbol)
		}
		seen[t.Symbol] = true
		if t.Impassable {
			if impassable != "" {
				return nil, fmt.Errorf("%w: more than one impassable terrain", ErrMalformed)
			}
			impassable = t.Symbol
		}
	}
	if impassable == "" {
		return nil, fmt.Errorf("%w: no impassable terrain", ErrMalformed)
	}

	g, err := gridworld.FromRows(doc.Rows, impassable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	w := &World{
		Name:        doc.Name,
		Description: doc.Description,
		Terrain:     doc.Terrain,
		Grid:        g,
	}
	if err := w.Costs().Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return w, nil
}

// Load returns the built-in world with the given name.
func Load(name string) (*World, error) {
	data, err := builtin.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorld, name)
	}
	return Parse(data)
}

// Names lists the built-in worlds, sorted.
func Names() []string {
	entries, _ := fs.ReadDir(builtin, "data")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Costs returns a fresh cost table for the passable terrain. Callers may
// edit it freely.
func (w *World) Costs() gridworld.CostTable {
	ct := make(gridworld.CostTable, len(w.Terrain))
	for _, t := range w.Terrain {
		if !t.Impassable {
			ct[t.Symbol] = t.Cost
		}
	}
	return ct
}

// Label returns the display name of s, or s itself when unlabelled.
func (w *World) Label(s gridworld.Symbol) string {
	for _, t := range w.Terrain {
		if t.Symbol == s && t.Label != "" {
			return t.Label
		}
	}
	return string(s)
}
