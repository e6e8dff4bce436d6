// Command wayfinder plans a least-cost walk across a terrain world and
// prints the annotated map.
//
// Usage:
//
//	wayfinder --world large --start 0,0 --goal 26,26
//	wayfinder -w small --cost Forest=2 --moves right,down --compare
//	wayfinder --file my.yaml --cost 🌾=1,🐊=9
//	wayfinder --list
//
// Positions are x,y with x the column and y the row, both from zero. The
// goal defaults to the bottom-right corner.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/wayfinder/gridworld"
	"github.com/katalvlaran/wayfinder/planner"
	"github.com/katalvlaran/wayfinder/render"
	"github.com/katalvlaran/wayfinder/worlds"
)

func main() {
	var (
		worldName string
		file      string
		costs     map[string]int
		moves     []string
		start     []int
		goal      []int
		compare   bool
		list      bool
	)
	pflag.StringVarP(&worldName, "world", "w", "small", "built-in world to load")
	pflag.StringVarP(&file, "file", "f", "", "load a world from a YAML file instead")
	pflag.StringToIntVarP(&costs, "cost", "c", nil, "override terrain costs, by symbol or label (Forest=2)")
	pflag.StringSliceVarP(&moves, "moves", "m", nil, "allowed moves: right,left,up,down (default all four)")
	pflag.IntSliceVarP(&start, "start", "s", []int{0, 0}, "start position x,y")
	pflag.IntSliceVarP(&goal, "goal", "g", nil, "goal position x,y (default bottom-right)")
	pflag.BoolVar(&compare, "compare", false, "also report the exact optimum")
	pflag.BoolVar(&list, "list", false, "list built-in worlds and exit")
	pflag.Parse()

	if list {
		for _, n := range worlds.Names() {
			fmt.Println(n)
		}
		return
	}

	w, err := loadWorld(worldName, file)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}
	table, err := applyCosts(w, costs)
	if err != nil {
		log.Fatalf("costs: %v", err)
	}
	moveSet := gridworld.Cardinal()
	if len(moves) > 0 {
		if moveSet, err = gridworld.ParseMoves(moves...); err != nil {
			log.Fatalf("moves: %v", err)
		}
	}
	from, err := toPoint("start", start)
	if err != nil {
		log.Fatal(err)
	}
	to := gridworld.Point{X: w.Grid.Cols() - 1, Y: w.Grid.Rows() - 1}
	if goal != nil {
		if to, err = toPoint("goal", goal); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("World: %s (%dx%d)\n", w.Name, w.Grid.Cols(), w.Grid.Rows())
	fmt.Println("Costs:")
	for _, t := range w.Terrain {
		if t.Impassable {
			fmt.Printf("  %s %-10s impassable\n", t.Symbol, w.Label(t.Symbol))
			continue
		}
		fmt.Printf("  %s %-10s %d\n", t.Symbol, w.Label(t.Symbol), table[t.Symbol])
	}
	fmt.Printf("Actions: %s\n", strings.Join(moveSet.Names(), ", "))
	fmt.Printf("Start: %v  Goal: %v\n\n", from, to)

	sol, err := planner.Plan(planner.Request{
		Grid:    w.Grid,
		Costs:   table,
		Moves:   moveSet,
		Start:   from,
		Goal:    to,
		Compare: compare,
	})
	if err != nil {
		log.Fatalf("plan: %v", err)
	}

	if !sol.Found {
		fmt.Println("❌ NO SOLUTION")
		fmt.Println()
		fmt.Println(render.Format(w.Grid.Cells()))
		return
	}

	names := make([]string, 0, len(sol.Offsets))
	for _, o := range sol.Offsets {
		if o != gridworld.Arrived {
			names = append(names, o.Name())
		}
	}
	fmt.Printf("Path Cost: %d\n", sol.Cost)
	fmt.Printf("Path: %s\n", strings.Join(names, " "))
	if sol.OptimalKnown {
		fmt.Printf("Search cost: %d  Optimal: %d", sol.SearchCost, sol.Optimal)
		if sol.Suboptimal() {
			fmt.Print("  (a cheaper path exists)")
		}
		fmt.Println()
	}
	fmt.Printf("Expanded: %d\n\n", sol.Expanded)
	fmt.Println(sol.Rendered)
}

func loadWorld(name, file string) (*worlds.World, error) {
	if file == "" {
		return worlds.Load(name)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return worlds.Parse(data)
}

// applyCosts overlays overrides on the world's table. Keys match a terrain
// symbol or, case-insensitively, its label.
func applyCosts(w *worlds.World, overrides map[string]int) (gridworld.CostTable, error) {
	table := w.Costs()
	for key, c := range overrides {
		sym, ok := lookup(w, key)
		if !ok {
			return nil, fmt.Errorf("unknown terrain %q", key)
		}
		if sym == w.Grid.Impassable() {
			return nil, fmt.Errorf("terrain %q is impassable", key)
		}
		table[sym] = c
	}
	if err := table.Validate(w.Grid); err != nil {
		return nil, err
	}
	return table, nil
}

func lookup(w *worlds.World, key string) (gridworld.Symbol, bool) {
	for _, t := range w.Terrain {
		if string(t.Symbol) == key || strings.EqualFold(t.Label, key) {
			return t.Symbol, true
		}
	}
	return "", false
}

func toPoint(flag string, xy []int) (gridworld.Point, error) {
	if len(xy) != 2 {
		return gridworld.Point{}, fmt.Errorf("--%s wants x,y, got %v", flag, xy)
	}
	return gridworld.Point{X: xy[0], Y: xy[1]}, nil
}
