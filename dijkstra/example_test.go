// Package dijkstra_test provides examples demonstrating the oriented search.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/orientpath/dijkstra"
	"github.com/katalvlaran/orientpath/grid"
)

// openTerrain is a terrain where every in-bounds cell of a rows×cols box is
// passable except the listed walls.
type openTerrain struct {
	g     *grid.Grid[bool]
	walls map[grid.Coordinate]bool
}

func newOpenTerrain(rows, cols int, walls ...grid.Coordinate) openTerrain {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	g, _ := grid.New(cells)
	w := make(map[grid.Coordinate]bool, len(walls))
	for _, c := range walls {
		w[c] = true
	}
	return openTerrain{g: g, walls: w}
}

func (o openTerrain) Adjacent(c grid.Coordinate) []grid.Coordinate { return o.g.Adjacent(c) }
func (o openTerrain) Passable(c grid.Coordinate) bool { return o.g.InBounds(c) && !o.walls[c] }

// ExampleSearch computes the cheapest route across a 3×3 box whose cell
// (0,1) is blocked. The traveller starts at (0,0) facing Right, so the wall
// forces an immediate turn Down.
func ExampleSearch() {
	// 1) Build a 3×3 terrain with a wall at (0,1).
	t := newOpenTerrain(3, 3, grid.At(0, 1))

	// 2) Search from the top-left to the bottom-right corner.
	res, err := dijkstra.Search(t, grid.At(0, 0), grid.At(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Down, Down, Right, Right: two turns (2000) plus four steps.
	fmt.Println("best:", res.Best)
	fmt.Println("terminals:", res.Terminals)
	fmt.Println("cells:", res.SortedCells())
	// Output:
	// best: 2004
	// terminals: [(2,2)/Right]
	// cells: [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleResult_Paths lists every optimal route when turning is free.
func ExampleResult_Paths() {
	t := newOpenTerrain(2, 2)

	res, _ := dijkstra.Search(t, grid.At(0, 0), grid.At(1, 1), dijkstra.WithTurnCost(0))
	paths, _ := res.Paths(0)
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [(0,0)/Right (1,0)/Down (1,1)/Right]
	// [(0,0)/Right (0,1)/Right (1,1)/Down]
}
