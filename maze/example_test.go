package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orientpath/maze"
)

// Example parses a maze with two equally cheap routes, scores it and draws
// the union of both routes.
func Example() {
	m, err := maze.Read(strings.NewReader("#####\n#S.##\n#..E#\n#####\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	score, _ := maze.LowestScore(m)
	cells, _ := maze.CellsOnAnyOptimalPath(m)
	fmt.Println("score:", score, "cells:", cells)

	res, _ := maze.Solve(m)
	fmt.Print(maze.Render(m, res.Cells()))
	// Output:
	// score: 2003 cells: 5
	// #####
	// #OO##
	// #OOO#
	// #####
}

// ExampleParse shows the structured error returned for malformed input.
func ExampleParse() {
	_, err := maze.Parse([]string{
		"#####",
		"#S?E#",
		"#####",
	})
	fmt.Println(err)
	// Output:
	// maze: invalid grid: unknown cell at (1,2): '?'
}
