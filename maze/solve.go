package maze

import (
	"github.com/katalvlaran/orientpath/dijkstra"
	"github.com/katalvlaran/orientpath/grid"
)

// Solve runs the oriented search from m's start to its end. opts are passed
// through to dijkstra.Search; without any, the traveller starts facing Right
// and pays 1 per step and 1000 per quarter turn.
func Solve(m *Maze, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	return dijkstra.Search(m, m.start, m.end, opts...)
}

// LowestScore returns the minimum cost from start to end, or
// dijkstra.Unreachable when no route exists.
func LowestScore(m *Maze, opts ...dijkstra.Option) (dijkstra.Cost, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	return res.Best, nil
}

// CellsOnAnyOptimalPath returns how many distinct cells lie on at least one
// minimum-cost route, start and end included. 0 when unreachable.
func CellsOnAnyOptimalPath(m *Maze, opts ...dijkstra.Option) (int, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	return len(res.Cells()), nil
}

// Render draws m with every cell in cells replaced by 'O'.
func Render(m *Maze, cells map[grid.Coordinate]struct{}) string {
	return render(m.cells, func(at grid.Coordinate, c Cell) rune {
		if _, ok := cells[at]; ok {
			return 'O'
		}
		return c.Rune()
	})
}

// headingArrows maps a heading to the arrow drawn by RenderPath.
var headingArrows = map[grid.Heading]rune{
	grid.Up:    '^',
	grid.Right: '>',
	grid.Down:  'v',
	grid.Left:  '<',
}

// RenderPath draws m with each state of path shown as an arrow in the
// heading faced on arrival. Start and end keep their letters.
func RenderPath(m *Maze, path []dijkstra.State) string {
	facing := make(map[grid.Coordinate]grid.Heading, len(path))
	for _, s := range path {
		facing[s.Pos] = s.Heading
	}
	return render(m.cells, func(at grid.Coordinate, c Cell) rune {
		if h, ok := facing[at]; ok && c == Open {
			return headingArrows[h]
		}
		return c.Rune()
	})
}
