package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/orientpath/grid"
)

// Cell is the content of one maze square.
type Cell uint8

const (
	// Open is a free square ('.').
	Open Cell = iota
	// Wall blocks movement ('#').
	Wall
	// Start is the unique start square ('S'); passable.
	Start
	// End is the unique destination square ('E'); passable.
	End
)

// Rune returns the text symbol of c.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// cellFromRune maps a text symbol to a Cell.
func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Open, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	default:
		return 0, false
	}
}

// Maze is a validated grid with exactly one start and one end.
// It is immutable; WithWall returns a modified copy.
type Maze struct {
	cells *grid.Grid[Cell]
	start grid.Coordinate
	end   grid.Coordinate
}

// Parse validates lines and builds a Maze. All checks run before any search:
//  1. At least one non-empty row (EmptyGrid).
//  2. Every row has the first row's length in runes (RaggedRows).
//  3. Every rune is one of '#', '.', 'S', 'E' (UnknownCell).
//  4. Exactly one 'S' and one 'E' (Missing/Duplicate Start/End).
//
// The first violation found in row-major order is returned.
func Parse(lines []string) (*Maze, error) {
	// 1) Non-empty
	if len(lines) == 0 || lines[0] == "" {
		return nil, invalid(EmptyGrid, -1, -1, "")
	}

	// 2) + 3) Shape and alphabet
	width := utf8.RuneCountInString(lines[0])
	for r, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, invalid(RaggedRows, r, -1, "%d cells, want %d", n, width)
		}
		col := 0
		for _, ch := range line {
			if _, ok := cellFromRune(ch); !ok {
				return nil, invalid(UnknownCell, r, col, "%q", ch)
			}
			col++
		}
	}

	g, err := grid.FromLines(lines, func(r rune) (Cell, error) {
		c, ok := cellFromRune(r)
		if !ok {
			return 0, fmt.Errorf("unknown cell %q", r)
		}
		return c, nil
	})
	if err != nil {
		// Unreachable after the checks above; keep the error visible anyway.
		return nil, fmt.Errorf("maze: build grid: %w", err)
	}

	// 4) Unique endpoints
	start, err := unique(g, Start, MissingStart, DuplicateStart)
	if err != nil {
		return nil, err
	}
	end, err := unique(g, End, MissingEnd, DuplicateEnd)
	if err != nil {
		return nil, err
	}

	return &Maze{cells: g, start: start, end: end}, nil
}

// unique returns the only coordinate holding v.
func unique(g *grid.Grid[Cell], v Cell, missing, duplicate ErrorKind) (grid.Coordinate, error) {
	found := g.Find(v)
	switch len(found) {
	case 0:
		return grid.Coordinate{}, invalid(missing, -1, -1, "no %q", v.Rune())
	case 1:
		return found[0], nil
	default:
		second := found[1]
		return grid.Coordinate{}, invalid(duplicate, second.Row, second.Col,
			"%d cells hold %q, first at %s", len(found), v.Rune(), found[0])
	}
}

// Read consumes r line by line and parses the result. Carriage returns are
// stripped and trailing blank lines ignored, so files saved on any platform
// with or without a final newline are accepted.
func Read(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines)
}

// Start returns the start coordinate.
func (m *Maze) Start() grid.Coordinate { return m.start }

// End returns the destination coordinate.
func (m *Maze) End() grid.Coordinate { return m.end }

// Rows returns the maze height.
func (m *Maze) Rows() int { return m.cells.Rows() }

// Cols returns the maze width.
func (m *Maze) Cols() int { return m.cells.Cols() }

// Cell returns the content at c; ok is false out of bounds.
func (m *Maze) Cell(c grid.Coordinate) (Cell, bool) {
	return m.cells.Get(c)
}

// Adjacent implements dijkstra.Terrain.
func (m *Maze) Adjacent(c grid.Coordinate) []grid.Coordinate {
	return m.cells.Adjacent(c)
}

// Passable implements dijkstra.Terrain: any in-bounds non-wall cell.
func (m *Maze) Passable(c grid.Coordinate) bool {
	v, ok := m.cells.Get(c)
	return ok && v != Wall
}

// WithWall returns a copy of m with an extra wall at c.
// Only Open cells can be walled; anything else yields ErrNotOpen.
func (m *Maze) WithWall(c grid.Coordinate) (*Maze, error) {
	if v, ok := m.cells.Get(c); !ok || v != Open {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, c)
	}
	cells := m.cells.Clone()
	cells.Set(c, Wall)

	return &Maze{cells: cells, start: m.start, end: m.end}, nil
}

// String renders the maze back to its text form.
func (m *Maze) String() string {
	return render(m.cells, func(_ grid.Coordinate, c Cell) rune { return c.Rune() })
}

// render draws g row by row using sym for every cell; rows end in '\n'.
func render(g *grid.Grid[Cell], sym func(grid.Coordinate, Cell) rune) string {
	var b strings.Builder
	b.Grow(g.Len() + g.Rows())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := grid.At(r, c)
			v, _ := g.Get(at)
			b.WriteRune(sym(at, v))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
