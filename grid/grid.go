package grid

import "fmt"

// adjacencyOrder is the fixed neighbour enumeration order: Up, Left, Down, Right.
// Tests and renderers rely on it for reproducible output.
var adjacencyOrder = [4]Heading{Up, Left, Down, Right}

// Grid is a rectangular, row-major container of cells of type T.
// Dimensions are fixed at construction; cells change only through Set.
type Grid[T comparable] struct {
	rows, cols int
	cells      [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values does not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New[T comparable](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// FromLines builds a Grid from equal-length text lines, converting each rune
// with convert. A converter error aborts construction and is returned wrapped
// in ErrBadCell together with the offending coordinate.
// Row lengths are measured in runes, not bytes.
func FromLines[T comparable](lines []string, convert func(r rune) (T, error)) (*Grid[T], error) {
	values := make([][]T, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		col := 0
		for _, ch := range line {
			v, err := convert(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %s: %w", ErrBadCell, At(r, col), err)
			}
			row = append(row, v)
			col++
		}
		values[r] = row
	}

	return New(values)
}

// Rows returns the number of rows (height).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns (width).
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the value at c. ok is false when c is out of bounds.
func (g *Grid[T]) Get(c Coordinate) (v T, ok bool) {
	if !g.InBounds(c) {
		return v, false
	}
	return g.cells[c.Row][c.Col], true
}

// Set stores v at c and reports whether c was in bounds.
// Out-of-bounds writes are ignored.
func (g *Grid[T]) Set(c Coordinate, v T) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[c.Row][c.Col] = v
	return true
}

// Find returns every coordinate holding v, in row-major order.
// Complexity: O(W×H).
func (g *Grid[T]) Find(v T) []Coordinate {
	var out []Coordinate
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == v {
				out = append(out, Coordinate{Row: r, Col: c})
			}
		}
	}
	return out
}

// Adjacent returns the in-bounds 4-neighbours of c in the order
// Up, Left, Down, Right. Out-of-bounds neighbours are omitted.
// Complexity: O(1).
func (g *Grid[T]) Adjacent(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(adjacencyOrder))
	for _, h := range adjacencyOrder {
		n := c.Step(h)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([][]T, g.rows)
	for r := range g.cells {
		cells[r] = make([]T, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}
