package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a converter rejected a cell while building from text.
	ErrBadCell = errors.New("grid: cell conversion failed")
)

// Coordinate addresses a single cell by row and column.
// Both components are zero-based; negative values are never in bounds.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Less reports whether c precedes o in row-major order.
// Used only for deterministic tie-breaking.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Step returns the coordinate one cell away in heading h.
// The result may be out of bounds; callers check with Grid.InBounds.
func (c Coordinate) Step(h Heading) Coordinate {
	dr, dc := h.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
