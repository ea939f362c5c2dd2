package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid matches every *InvalidGridError via errors.Is.
	ErrInvalidGrid = errors.New("maze: invalid grid")
	// ErrNilMaze is returned when a nil *Maze is passed to an operation.
	ErrNilMaze = errors.New("maze: maze is nil")
	// ErrNotOpen is returned by WithWall for cells that cannot become walls.
	ErrNotOpen = errors.New("maze: cell is not an open in-bounds cell")
)

// ErrorKind classifies why a grid was rejected.
type ErrorKind uint8

const (
	// EmptyGrid: no rows, or a first row with no cells.
	EmptyGrid ErrorKind = iota + 1
	// RaggedRows: a row length differs from the first row.
	RaggedRows
	// UnknownCell: a character outside '#', '.', 'S', 'E'.
	UnknownCell
	// MissingStart: no 'S'.
	MissingStart
	// DuplicateStart: more than one 'S'.
	DuplicateStart
	// MissingEnd: no 'E'.
	MissingEnd
	// DuplicateEnd: more than one 'E'.
	DuplicateEnd
)

var kindNames = map[ErrorKind]string{
	EmptyGrid:      "empty grid",
	RaggedRows:     "ragged rows",
	UnknownCell:    "unknown cell",
	MissingStart:   "missing start",
	DuplicateStart: "duplicate start",
	MissingEnd:     "missing end",
	DuplicateEnd:   "duplicate end",
}

// String returns a short human-readable name.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// InvalidGridError reports malformed maze text. Row and Col locate the
// offending cell or row when one exists, and are -1 otherwise.
type InvalidGridError struct {
	Kind   ErrorKind
	Row    int
	Col    int
	Detail string
}

// Error implements the error interface.
func (e *InvalidGridError) Error() string {
	msg := "maze: invalid grid: " + e.Kind.String()
	switch {
	case e.Row >= 0 && e.Col >= 0:
		msg += fmt.Sprintf(" at (%d,%d)", e.Row, e.Col)
	case e.Row >= 0:
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalidGrid) match any *InvalidGridError.
func (e *InvalidGridError) Is(target error) bool {
	return target == ErrInvalidGrid
}

func invalid(kind ErrorKind, row, col int, format string, args ...any) *InvalidGridError {
	return &InvalidGridError{Kind: kind, Row: row, Col: col, Detail: fmt.Sprintf(format, args...)}
}
