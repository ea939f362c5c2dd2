// Package dijkstra defines core types and configuration options for the
// oriented-state Dijkstra search over a 2D grid.
//
// A search node is a State: a grid cell paired with the Heading the traveller
// faces. Moving to a neighbour costs MoveCost plus TurnCost for every quarter
// turn needed to face it first, so the same cell reached with different
// headings is a distinct node with its own cost and predecessors.
//
// Options:
//
//	– StartHeading: heading at the start cell (default Right).
//	– MoveCost:     cost of one step into a neighbour (default 1, must be ≥ 1).
//	– TurnCost:     cost of one 90° turn (default 1000, must be ≥ 0).
//	– MaxStates:    cap on distinct discovered states (0 = no cap).
//	– Logger:       optional *slog.Logger for a debug summary.
//	– OnSettle:     optional hook called for every state popped at its final cost.
//
// Errors (sentinel):
//
//	– ErrNilTerrain      if the provided Terrain is nil.
//	– ErrStartBlocked    if the start cell is out of bounds or not passable.
//	– ErrEndBlocked      if the end cell is out of bounds or not passable.
//	– ErrOptionViolation if an option received an invalid value.
//	– ErrStateLimit      if MaxStates is exceeded during the search.
//	– ErrPathLimit       if Paths produced more paths than the requested limit.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/orientpath/grid"
)

// Sentinel errors returned by the oriented Dijkstra implementation.
var (
	// ErrNilTerrain indicates that a nil Terrain was passed to Search.
	ErrNilTerrain = errors.New("dijkstra: terrain is nil")

	// ErrStartBlocked indicates the start coordinate cannot be occupied.
	ErrStartBlocked = errors.New("dijkstra: start cell is not passable")

	// ErrEndBlocked indicates the end coordinate cannot be occupied.
	ErrEndBlocked = errors.New("dijkstra: end cell is not passable")

	// ErrOptionViolation indicates an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrStateLimit indicates the search discovered more states than MaxStates allows.
	ErrStateLimit = errors.New("dijkstra: state limit exceeded")

	// ErrPathLimit indicates Paths found more optimal paths than requested.
	ErrPathLimit = errors.New("dijkstra: path limit exceeded")
)

// Cost is an accumulated path weight. Unreachable is reserved as "no route".
type Cost = int64

// Unreachable is the sentinel cost of a state or destination with no route.
const Unreachable Cost = math.MaxInt64

// Default edge weights.
const (
	DefaultMoveCost Cost = 1
	DefaultTurnCost Cost = 1000
)

// State is the unit of search: a cell together with the heading faced there.
// Two states at the same cell but with different headings are distinct.
type State struct {
	Pos     grid.Coordinate
	Heading grid.Heading
}

// String renders the state as "(row,col)/Heading".
func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Pos, s.Heading)
}

// less orders states by coordinate then heading. Used only to break cost ties.
func (s State) less(o State) bool {
	if s.Pos != o.Pos {
		return s.Pos.Less(o.Pos)
	}
	return s.Heading < o.Heading
}

// Terrain is the implicit graph the search walks. Adjacent enumerates
// in-bounds orthogonal neighbours; Passable reports whether a cell may be
// entered. Cells for which Passable is false are never enqueued.
type Terrain interface {
	Adjacent(c grid.Coordinate) []grid.Coordinate
	Passable(c grid.Coordinate) bool
}

// Options configures the behavior of Search.
type Options struct {
	StartHeading grid.Heading          // Heading faced at the start cell
	MoveCost     Cost                  // Cost of one step
	TurnCost     Cost                  // Cost of one quarter turn
	MaxStates    int                   // Max distinct discovered states; 0 disables the cap
	Logger       *slog.Logger          // Receives a debug summary; never nil after DefaultOptions
	OnSettle     func(s State, c Cost) // Called when a state is popped at its final cost

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Search runs.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - StartHeading: grid.Right
//   - MoveCost:     1
//   - TurnCost:     1000
//   - MaxStates:    0 (no cap)
//   - Logger:       a logger that discards everything
//   - OnSettle:     no-op
func DefaultOptions() Options {
	return Options{
		StartHeading: grid.Right,
		MoveCost:     DefaultMoveCost,
		TurnCost:     DefaultTurnCost,
		MaxStates:    0,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnSettle:     func(State, Cost) {},
	}
}

// WithStartHeading sets the heading faced at the start cell.
func WithStartHeading(h grid.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: unknown start heading %d", ErrOptionViolation, h)
			return
		}
		o.StartHeading = h
	}
}

// WithMoveCost sets the cost of a single step. Must be ≥ 1 so that every
// predecessor is strictly cheaper than its successor.
func WithMoveCost(c Cost) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: MoveCost must be at least 1 (%d)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the cost of a single 90° turn. Must be ≥ 0.
func WithTurnCost(c Cost) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: TurnCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithMaxStates caps the number of distinct states the search may discover.
//
//	n > 0: stop with ErrStateLimit once more than n states are known
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLogger routes the end-of-search debug summary to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle registers a callback run each time a state is popped at its
// final cost, in pop order.
func WithOnSettle(fn func(s State, c Cost)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// stepCost returns the weight of moving one cell while turning from one
// heading to another first.
func (o *Options) stepCost(from, to grid.Heading) Cost {
	return o.MoveCost + Cost(from.TurnsTo(to))*o.TurnCost
}
