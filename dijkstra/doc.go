// Package dijkstra provides an oriented-state Dijkstra search on 2D grids
// that reports the minimum travel cost and every cell lying on at least one
// minimum-cost route.
//
// Overview:
//
//   - The traveller has a position and a heading. Stepping to a neighbour
//     costs MoveCost, plus TurnCost per 90° turn needed to face it first
//     (0, 1 or 2 turns). Defaults: 1 per step, 1000 per turn.
//   - Search nodes are States (cell, heading), so up to 4 per cell.
//   - Relaxation keeps all equally-cheap predecessors of a state, so the
//     predecessor multimap is a DAG of every optimal route, not a tree.
//
// When to use:
//
//   - Maze scoring where turning is expensive (robots, vehicles, reindeer).
//   - Finding the "corridor" of cells shared by all optimal routes: cells in
//     Result.Cells that every path in Result.Paths passes through.
//
// Key features:
//
//   - Functional options for edge weights, start heading and a state cap.
//   - Deterministic frontier order: cost, then coordinate, then heading.
//   - Every heading at the destination that attains the minimum is a terminal.
//   - Path reconstruction with explicit work stacks; no recursion.
//   - Optional slog logger and settle hook for tracing.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4 × passable cells.
//   - Space: O(S) for costs, predecessors and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilTerrain, ErrStartBlocked, ErrEndBlocked: invalid input.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrStateLimit: WithMaxStates cap exceeded; the search is not retried.
//   - ErrPathLimit: Result.Paths found more paths than requested.
//
// An unreachable destination is not an error: Result.Best == Unreachable,
// Result.Terminals is empty and Result.Cells is empty.
//
// API reference:
//
//	func Search(t Terrain, start, end grid.Coordinate, opts ...Option) (*Result, error)
//	func (r *Result) Cells() map[grid.Coordinate]struct{}
//	func (r *Result) Paths(limit int) ([][]State, error)
package dijkstra
