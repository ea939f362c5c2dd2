// Package grid provides the rectangular cell container, the row/column
// Coordinate and the four-way Heading used by the oriented shortest-path
// search in github.com/katalvlaran/orientpath/dijkstra.
//
// What:
//
//   - Grid[T] wraps a row-major, rectangular [][]T with bounds-checked access.
//   - Coordinate is a (Row, Col) value type with a row-major total order.
//   - Heading enumerates Up, Right, Down, Left with quarter-turn rotations.
//
// Why:
//
//   - Mazes, tile maps and board puzzles are grids first and graphs second;
//     keeping the container generic lets callers pick their own cell type.
//   - A fixed neighbour order (Up, Left, Down, Right) keeps every traversal
//     reproducible across runs.
//
// Complexity:
//
//   - New, FromLines: O(W×H) time and memory (deep copy).
//   - Get, Set, InBounds, Index: O(1).
//   - Adjacent: O(1), at most 4 results.
//   - Find: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell:        a FromLines converter rejected a rune (wrapped with its position).
package grid
