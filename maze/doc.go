// Package maze reads the '#', '.', 'S', 'E' text alphabet into a validated
// grid and answers the two questions the oriented search exists for:
//
//   - LowestScore: the cheapest cost from S (facing Right) to E, where each
//     step costs 1 and each 90° turn costs 1000.
//   - CellsOnAnyOptimalPath: how many cells lie on at least one route of that cost.
//
// Input is validated before any search runs. Malformed text (no rows, ragged
// rows, unknown characters, a missing or repeated S or E) is rejected with an
// *InvalidGridError that also matches ErrInvalidGrid. An unreachable E is not
// an error: LowestScore returns dijkstra.Unreachable and
// CellsOnAnyOptimalPath returns 0.
//
// Maze implements dijkstra.Terrain, so callers needing the full result
// (terminal headings, predecessor lists, every path) can use Solve.
package maze
