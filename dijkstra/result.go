package dijkstra

import (
	"sort"

	"github.com/katalvlaran/orientpath/grid"
)

// Result is the outcome of one Search. It owns the cost map and predecessor
// multimap of that search; both are read-only after Search returns.
type Result struct {
	// Start is the start cell paired with the configured start heading.
	Start State
	// End is the destination cell.
	End grid.Coordinate
	// Best is the minimum cost to reach End, or Unreachable.
	Best Cost
	// Terminals lists every State at End whose cost equals Best,
	// in heading order (Up, Right, Down, Left). Empty when unreachable.
	Terminals []State
	// Explored counts states settled by the main loop.
	Explored int

	cost map[State]Cost
	pred map[State][]State
}

// Reachable reports whether any route from Start to End exists.
func (r *Result) Reachable() bool {
	return r.Best != Unreachable
}

// CostOf returns the best known cost of s, or Unreachable if s was never
// discovered.
func (r *Result) CostOf(s State) Cost {
	if c, ok := r.cost[s]; ok {
		return c
	}
	return Unreachable
}

// Predecessors returns a copy of every predecessor reaching s at CostOf(s).
// The start state and undiscovered states have none.
func (r *Result) Predecessors(s State) []State {
	p := r.pred[s]
	if len(p) == 0 {
		return nil
	}
	out := make([]State, len(p))
	copy(out, p)
	return out
}

// Discovered returns the number of distinct states the search assigned a cost.
func (r *Result) Discovered() int {
	return len(r.cost)
}

// Cells returns the union of coordinates on every optimal path from Start to
// any terminal state. Empty when End is unreachable.
//
// Backward walk over the predecessor DAG with an explicit work stack, so the
// goroutine stack stays flat regardless of path length. Each state is expanded
// once; shared suffixes are not re-walked.
//
// Complexity: O(S + P) time, O(S) memory.
func (r *Result) Cells() map[grid.Coordinate]struct{} {
	cells := make(map[grid.Coordinate]struct{})
	if !r.Reachable() {
		return cells
	}

	seen := make(map[State]bool, len(r.Terminals))
	stack := make([]State, 0, len(r.Terminals))
	for _, t := range r.Terminals {
		if !seen[t] {
			seen[t] = true
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells[s.Pos] = struct{}{}

		if s == r.Start {
			continue
		}
		for _, p := range r.pred[s] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	return cells
}

// SortedCells returns Cells in row-major order.
func (r *Result) SortedCells() []grid.Coordinate {
	set := r.Cells()
	out := make([]grid.Coordinate, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// pathFrame is one level of the Paths work stack: a state and the index of
// the next predecessor to descend into.
type pathFrame struct {
	state State
	next  int
}

// Paths enumerates every optimal path as a forward sequence of states from
// Start to a terminal state. Terminals are visited in order and, within one
// terminal, predecessors in the order they were recorded, so the output is
// deterministic.
//
// The number of optimal paths can grow exponentially with grid size.
// limit > 0 caps the output: once more than limit paths exist the first limit
// are returned together with ErrPathLimit. limit <= 0 means no cap.
func (r *Result) Paths(limit int) ([][]State, error) {
	if !r.Reachable() {
		return nil, nil
	}

	var paths [][]State
	for _, t := range r.Terminals {
		stack := []pathFrame{{state: t}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.state == r.Start {
				// The stack holds terminal→start; emit it reversed.
				p := make([]State, len(stack))
				for i := range stack {
					p[len(stack)-1-i] = stack[i].state
				}
				if limit > 0 && len(paths) == limit {
					return paths, ErrPathLimit
				}
				paths = append(paths, p)
				stack = stack[:len(stack)-1]
				continue
			}

			preds := r.pred[top.state]
			if top.next >= len(preds) {
				stack = stack[:len(stack)-1]
				continue
			}
			p := preds[top.next]
			top.next++
			stack = append(stack, pathFrame{state: p})
		}
	}

	return paths, nil
}
