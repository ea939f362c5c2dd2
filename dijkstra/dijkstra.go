// Package dijkstra implements an oriented-state Dijkstra search on a grid.
//
// The search walks the implicit graph of States (cell, heading) and keeps,
// for every state, the full list of predecessors that reach it at its best
// cost. That multimap is what lets Result.Cells recover every cell on every
// optimal route rather than one arbitrary route.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4 × |passable cells|
//   - Each state is settled at most once; each settle relaxes ≤ 4 edges.
//   - Each heap Push/Pop costs O(log N), N ≤ pushes ≤ 4S.
//   - Space: O(S + P) where P = total predecessor entries (≤ 4S).
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: superseded heap entries stay and are skipped on pop.
//   - Relaxation is tagged improved / tied / worse. A tie appends the
//     predecessor without re-pushing; the state is already scheduled at that cost.
//   - Once the destination is first popped at cost B, entries at cost B are
//     still drained (settled, not expanded) and the loop stops at the first
//     entry above B. All terminal headings at B are then read from the cost map.
//   - Terminal states are never expanded: any continuation through the
//     destination costs strictly more than B.
package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/orientpath/grid"
)

// Search computes the minimum cost of travelling from start to end over t,
// beginning with Options.StartHeading, and the predecessor multimap needed to
// reconstruct every optimal path.
//
// Returns:
//
//   - *Result with Best == Unreachable and no Terminals when no route exists
//     (not an error).
//   - err for invalid input (nil terrain, blocked endpoints, bad options) or
//     when MaxStates is exceeded.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTerrain).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must be passable (ErrStartBlocked).
//  4. end must be passable (ErrEndBlocked).
func Search(t Terrain, start, end grid.Coordinate, opts ...Option) (*Result, error) {
	// 1) Validate terrain is non-nil
	if t == nil {
		return nil, ErrNilTerrain
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate both endpoints can be occupied
	if !t.Passable(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}
	if !t.Passable(end) {
		return nil, fmt.Errorf("%w: %s", ErrEndBlocked, end)
	}

	// 4) Prepare runner state and run the main loop
	r := &runner{
		terrain: t,
		options: cfg,
		start:   State{Pos: start, Heading: cfg.StartHeading},
		end:     end,
		cost:    make(map[State]Cost),
		pred:    make(map[State][]State),
		pq:      make(frontier, 0, 64),
		best:    Unreachable,
	}
	r.init()
	if err := r.process(); err != nil {
		cfg.Logger.Debug("oriented search aborted",
			slog.String("start", r.start.String()),
			slog.String("end", end.String()),
			slog.Int("states", len(r.cost)),
			slog.Any("error", err))
		return nil, err
	}

	res := r.result()
	cfg.Logger.Debug("oriented search complete",
		slog.String("start", r.start.String()),
		slog.String("end", end.String()),
		slog.Int64("best", res.Best),
		slog.Int("terminals", len(res.Terminals)),
		slog.Int("explored", res.Explored),
		slog.Int("states", len(r.cost)))

	return res, nil
}

// relaxOutcome tags what a relaxation did to the successor's record.
type relaxOutcome uint8

const (
	// relaxWorse: the offered cost is above the known cost; nothing changes.
	relaxWorse relaxOutcome = iota
	// relaxTied: the offered cost equals the known cost; predecessor appended.
	relaxTied
	// relaxImproved: strictly cheaper; cost replaced, predecessors reset, pushed.
	relaxImproved
)

// runner holds the mutable state for a single search execution.
// It is owned by one Search call and never shared.
type runner struct {
	terrain  Terrain           // Read-only graph being searched
	options  Options           // Validated configuration
	start    State             // Start cell with the configured heading
	end      grid.Coordinate   // Destination cell
	cost     map[State]Cost    // Best known cost per discovered state
	pred     map[State][]State // All predecessors achieving cost[state]
	pq       frontier          // Min-heap of scheduled states
	best     Cost              // Cost of the first destination pop; Unreachable until then
	explored int               // Number of states settled
}

// init seeds the frontier with the start state at cost 0.
func (r *runner) init() {
	r.cost[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{cost: 0, state: r.start})
}

// process is the main loop. It pops the cheapest entry, discards stale ones,
// records the destination cost on first arrival and relaxes everything else.
//
// Loop termination conditions:
//
//   - The heap becomes empty (destination unreachable or fully drained).
//   - The popped cost exceeds the destination cost already found.
//   - The number of discovered states exceeds MaxStates (ErrStateLimit).
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)

		// 1) Stale entry: a cheaper relaxation superseded it.
		if item.cost > r.cost[item.state] {
			continue
		}

		// 2) Everything at or below best is settled; nothing above can matter.
		if item.cost > r.best {
			break
		}

		r.explored++
		r.options.OnSettle(item.state, item.cost)

		// 3) Destination reached: fix best on first arrival, never expand.
		if item.state.Pos == r.end {
			if r.best == Unreachable {
				r.best = item.cost
			}
			continue
		}

		// 4) Successors of a best-cost state all cost more than best.
		if item.cost == r.best {
			continue
		}

		if err := r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every passable neighbour of the popped state.
func (r *runner) relax(from frontierItem) error {
	pos := from.state.Pos
	for _, next := range r.terrain.Adjacent(pos) {
		if !r.terrain.Passable(next) {
			continue
		}
		h, ok := grid.Toward(pos, next)
		if !ok {
			// Terrain returned a non-orthogonal neighbour; ignore it.
			continue
		}

		succ := State{Pos: next, Heading: h}
		newCost := addCost(from.cost, r.options.stepCost(from.state.Heading, h))
		if r.offer(succ, newCost, from.state) != relaxImproved {
			continue
		}
		if r.options.MaxStates > 0 && len(r.cost) > r.options.MaxStates {
			return fmt.Errorf("%w: %d states discovered, limit %d",
				ErrStateLimit, len(r.cost), r.options.MaxStates)
		}
	}

	return nil
}

// offer applies one relaxation of succ reached from via at cost c.
func (r *runner) offer(succ State, c Cost, via State) relaxOutcome {
	old, seen := r.cost[succ]
	switch {
	case !seen || c < old:
		r.cost[succ] = c
		r.pred[succ] = []State{via}
		heap.Push(&r.pq, frontierItem{cost: c, state: succ})
		return relaxImproved
	case c == old:
		r.pred[succ] = append(r.pred[succ], via)
		return relaxTied
	default:
		return relaxWorse
	}
}

// result freezes the runner's maps into a Result. Terminals lists every
// heading at the destination whose cost equals best, in heading order.
func (r *runner) result() *Result {
	res := &Result{
		Start:    r.start,
		End:      r.end,
		Best:     r.best,
		Explored: r.explored,
		cost:     r.cost,
		pred:     r.pred,
	}
	if r.best == Unreachable {
		return res
	}
	for _, h := range grid.Headings {
		s := State{Pos: r.end, Heading: h}
		if c, ok := r.cost[s]; ok && c == r.best {
			res.Terminals = append(res.Terminals, s)
		}
	}

	return res
}

// addCost adds without wrapping; sums at or above Unreachable saturate.
func addCost(a, b Cost) Cost {
	if a >= Unreachable-b {
		return Unreachable
	}
	return a + b
}
