package dijkstra

// frontierItem is a scheduled (cost, state) pair.
type frontierItem struct {
	cost  Cost
	state State
}

// frontier is a min-heap of frontierItem for container/heap.
// Order: cost ascending, then coordinate row-major, then heading, so that
// equal-cost pops are reproducible. Superseded entries are left in place and
// skipped when popped (lazy decrease-key).
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by cost, breaking ties on the state.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].state.less(f[j].state)
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
