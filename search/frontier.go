package search

// item is one frontier entry. Entries are never updated in place; a cheaper
// path to the same state pushes a new item and the old one turns stale.
type item[S comparable] struct {
	state S
	cost  int64  // accumulated cost from the start
	prio  int64  // cost + heuristic
	h     int64  // heuristic, kept for TieLowHeuristic
	seq   uint64 // insertion order
}

// frontier is a min-heap of items ordered by prio, then by the configured
// tie break, then by insertion order.
type frontier[S comparable] struct {
	items []item[S]
	tie   TieBreak
}

// Len returns the number of items in the heap.
func (f *frontier[S]) Len() int { return len(f.items) }

// Less defines the comparison: smaller priority pops first.
func (f *frontier[S]) Less(i, j int) bool {
	a, b := &f.items[i], &f.items[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if f.tie == TieLowHeuristic && a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (f *frontier[S]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be an item[S].
func (f *frontier[S]) Push(x any) { f.items = append(f.items, x.(item[S])) }

// Pop is called by heap.Pop and removes the last element.
func (f *frontier[S]) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	f.items = old[:n-1]

	return it
}
