package search

// costTable is the best-known-cost map of one session.
type costTable[S comparable] interface {
	get(s S) (int64, bool)
	set(s S, cost int64)
}

// newCostTable picks a dense slice when p implements Indexed, a map otherwise.
func newCostTable[S comparable](p Problem[S]) costTable[S] {
	if ix, ok := p.(Indexed[S]); ok && ix.Size() > 0 {
		cost := make([]int64, ix.Size())
		for i := range cost {
			cost[i] = unset
		}
		return &denseTable[S]{index: ix.Index, cost: cost}
	}
	return mapTable[S]{}
}

type mapTable[S comparable] map[S]int64

func (m mapTable[S]) get(s S) (int64, bool) {
	c, ok := m[s]
	return c, ok
}

func (m mapTable[S]) set(s S, cost int64) { m[s] = cost }

// unset marks an empty dense slot; real costs are never negative.
const unset = -1

type denseTable[S comparable] struct {
	index func(S) int
	cost  []int64
}

func (d *denseTable[S]) get(s S) (int64, bool) {
	c := d.cost[d.index(s)]
	return c, c != unset
}

func (d *denseTable[S]) set(s S, cost int64) { d.cost[d.index(s)] = cost }
