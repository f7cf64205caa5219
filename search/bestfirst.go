// Package search implements a generic best-first shortest-cost search.
//
// Notes on implementation choices:
//
//   - Priorities are cost + Heuristic(state); a zero heuristic is Dijkstra.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and discarding stale entries when popped.
//   - Best-known costs only ever decrease; a candidate replaces an entry
//     only if it is strictly cheaper.
//   - The first popped goal ends the search. With non-negative costs and an
//     admissible heuristic its cost is optimal.
package search

import (
	"container/heap"
	"fmt"
	"math"
)

// pollEvery is how many expansions pass between context checks.
const pollEvery = 1024

// BestFirst computes the minimum total cost from start to the first goal
// state of p, expanding states in ascending cost + heuristic order.
//
// Returns:
//
//   - Result with the optimal cost and work counters on success.
//   - ErrUnreachable (possibly wrapped) if no goal can be reached.
//   - ErrNegativeCost if p reports a negative transition.
//   - ErrNilProblem / ErrOptionViolation for invalid input.
//   - the context error, wrapped, if Ctx is cancelled mid-search.
//
// Every call owns its own cost table and frontier, so concurrent calls on
// problems sharing read-only data need no locking.
//
// Complexity:
//
//   - Time:  O(E log E) where E is the number of relaxations performed.
//   - Space: O(V + E) for the cost table and the lazy frontier.
func BestFirst[S comparable](p Problem[S], start S, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}

	r := &runner[S]{
		p:       p,
		options: cfg,
		best:    newCostTable[S](p),
		pq:      frontier[S]{tie: cfg.TieBreak},
	}
	r.yield = r.relax
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single BestFirst execution.
type runner[S comparable] struct {
	p       Problem[S]
	options Options
	best    costTable[S] // state → best-known cost
	pq      frontier[S]
	seq     uint64 // insertion counter for tie-breaking
	stats   Stats

	// expansion in progress, read by relax
	curCost int64
	yield   func(S, int64)
	err     error
}

// init records the start state at cost 0 and queues it.
func (r *runner[S]) init(start S) {
	heap.Init(&r.pq)
	r.best.set(start, 0)
	r.stats.Discovered = 1
	r.push(start, 0)
}

// process is the main loop: pop, discard if stale, stop on goal, expand.
func (r *runner[S]) process() (Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if r.stats.Expanded%pollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Stats: r.stats}, fmt.Errorf("search: aborted after %d expansions: %w", r.stats.Expanded, err)
			}
		}

		it := heap.Pop(&r.pq).(item[S])

		// A cheaper path to this exact state was recorded after this entry
		// was pushed.
		if best, _ := r.best.get(it.state); it.cost > best {
			r.stats.Stale++
			continue
		}

		if r.p.IsGoal(it.state) {
			return Result{Cost: it.cost, Stats: r.stats}, nil
		}

		if err := r.options.OnExpand(it.cost, r.pq.Len()); err != nil {
			return Result{Stats: r.stats}, err
		}
		r.stats.Expanded++

		r.curCost = it.cost
		r.p.Successors(it.state, r.yield)
		if r.err != nil {
			return Result{Stats: r.stats}, r.err
		}
	}

	return Result{Stats: r.stats}, r.unreachable()
}

// relax is handed to Problem.Successors as the yield callback.
func (r *runner[S]) relax(next S, inc int64) {
	if r.err != nil {
		return
	}
	if inc < 0 {
		r.err = fmt.Errorf("%w: cost %d into %v", ErrNegativeCost, inc, next)
		return
	}

	cand := r.curCost + inc
	if cand > r.options.MaxCost {
		return
	}
	old, seen := r.best.get(next)
	if seen && cand >= old {
		return
	}
	if !seen {
		r.stats.Discovered++
	}
	r.best.set(next, cand)
	r.push(next, cand)
}

// push queues s with its accumulated cost and priority cost + heuristic.
func (r *runner[S]) push(s S, cost int64) {
	h := r.p.Heuristic(s)
	heap.Push(&r.pq, item[S]{
		state: s,
		cost:  cost,
		prio:  cost + h,
		h:     h,
		seq:   r.seq,
	})
	r.seq++
	r.stats.Pushed++
	r.stats.MaxFrontier = max(r.stats.MaxFrontier, r.pq.Len())
}

func (r *runner[S]) unreachable() error {
	if r.options.MaxCost != math.MaxInt64 {
		return fmt.Errorf("%w within cost %d", ErrUnreachable, r.options.MaxCost)
	}
	return ErrUnreachable
}
