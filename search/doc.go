// Package search provides a generic best-first driver for shortest-cost
// queries over implicit state spaces with non-negative transition costs.
//
// Overview:
//
//   - BestFirst pops the cheapest cost + heuristic state, relaxes its
//     successors and stops at the first popped goal.
//   - With a zero heuristic it is Dijkstra; with an admissible heuristic it
//     is A*. Either way the returned cost is optimal.
//   - Only the cost is returned. No predecessor map is kept.
//
// When to use:
//
//   - The graph is implicit: vertices are values (positions with history,
//     puzzle boards) generated on demand by a Problem.
//   - Many independent queries run concurrently: every call owns its own
//     cost table and frontier and shares nothing.
//
// Key features:
//
//   - Generic over any comparable state type.
//   - Optional Indexed problems get a dense slice cost table instead of a map.
//   - Functional options: context, tie break, cost cap, expansion hook.
//   - Stats report expansions, pushes and stale discards for tuning.
//
// Performance and complexity:
//
//   - Time:  O(E log E), E = relaxations that improved a best-known cost.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrUnreachable:     frontier exhausted; callers decide how to report it.
//   - ErrNegativeCost:    a Problem yielded a negative cost; the search stops.
//   - ErrNilProblem:      nil Problem.
//   - ErrOptionViolation: invalid Option value.
//
// Example:
//
//	res, err := search.BestFirst[string](p, "A", search.WithTieBreak(search.TieLowHeuristic))
//	if errors.Is(err, search.ErrUnreachable) {
//	    ...
//	}
//	fmt.Println(res.Cost, res.Stats.Expanded)
package search
