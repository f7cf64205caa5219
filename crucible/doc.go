// Package crucible finds the minimum-cost route across a weighted grid for a
// mover that cannot turn too early and cannot run straight for too long.
//
// What:
//
//   - Solve(g, minRun, maxRun) is the whole public contract for the common
//     case: top-left to bottom-right, cost of entered cells summed.
//   - SolveWith takes an explicit Request (start, exit, constraints) and
//     returns work counters alongside the cost.
//   - SolveBest evaluates several independent start points concurrently and
//     keeps the cheapest.
//
// How:
//
//   - Vertices are motion.State values (position, run direction, run length),
//     so two visits to one cell with different histories are different
//     vertices.
//   - Edges come from motion.Constraints.Successors, which emits committed
//     runs of max(minRun, 1) steps on every turn.
//   - search.BestFirst orders the frontier by cost + Manhattan distance to the
//     exit (scaled by the cheapest cell), or by cost alone with HeuristicZero.
//   - Small state spaces use a dense slice cost table; large ones use a map.
//
// Stopping at the exit requires the last run to have reached minRun. With
// minRun ≤ 1 this is no restriction, so a 1×1 grid costs 0; with minRun ≥ 2
// a 1×1 grid is unreachable.
//
// Errors:
//
//   - ErrUnreachable:      no legal route; a normal, typed outcome.
//   - motion.ErrInvalidConstraints: rejected before the search starts.
//   - ErrNilGrid, ErrPointOutOfBounds, ErrNoStarts, ErrUnknownHeuristic.
//
// Concurrency: the grid is read-only and every session owns its cost table
// and frontier, so concurrent calls never need locking.
package crucible
