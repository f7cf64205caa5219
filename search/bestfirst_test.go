// Package search_test contains unit tests for the BestFirst driver.
// These tests cover validation, optimality, stale-entry handling,
// cost caps, cancellation, hooks and the dense cost table.
package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/search"
)

// graphProblem is a small explicit weighted digraph.
type graphProblem struct {
	edges map[string][]edge
	goal  string
	h     map[string]int64
}

type edge struct {
	to   string
	cost int64
}

func (g *graphProblem) Successors(s string, yield func(string, int64)) {
	for _, e := range g.edges[s] {
		yield(e.to, e.cost)
	}
}

func (g *graphProblem) IsGoal(s string) bool { return s == g.goal }

func (g *graphProblem) Heuristic(s string) int64 { return g.h[s] }

// lineProblem walks 0..n-1 by ±1 steps; moving right costs 1, left costs 3.
type lineProblem struct {
	n       int
	goal    int
	astar   bool
	indexed bool
}

func (l *lineProblem) Successors(s int, yield func(int, int64)) {
	if s+1 < l.n {
		yield(s+1, 1)
	}
	if s-1 >= 0 {
		yield(s-1, 3)
	}
}

func (l *lineProblem) IsGoal(s int) bool { return s == l.goal }

func (l *lineProblem) Heuristic(s int) int64 {
	if !l.astar || s > l.goal {
		return 0
	}
	return int64(l.goal - s)
}

// indexedLine adds the Indexed extension.
type indexedLine struct{ lineProblem }

func (l *indexedLine) Index(s int) int { return s }
func (l *indexedLine) Size() int       { return l.n }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestBestFirst_NilProblem(t *testing.T) {
	_, err := search.BestFirst[string](nil, "A")
	require.ErrorIs(t, err, search.ErrNilProblem)
}

func TestBestFirst_OptionViolations(t *testing.T) {
	p := &graphProblem{goal: "A"}

	_, err := search.BestFirst[string](p, "A", search.WithMaxCost(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.BestFirst[string](p, "A", search.WithTieBreak(search.TieBreak(9)))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestBestFirst_NegativeCost(t *testing.T) {
	p := &graphProblem{
		edges: map[string][]edge{"A": {{"B", -2}}},
		goal:  "B",
	}
	_, err := search.BestFirst[string](p, "A")
	require.ErrorIs(t, err, search.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestBestFirst_StartIsGoal(t *testing.T) {
	p := &graphProblem{goal: "A"}
	res, err := search.BestFirst[string](p, "A")
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
	require.Equal(t, 0, res.Stats.Expanded)
	require.Equal(t, 1, res.Stats.Pushed)
}

func TestBestFirst_Triangle(t *testing.T) {
	// A→B(1), B→C(2), A→C(5)
	p := &graphProblem{
		edges: map[string][]edge{
			"A": {{"B", 1}, {"C", 5}},
			"B": {{"C", 2}},
		},
		goal: "C",
	}
	res, err := search.BestFirst[string](p, "A")
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Cost)
}

func TestBestFirst_Unreachable(t *testing.T) {
	p := &graphProblem{
		edges: map[string][]edge{
			"A": {{"B", 1}},
			"B": {{"A", 1}},
		},
		goal: "Z",
	}
	res, err := search.BestFirst[string](p, "A")
	require.ErrorIs(t, err, search.ErrUnreachable)
	require.Equal(t, 2, res.Stats.Expanded, "each state expands once")
	require.Equal(t, 2, res.Stats.Discovered)
}

// TestBestFirst_StaleEntry reaches C first at cost 10, then at cost 2; the
// cost-10 entry must be discarded when popped instead of re-expanded.
func TestBestFirst_StaleEntry(t *testing.T) {
	p := &graphProblem{
		edges: map[string][]edge{
			"A": {{"C", 10}, {"B", 1}},
			"B": {{"C", 1}},
			"C": {{"G", 100}},
		},
		goal: "G",
	}
	res, err := search.BestFirst[string](p, "A")
	require.NoError(t, err)
	require.Equal(t, int64(102), res.Cost)
	require.Equal(t, 1, res.Stats.Stale)
	require.Equal(t, 3, res.Stats.Expanded, "A, B, C once each")
	require.Equal(t, 5, res.Stats.Pushed, "A, C@10, B, C@2, G")
}

// TestBestFirst_ZeroCostEdges accepts zero-cost transitions.
func TestBestFirst_ZeroCostEdges(t *testing.T) {
	p := &graphProblem{
		edges: map[string][]edge{
			"A": {{"B", 0}, {"G", 1}},
			"B": {{"G", 0}},
		},
		goal: "G",
	}
	res, err := search.BestFirst[string](p, "A")
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
}

// ------------------------------------------------------------------------
// 3. Heuristic, tie break and dense table
// ------------------------------------------------------------------------

func TestBestFirst_AStarExpandsLess(t *testing.T) {
	dijkstra := &lineProblem{n: 50, goal: 30}
	astar := &lineProblem{n: 50, goal: 30, astar: true}

	rd, err := search.BestFirst[int](dijkstra, 10)
	require.NoError(t, err)
	ra, err := search.BestFirst[int](astar, 10)
	require.NoError(t, err)

	require.Equal(t, int64(20), rd.Cost)
	require.Equal(t, rd.Cost, ra.Cost)
	require.Less(t, ra.Stats.Expanded, rd.Stats.Expanded)
}

func TestBestFirst_TieBreakSameCost(t *testing.T) {
	for _, tie := range []search.TieBreak{search.TieFIFO, search.TieLowHeuristic} {
		t.Run(tie.String(), func(t *testing.T) {
			p := &lineProblem{n: 40, goal: 5, astar: true}
			res, err := search.BestFirst[int](p, 35, search.WithTieBreak(tie))
			require.NoError(t, err)
			require.Equal(t, int64(90), res.Cost)
		})
	}
}

func TestBestFirst_IndexedMatchesMap(t *testing.T) {
	plain := &lineProblem{n: 64, goal: 3}
	dense := &indexedLine{lineProblem{n: 64, goal: 3}}

	rp, err := search.BestFirst[int](plain, 60)
	require.NoError(t, err)
	rd, err := search.BestFirst[int](dense, 60)
	require.NoError(t, err)

	require.Equal(t, int64(57*3), rp.Cost)
	require.Equal(t, rp, rd)
}

// ------------------------------------------------------------------------
// 4. Options: MaxCost, context, OnExpand
// ------------------------------------------------------------------------

func TestBestFirst_MaxCost(t *testing.T) {
	p := &lineProblem{n: 20, goal: 10}

	res, err := search.BestFirst[int](p, 0, search.WithMaxCost(10))
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Cost)

	_, err = search.BestFirst[int](p, 0, search.WithMaxCost(9))
	require.ErrorIs(t, err, search.ErrUnreachable)
	require.Contains(t, err.Error(), "within cost 9")
}

func TestBestFirst_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &lineProblem{n: 10, goal: 9}
	_, err := search.BestFirst[int](p, 0, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBestFirst_OnExpand(t *testing.T) {
	p := &lineProblem{n: 10, goal: 9}

	var costs []int64
	res, err := search.BestFirst[int](p, 0, search.WithOnExpand(func(c int64, _ int) error {
		costs = append(costs, c)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, costs, res.Stats.Expanded)
	for i := 1; i < len(costs); i++ {
		require.LessOrEqual(t, costs[i-1], costs[i], "expansion order is non-decreasing")
	}

	stop := errors.New("stop")
	_, err = search.BestFirst[int](p, 0, search.WithOnExpand(func(c int64, _ int) error {
		if c >= 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}
