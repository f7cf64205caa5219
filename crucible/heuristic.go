package crucible

import "github.com/katalvlaran/crucible/grid"

// Manhattan returns |p.X-goal.X| + |p.Y-goal.Y|.
//
// Each unit step closes at most one unit of this distance and enters one
// cell, so Manhattan(p, goal) × the grid's minimum cell cost never exceeds
// the true remaining cost. For grids without zero-cost cells and a minimum
// of 1 this is the plain Manhattan distance.
func Manhattan(p, goal grid.Point) int64 {
	return int64(p.Manhattan(goal))
}

// estimator returns the heuristic function for h toward goal on g.
func estimator(h Heuristic, g *grid.Grid, goal grid.Point) func(grid.Point) int64 {
	if h == HeuristicZero {
		return func(grid.Point) int64 { return 0 }
	}
	scale := int64(g.MinCost())
	return func(p grid.Point) int64 {
		return Manhattan(p, goal) * scale
	}
}
