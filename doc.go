// Package crucible is the module root for a constrained shortest-path
// solver over weighted grids.
//
// A crucible of lava travels from the top-left cell of a grid of heat-loss
// digits to the bottom-right cell. It moves in straight runs whose length is
// bounded below and above, may turn left or right between runs, and never
// reverses. The total cost is the sum of the cells entered.
//
// The module is organized as four libraries and a command:
//
//	grid/         rectangular cost grid, Point, text parser
//	motion/       Direction, run Constraints, search State and its successors
//	search/       generic best-first search (Dijkstra or A*) over any Problem
//	crucible/     the solver: Solve, SolveWith, SolveBest, Manhattan heuristic
//	cmd/crucible  command line front end with INI configuration
//
// Quick start:
//
//	g, _ := grid.ParseString("24134\n32154\n32552\n")
//	cost, err := crucible.Solve(g, 1, 3)
//
// See examples/ for a runnable walkthrough.
package crucible
