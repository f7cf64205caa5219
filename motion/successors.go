package motion

import "github.com/katalvlaran/crucible/grid"

// Successors appends every legal transition out of s to dst and returns the
// extended slice. Passing dst[:0] from the previous call reuses its storage.
//
// Rules, for a state with run length Run in direction D:
//  1. D.Inverse() is never emitted once the mover has a direction.
//  2. D itself is emitted as one unit step only while Run < MaxRun.
//  3. Any other direction (all four from the start state) is emitted as a
//     committed run of TurnRun() unit steps.
//  4. A step or run that would leave g is dropped, never reported as an error.
//
// c must be valid; Successors does not re-check it.
// Complexity: O(TurnRun()) per direction.
func (c Constraints) Successors(g *grid.Grid, s State, dst []Step) []Step {
	for _, d := range Directions {
		var n int
		switch {
		case !s.Moved():
			n = c.TurnRun()
		case d == s.Dir.Inverse():
			continue
		case d == s.Dir:
			if s.Run >= c.MaxRun {
				continue
			}
			n = 1
		default:
			n = c.TurnRun()
		}

		next, cost, ok := walk(g, s.Pos, d, n)
		if !ok {
			continue
		}
		run := n
		if s.Moved() && d == s.Dir {
			run = s.Run + 1
		}
		dst = append(dst, Step{
			Next: State{Pos: next, Dir: d, Run: run},
			Cost: cost,
		})
	}
	return dst
}

// walk moves n unit steps from p in d, summing the cost of each cell
// entered. ok is false if any of those cells is outside g.
func walk(g *grid.Grid, p grid.Point, d Direction, n int) (grid.Point, int64, bool) {
	dx, dy := d.Delta()
	var total int64
	for i := 0; i < n; i++ {
		p = p.Add(dx, dy)
		c, ok := g.CostAt(p)
		if !ok {
			return p, 0, false
		}
		total += int64(c)
	}
	return p, total, true
}

// StateSpace returns the number of distinct states Index can produce on g.
func (c Constraints) StateSpace(g *grid.Grid) int {
	return g.Width() * g.Height() * len(Directions) * (c.MaxRun + 1)
}

// Index maps s to a unique slot in [0, StateSpace(g)). s must lie on g and
// satisfy Run ≤ MaxRun.
func (c Constraints) Index(g *grid.Grid, s State) int {
	cell := g.Index(s.Pos.X, s.Pos.Y)
	return (cell*len(Directions)+int(s.Dir))*(c.MaxRun+1) + s.Run
}
