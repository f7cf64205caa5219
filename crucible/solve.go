package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/motion"
	"github.com/katalvlaran/crucible/search"
)

// maxDenseStates caps the slice-backed cost table at 32 MiB of int64s.
// Larger state spaces fall back to a map sized by what is actually reached.
const maxDenseStates = 1 << 22

// Solve returns the minimum total cost of moving from the top-left to the
// bottom-right cell of g with every straight run between minRun and maxRun
// unit steps long. The start cell's cost is not counted.
//
// Errors:
//
//   - ErrNilGrid if g is nil.
//   - motion.ErrInvalidConstraints (wrapped) for minRun < 0, maxRun < 1 or
//     minRun > maxRun, checked before any search state is allocated.
//   - ErrUnreachable if no legal path reaches the exit.
func Solve(g *grid.Grid, minRun, maxRun int) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	res, err := SolveWith(g, NewRequest(g, minRun, maxRun))
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// SolveWith runs one session for req on g and reports the cost together
// with the session's work counters.
//
// Steps:
//  1. Validate the grid, the constraints and both endpoints.
//  2. Build the run-constrained problem over motion.State.
//  3. Run search.BestFirst from the history-free start state.
//
// The grid is only read, so any number of SolveWith calls may share it.
func SolveWith(g *grid.Grid, req Request, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := req.Constraints.Validate(); err != nil {
		return Result{}, err
	}
	for _, p := range [2]grid.Point{req.Start, req.Exit} {
		if !g.InBounds(p.X, p.Y) {
			return Result{}, fmt.Errorf("%w: %v on %dx%d", ErrPointOutOfBounds, p, g.Width(), g.Height())
		}
	}

	p := newProblem(g, req, cfg.Heuristic)
	var sp search.Problem[motion.State] = p
	if req.Constraints.StateSpace(g) <= maxDenseStates {
		sp = &denseProblem{problem: p}
	}

	res, err := search.BestFirst(sp, motion.Start(req.Start),
		search.WithContext(cfg.Ctx),
		search.WithTieBreak(cfg.TieBreak),
	)
	if err != nil {
		return Result{Start: req.Start, Stats: res.Stats},
			fmt.Errorf("crucible: %v to %v with %v: %w", req.Start, req.Exit, req.Constraints, err)
	}

	return Result{Cost: res.Cost, Start: req.Start, Stats: res.Stats}, nil
}

// problem adapts the grid and the successor generator to search.Problem.
// It is owned by one session; buf is reused between expansions.
type problem struct {
	g    *grid.Grid
	c    motion.Constraints
	exit grid.Point
	h    func(grid.Point) int64
	buf  []motion.Step
}

func newProblem(g *grid.Grid, req Request, h Heuristic) *problem {
	return &problem{
		g:    g,
		c:    req.Constraints,
		exit: req.Exit,
		h:    estimator(h, g, req.Exit),
		buf:  make([]motion.Step, 0, len(motion.Directions)),
	}
}

func (p *problem) Successors(s motion.State, yield func(motion.State, int64)) {
	p.buf = p.c.Successors(p.g, s, p.buf[:0])
	for _, st := range p.buf {
		yield(st.Next, st.Cost)
	}
}

// IsGoal ignores history except for the minimum-run requirement on stopping.
func (p *problem) IsGoal(s motion.State) bool {
	return s.Pos == p.exit && p.c.Accepts(s)
}

func (p *problem) Heuristic(s motion.State) int64 {
	return p.h(s.Pos)
}

// denseProblem adds search.Indexed so the session uses a flat cost table.
type denseProblem struct {
	*problem
}

func (d *denseProblem) Index(s motion.State) int { return d.c.Index(d.g, s) }

func (d *denseProblem) Size() int { return d.c.StateSpace(d.g) }
