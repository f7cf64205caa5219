// Package crucible defines the request, result, heuristic and option types
// for run-constrained minimum-cost searches over a grid.
package crucible

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/motion"
	"github.com/katalvlaran/crucible/search"
)

// Sentinel errors. ErrUnreachable is the search package's sentinel, so
// errors.Is works against either name.
var (
	// ErrUnreachable indicates that no legal path reaches the exit.
	ErrUnreachable = search.ErrUnreachable

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrPointOutOfBounds indicates a start or exit outside the grid.
	ErrPointOutOfBounds = errors.New("crucible: point outside grid")

	// ErrNoStarts indicates SolveBest was given no start points.
	ErrNoStarts = errors.New("crucible: no start points")

	// ErrUnknownHeuristic indicates an unrecognized heuristic name or value.
	ErrUnknownHeuristic = errors.New("crucible: unknown heuristic")
)

// Heuristic selects the lower-bound estimator used to order the frontier.
type Heuristic int

const (
	// HeuristicManhattan estimates the remaining cost as the Manhattan
	// distance to the exit times the grid's cheapest cell cost (A*).
	HeuristicManhattan Heuristic = iota
	// HeuristicZero disables estimation (plain Dijkstra).
	HeuristicZero
)

func (h Heuristic) String() string {
	switch h {
	case HeuristicManhattan:
		return "manhattan"
	case HeuristicZero:
		return "zero"
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps "manhattan" / "astar" and "zero" / "dijkstra"
// (case-insensitive) to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manhattan", "astar", "a*":
		return HeuristicManhattan, nil
	case "zero", "dijkstra", "none":
		return HeuristicZero, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Request describes one search session.
type Request struct {
	Start       grid.Point
	Exit        grid.Point
	Constraints motion.Constraints
}

// NewRequest returns the conventional request on g: top-left to
// bottom-right with the given run bounds.
func NewRequest(g *grid.Grid, minRun, maxRun int) Request {
	return Request{
		Start:       g.Start(),
		Exit:        g.Exit(),
		Constraints: motion.Constraints{MinRun: minRun, MaxRun: maxRun},
	}
}

// Result is the outcome of a successful search.
type Result struct {
	Cost  int64        // minimum total cost, start cell excluded
	Start grid.Point   // start the cost was measured from
	Stats search.Stats // work counters of the winning session
}

// Options configures Solve, SolveWith and SolveBest.
type Options struct {
	Ctx         context.Context
	Heuristic   Heuristic
	TieBreak    search.TieBreak
	Parallelism int // SolveBest worker limit; ≤ 0 means one per start

	err error
}

// Option represents a functional option.
type Option func(*Options)

// DefaultOptions returns Options with context.Background(),
// HeuristicManhattan, search.TieFIFO and unlimited parallelism.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: HeuristicManhattan,
		TieBreak:  search.TieFIFO,
	}
}

// WithContext sets a context for caller-level timeouts.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the frontier estimator.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != HeuristicManhattan && h != HeuristicZero {
			o.err = fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(h))
			return
		}
		o.Heuristic = h
	}
}

// WithTieBreak selects how equal priorities are ordered. It never changes
// the returned cost.
func WithTieBreak(t search.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithParallelism bounds the number of concurrent sessions in SolveBest.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
