// Package search defines the problem contract, configuration options and
// sentinel errors for the generic best-first (uniform-cost / A*) driver.
//
// A Problem supplies three things for its state type S:
//
//   - Successors: every (next, incrementalCost) pair reachable from a state;
//   - IsGoal:     whether a popped state ends the search;
//   - Heuristic:  an admissible lower bound on the remaining cost
//     (return 0 everywhere for plain Dijkstra).
//
// Options:
//
//   - Ctx:      caller-level cancellation, polled every 1024 expansions.
//   - TieBreak: how equal priorities are ordered (insertion order by default).
//   - MaxCost:  candidates whose cost would exceed this cap are never queued.
//   - OnExpand: hook invoked before each expansion; an error aborts the search.
//
// Errors (sentinel):
//
//   - ErrNilProblem      if the problem is nil.
//   - ErrUnreachable     if the frontier empties without popping a goal.
//   - ErrNegativeCost    if a successor reports a negative incremental cost.
//   - ErrOptionViolation if an invalid option was supplied.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by BestFirst.
var (
	// ErrNilProblem indicates that a nil Problem was passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnreachable indicates the frontier was exhausted before any goal
	// state was popped. It is an ordinary outcome, not a malfunction.
	ErrUnreachable = errors.New("search: goal is unreachable")

	// ErrNegativeCost indicates a successor with a negative incremental cost.
	ErrNegativeCost = errors.New("search: negative transition cost encountered")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Problem describes a search space over comparable states S.
type Problem[S comparable] interface {
	// Successors calls yield once per transition out of s.
	// cost is the incremental cost of that transition and must be ≥ 0.
	Successors(s S, yield func(next S, cost int64))

	// IsGoal reports whether popping s terminates the search.
	IsGoal(s S) bool

	// Heuristic returns a lower bound on the cost from s to any goal.
	Heuristic(s S) int64
}

// Indexed is an optional extension of Problem. When implemented, best-known
// costs are kept in a dense slice of Size() slots addressed by Index(s)
// instead of a map. Index must be injective over reachable states and lie
// in [0, Size()).
type Indexed[S comparable] interface {
	Index(s S) int
	Size() int
}

// TieBreak orders frontier entries with equal priority.
type TieBreak int

const (
	// TieFIFO pops equal priorities in insertion order.
	TieFIFO TieBreak = iota
	// TieLowHeuristic prefers the entry closer to the goal (lower heuristic,
	// hence higher accumulated cost), then insertion order.
	TieLowHeuristic
)

func (t TieBreak) String() string {
	switch t {
	case TieFIFO:
		return "fifo"
	case TieLowHeuristic:
		return "low-heuristic"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// Options configures one BestFirst session.
type Options struct {
	Ctx      context.Context
	TieBreak TieBreak
	MaxCost  int64                                 // default math.MaxInt64 (no cap)
	OnExpand func(cost int64, frontier int) error // called before each expansion

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for BestFirst.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - TieFIFO
//   - MaxCost = math.MaxInt64
//   - a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		TieBreak: TieFIFO,
		MaxCost:  math.MaxInt64,
		OnExpand: func(int64, int) error { return nil },
	}
}

// WithContext sets a context for caller-level cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects how equal priorities are ordered.
// Unknown values surface as ErrOptionViolation.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieFIFO && t != TieLowHeuristic {
			o.err = fmt.Errorf("%w: unknown tie break %d", ErrOptionViolation, int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithMaxCost caps the cost of queued candidates. A goal that can only be
// reached above the cap is reported as ErrUnreachable.
// Negative caps surface as ErrOptionViolation.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnExpand registers a hook that runs before each expansion with the
// expanded state's cost and the current frontier size.
// Returning an error stops the search and propagates that error.
func WithOnExpand(fn func(cost int64, frontier int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Stats counts the work done by one session.
type Stats struct {
	Expanded    int // states whose successors were generated
	Pushed      int // frontier insertions, including the start
	Stale       int // popped entries discarded as superseded
	Discovered  int // distinct states given a best-known cost
	MaxFrontier int // largest frontier size observed
}

// Result is the outcome of a successful search.
type Result struct {
	Cost  int64
	Stats Stats
}
