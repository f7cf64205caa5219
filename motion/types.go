// Package motion defines the run-length constraints, the compact movement
// state and the sentinel errors shared by the successor generator.
package motion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// Sentinel errors for constraint validation.
var (
	// ErrInvalidConstraints is the parent of every constraint error below.
	ErrInvalidConstraints = errors.New("motion: invalid run constraints")

	// ErrBadMinRun indicates MinRun < 0.
	ErrBadMinRun = fmt.Errorf("%w: MinRun must be non-negative", ErrInvalidConstraints)

	// ErrBadMaxRun indicates MaxRun < 1.
	ErrBadMaxRun = fmt.Errorf("%w: MaxRun must be at least 1", ErrInvalidConstraints)

	// ErrMinExceedsMax indicates MinRun > MaxRun.
	ErrMinExceedsMax = fmt.Errorf("%w: MinRun must not exceed MaxRun", ErrInvalidConstraints)
)

// Constraints bounds the length of every straight run.
//
// MinRun – unit steps that must be taken in a direction before turning
//
//	(and before stopping at the goal). 0 and 1 both mean "no minimum".
//
// MaxRun – unit steps after which continuing straight is forbidden.
type Constraints struct {
	MinRun int
	MaxRun int
}

// Validate reports the first violated rule, in the order MaxRun, MinRun,
// ordering. The returned error wraps ErrInvalidConstraints.
func (c Constraints) Validate() error {
	switch {
	case c.MaxRun < 1:
		return fmt.Errorf("%w (got %d)", ErrBadMaxRun, c.MaxRun)
	case c.MinRun < 0:
		return fmt.Errorf("%w (got %d)", ErrBadMinRun, c.MinRun)
	case c.MinRun > c.MaxRun:
		return fmt.Errorf("%w (got %d > %d)", ErrMinExceedsMax, c.MinRun, c.MaxRun)
	}
	return nil
}

// TurnRun is the length of the committed run emitted on every turn.
func (c Constraints) TurnRun() int {
	return max(c.MinRun, 1)
}

// Accepts reports whether the mover may stop in s. Stopping requires the
// current run to have reached MinRun; a MinRun of 0 or 1 never blocks,
// so the start state itself is acceptable in that case.
func (c Constraints) Accepts(s State) bool {
	return c.MinRun <= 1 || s.Run >= c.MinRun
}

func (c Constraints) String() string {
	return fmt.Sprintf("runs %d..%d", c.MinRun, c.MaxRun)
}

// State is a search vertex: a position plus the compact movement history.
//
// Run is the number of consecutive unit steps just taken in Dir. Run == 0
// marks the history-free start state, whose Dir is always North and carries
// no meaning. State is comparable and may be used as a map key directly.
type State struct {
	Pos grid.Point
	Dir Direction
	Run int
}

// Start returns the history-free state at p.
func Start(p grid.Point) State {
	return State{Pos: p}
}

// Moved reports whether s has any movement history.
func (s State) Moved() bool {
	return s.Run > 0
}

func (s State) String() string {
	if !s.Moved() {
		return fmt.Sprintf("%v start", s.Pos)
	}
	return fmt.Sprintf("%v %v×%d", s.Pos, s.Dir, s.Run)
}

// Step is one legal transition: the state reached and the summed cost of
// every cell entered on the way (the origin cell is never counted).
type Step struct {
	Next State
	Cost int64
}
