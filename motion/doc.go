// Package motion models a mover that must keep going straight for a while
// before it may turn, and must turn after going straight for too long.
//
// Overview:
//
//   - Direction is the closed set North, East, South, West.
//   - Constraints carries MinRun and MaxRun: the fewest and the most
//     consecutive unit steps allowed in one direction between turns.
//   - State is one search vertex: a position plus the compact movement
//     history (direction of the current run, length of the current run).
//     Two states at the same position with different history are distinct.
//   - Successors enumerates every legal transition out of a State together
//     with the cost of the cells it enters.
//
// Transition model:
//
// Successors commits to whole runs when turning. From a state with run
// length Run in direction D:
//
//   - continuing in D emits one unit step with Run+1, only while Run < MaxRun;
//   - turning to either side of D emits a committed run of
//     TurnRun() = max(MinRun, 1) unit steps in the new direction;
//   - reversing to D.Inverse() is never legal;
//   - the start state (Run == 0) may leave in any of the four directions,
//     each as a committed run.
//
// Every reachable non-start state therefore already satisfies Run ≥ MinRun,
// which is exactly the set of states the unit-step model with a literal
// bounded history would allow to turn or stop. The number of distinct
// states is bounded by W×H×4×(MaxRun+1).
//
// Errors:
//
//   - ErrInvalidConstraints wraps ErrBadMinRun, ErrBadMaxRun and
//     ErrMinExceedsMax; callers may test for either level with errors.Is.
package motion
