package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search. They signal a programming error in the
// caller's configuration, never a failure to converge.
var (
	// ErrNilRule indicates a nil Rule.
	ErrNilRule = errors.New("search: rule must be non-nil")

	// ErrInvalidStep indicates Step <= 0, NaN or ±Inf.
	ErrInvalidStep = errors.New("search: step must be finite and > 0")

	// ErrInvalidBounds indicates Lower > Upper or a NaN bound.
	ErrInvalidBounds = errors.New("search: lower bound exceeds upper bound")

	// ErrInvalidStart indicates a NaN or ±Inf starting value.
	ErrInvalidStart = errors.New("search: initial value must be finite")

	// ErrUnbounded indicates MaxIterations <= 0. Every search must be capped.
	ErrUnbounded = errors.New("search: MaxIterations must be > 0")
)

// Move is the direction a Rule asks the search to take.
type Move int

const (
	// Hold accepts the current candidate; the search has converged.
	Hold Move = iota
	// Raise moves the candidate up by one step.
	Raise
	// Lower moves the candidate down by one step.
	Lower
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Raise:
		return "Raise"
	case Lower:
		return "Lower"
	default:
		return "Hold"
	}
}

// Rule inspects a candidate and decides the next move.
type Rule func(x float64) Move

// Options configures Search.
//
// Fields:
//   - Step          - distance of one move; must be > 0.
//   - MaxIterations - hard cap on rule evaluations; must be > 0.
//   - Lower, Upper  - feasible interval for the candidate.
//   - Clamp         - if true a move that leaves [Lower, Upper] is clamped
//     back into it; if false leaving the interval ends the search
//     unconverged (a floor/ceiling exit).
type Options struct {
	Step          float64
	MaxIterations int
	Lower         float64
	Upper         float64
	Clamp         bool
}

// DefaultOptions returns a unit step, 50 iterations, an unbounded interval
// and no clamping.
func DefaultOptions() Options {
	return Options{
		Step:          1,
		MaxIterations: 50,
		Lower:         math.Inf(-1),
		Upper:         math.Inf(1),
		Clamp:         false,
	}
}

// Result is the outcome of one Search.
//
// Value is the last candidate the search stood on. When Converged is false
// Value is still well-defined: either the value after the final move, or
// the clamped value at which the search stalled.
type Result struct {
	Value      float64
	Converged  bool
	Iterations int
	Visited    []float64
}
