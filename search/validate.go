package search

import "math"

// validate checks the walk configuration. Infinite bounds are allowed; an
// infinite step or start is not.
func validate(initial float64, rule Rule, opts Options) error {
	if rule == nil {
		return ErrNilRule
	}
	if opts.MaxIterations <= 0 {
		return ErrUnbounded
	}
	if math.IsNaN(opts.Step) || math.IsInf(opts.Step, 0) || opts.Step <= 0 {
		return ErrInvalidStep
	}
	if math.IsNaN(opts.Lower) || math.IsNaN(opts.Upper) || opts.Lower > opts.Upper {
		return ErrInvalidBounds
	}
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		return ErrInvalidStart
	}

	return nil
}
