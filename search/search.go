// Package search - bounded one-dimensional local search.
//
// Search walks a single scalar in fixed steps under the direction chosen by a
// Rule until the rule holds, the walk leaves the feasible interval, the walk
// stalls against a clamp, or the iteration cap is reached.
//
// Contracts:
//   - Always terminates: at most opts.MaxIterations rule evaluations.
//   - Deterministic: the same (initial, rule, opts) yields the same Result.
//   - Visited lists every candidate evaluated, in order.
//
// Complexity:
//   - O(MaxIterations) rule calls, O(MaxIterations) extra space for Visited.
package search

import "math"

// Search runs the bounded walk from initial.
func Search(initial float64, rule Rule, opts Options) (Result, error) {
	if err := validate(initial, rule, opts); err != nil {
		return Result{}, err
	}

	var (
		x    = initial
		next float64
		mv   Move
		res  = Result{Visited: make([]float64, 0, opts.MaxIterations)}
	)
	if opts.Clamp {
		x = clamp(x, opts.Lower, opts.Upper)
	}

	for res.Iterations < opts.MaxIterations {
		// Floor/ceiling exit for unclamped walks.
		if x < opts.Lower || x > opts.Upper {
			break
		}

		res.Visited = append(res.Visited, x)
		res.Iterations++

		mv = rule(x)
		if mv == Hold {
			res.Value = x
			res.Converged = true

			return res, nil
		}

		next = x + float64(direction(mv))*opts.Step
		if opts.Clamp {
			next = clamp(next, opts.Lower, opts.Upper)
			if next == x {
				// Pinned against a bound; further iterations cannot move.
				break
			}
		}
		x = next
	}

	res.Value = x

	return res, nil
}

// Last returns the most recent visited candidate satisfying keep, or
// (0, false) when none does. Callers use it to pick a fallback after a walk
// that did not converge.
func (r Result) Last(keep func(x float64) bool) (float64, bool) {
	for i := len(r.Visited) - 1; i >= 0; i-- {
		if keep(r.Visited[i]) {
			return r.Visited[i], true
		}
	}

	return 0, false
}

// First returns the earliest visited candidate satisfying keep.
func (r Result) First(keep func(x float64) bool) (float64, bool) {
	for _, x := range r.Visited {
		if keep(x) {
			return x, true
		}
	}

	return 0, false
}

func direction(m Move) int {
	switch m {
	case Raise:
		return 1
	case Lower:
		return -1
	default:
		return 0
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
