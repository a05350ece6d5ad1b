// Package search provides a bounded, deterministic local search over a single
// scalar: the correction-loop primitive behind screen sizing and screen
// placement.
//
// A search is described by
//
//	(initial, rule, Options{Step, MaxIterations, Lower, Upper, Clamp})
//
// and always returns a Result{Value, Converged, Iterations, Visited}. The
// caller branches on Converged; it never has to guess whether a loop ran
// out of budget.
//
// Rules:
//
//	A Rule maps a candidate to a Move (Hold, Raise, Lower). Gates composes
//	named Constraints into the common "shrink until every gate passes" rule;
//	hand-written rules can encode priorities between conflicting targets
//	(for example: fix the angle first, then the clearance).
//
// Termination:
//
//	Unclamped walks stop as soon as the candidate leaves [Lower, Upper].
//	Clamped walks stop once a move is fully absorbed by the clamp. Both
//	stop after MaxIterations rule evaluations. MaxIterations <= 0 is
//	rejected with ErrUnbounded.
//
// Errors:
//
//	ErrNilRule       - rule is nil.
//	ErrInvalidStep   - Step <= 0 or not finite.
//	ErrInvalidBounds - Lower > Upper or a NaN bound.
//	ErrInvalidStart  - initial is NaN or ±Inf.
//	ErrUnbounded     - MaxIterations <= 0.
//
// Example:
//
//	opts := search.DefaultOptions()
//	opts.Step, opts.Lower = 2, 90
//	res, err := search.Search(diag, search.Gates(fits, clears), opts)
//	if err != nil {
//		return err
//	}
//	if !res.Converged {
//		// fall back to res.Last(hardGatesOnly)
//	}
package search
