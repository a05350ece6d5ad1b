// Package core - requested/authoritative reconciliation.
//
// Contracts:
//   - Reconcile functions are pure: same input, same Resolution.
//   - Authoritative never exceeds the limit it was reconciled against.
//   - Status is Valid iff Authoritative == Requested.
package core

import "cmp"

// Status tags how an authoritative value relates to its request.
type Status string

const (
	StatusValid      Status = "Valid"
	StatusAdjusted   Status = "Adjusted"
	StatusRestricted Status = "Restricted"
	StatusConflict   Status = "Conflict"
)

// Resolution pairs what the caller asked for with what the room allows.
type Resolution[T any] struct {
	Requested     T      `json:"requested"`
	Authoritative T      `json:"authoritative"`
	Status        Status `json:"status"`
}

// Honored wraps a value that needed no reconciliation.
func Honored[T any](v T) Resolution[T] {
	return Resolution[T]{Requested: v, Authoritative: v, Status: StatusValid}
}

// ClampDown caps requested at limit. A manual choice can never exceed what
// the automatic path would allow.
func ClampDown[T cmp.Ordered](requested, limit T) Resolution[T] {
	if requested > limit {
		return Resolution[T]{Requested: requested, Authoritative: limit, Status: StatusAdjusted}
	}

	return Honored(requested)
}

// ClampRange bounds requested to [lo, hi]. If lo > hi the range is treated
// as the single point lo. A NaN request orders below every number and
// lands on lo.
func ClampRange[T cmp.Ordered](requested, lo, hi T) Resolution[T] {
	if hi < lo {
		hi = lo
	}
	switch {
	case cmp.Less(requested, lo):
		return Resolution[T]{Requested: requested, Authoritative: lo, Status: StatusAdjusted}
	case cmp.Less(hi, requested):
		return Resolution[T]{Requested: requested, Authoritative: hi, Status: StatusAdjusted}
	}

	return Honored(requested)
}

// Restrict replaces the authoritative value and marks the request as
// removed by a physical constraint.
func (r Resolution[T]) Restrict(v T) Resolution[T] {
	r.Authoritative = v
	r.Status = StatusRestricted

	return r
}

// Changed reports whether reconciliation altered the request.
func (r Resolution[T]) Changed() bool {
	return r.Status != StatusValid
}

// Worst returns the more severe of two statuses:
// Conflict > Restricted > Adjusted > Valid.
func Worst(a, b Status) Status {
	if statusRank(b) > statusRank(a) {
		return b
	}

	return a
}

func statusRank(s Status) int {
	switch s {
	case StatusAdjusted:
		return 1
	case StatusRestricted:
		return 2
	case StatusConflict:
		return 3
	default:
		return 0
	}
}
