// Package core holds the vocabulary shared by every stage of the room design
// resolver: raw room dimensions, wall treatment depths, the enumerations a
// design is expressed in, and the requested/authoritative reconciliation
// model used wherever a user choice meets a physical limit.
//
// Resolution model:
//
//	A contested field is never overwritten in place. A reconcile function
//	takes the requested value and the limit and returns a Resolution[T]
//	carrying both values plus a Status:
//
//	  Valid      - the request was honored unchanged.
//	  Adjusted   - the request was clamped to a physical limit.
//	  Restricted - a requested feature was removed entirely.
//	  Conflict   - the values are inconsistent and were flagged, not fixed.
//
//	ClampDown(requested, limit)      // manual value may never exceed limit
//	ClampRange(requested, lo, hi)    // keep within [lo, hi]
//
// Numeric helpers:
//
//	NonNegative(v)  - NaN, ±Inf and negatives become 0.
//	Clamp(v,lo,hi)  - bound v to [lo, hi].
//	Round1(v)       - one decimal place (reporting only).
//	Deg(rad)/Rad(deg)
//
// Units:
//
//	Room geometry is in feet; wall depths, screen sizes and heights above
//	the floor are in inches. Field names carry the unit (Ft / In) wherever
//	the type alone is ambiguous.
//
// Concurrency:
//
//	Every value in this package is immutable after construction and safe to
//	share between goroutines.
package core
