// Package projector decides whether a ceiling-mounted projector can light the
// resolved screen.
//
// Model:
//
//	throw      = image width × 1.6
//	lens       = ceiling − 12in
//	v-shift %  = |lens − image center| / image height × 100   (OK ≤60, Warning ≤70)
//	h-shift %  = |offset| / image width × 100                 (OK ≤30, Warning ≤35)
//	mount      = ceiling ≥ 8ft AND both shifts OK
//
// Authority:
//
//	Not Feasible  - throw does not fit OR any shift is Not Possible.
//	Compromised   - any shift at Warning OR the mount is infeasible.
//	Recommended   - otherwise.
//
// The lens helpers (LensHeightIn, VerticalShiftPct, ThrowFt) are shared with
// the screen resolver so both stages judge the geometry identically.
package projector
