// Package seating resolves the row count, riser height, seats per row and
// row positions, and checks the rear-row sightline.
//
// Rows are clamped to [1,6] and collapse to one when the ceiling cannot take
// a riser: either the rear-row head clearance
//
//	height − (44in seat + riser)/12 < 1ft
//
// fails, or the ceiling is below the 8ft riser minimum. The riser is only
// meaningful with two or more rows and is clamped to [5,12]in; a single row
// reports a riser of 0. A NaN or infinite riser request counts as 0.
//
// The riser is one platform height, not a per-row step: every row behind
// the front row sits at the same RiserIn. The headroom check and the
// rear-row sightline both assume that single platform.
//
// Seats per row = floor((usable width − aisle − 2×1in) / 36in), minimum 1.
//
// Positions are rear-anchored in the stadium convention: the back row sits
// 1ft + one seat depth in front of the rear usable boundary and every
// earlier row is placed forward at equal intervals, so the front row is
// found by subtraction from the back. Rows that would land ahead of the
// usable box are held at its front edge and the layout is OverPacked.
//
// Rear-row sightline: the line from the rear eye (42in + riser) to the
// screen bottom, evaluated one seat depth forward, must clear the 48in
// front-row head. A clear line with a rear vertical angle above 20° is
// Compromised.
package seating
