// Package screen sizes and places the projection screen.
//
// Sizing:
//
//	width     = 0.75 × room width
//	height    = width / aspect        (16:9, 2.35:1, 4:3)
//	distance  = width / (2·tan(angle/2))   angle: smpte 30°, thx 36°, max 40°
//	diagonal  = hypot(width, height)
//
// Diagonal correction (bounded, step 2in, floor 90in, cap 50):
//
//	Gates, evaluated with the image bottom at the default 24in:
//	  ceiling fit, center speaker clearance (12in), vertical angle ≤ 20°,
//	  lens shift ≤ 60%, projector throw fits the equipment length.
//	The image shrinks until every gate passes. If the walk gives up, the
//	largest visited diagonal passing the physical gates (ceiling,
//	clearance, throw) is kept and DiagonalLoop.Failing names the rest.
//
// Manual diagonal:
//
//	Reconciled with core.ClampDown against the corrected diagonal, so a
//	manual size can shrink the screen but never grow it.
//
// Vertical placement (bounded, step 1in, range [18,32]in, cap 30):
//
//	Targets: angle ≤ 15°, clearance, lens shift ≤ 60%. A steep angle
//	lowers the image; missing clearance raises it; excess lens shift moves
//	the image center toward the lens.
//
// Outputs are graded (Comfort, Ergonomics, Risk) and the top edge is checked
// against ceiling − 2ft; a violation is reported as core.StatusConflict.
package screen
