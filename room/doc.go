// Package room reduces a raw rectangular room to the space a home theater
// can actually use.
//
// Deductions:
//
//	height  - fixed 12in ceiling build-up (services, ducting).
//	width   - left + right wall treatment depth.
//	length  - front + back treatment depth + front obstruction
//	          (10in in-wall baffle behind a transparent screen,
//	           6in for on-wall speakers).
//
// The projector throw is checked against EquipmentLength, which ignores the
// speaker obstruction but reserves a 2ft equipment zone at the rear.
//
// Advisories flag excessive treatment (Caution) and usable space below the
// practical minimum of 9ft wide or 12ft long (Critical, "Over-Constrained").
// Reduce never returns an error; collapsed dimensions are reported as 0.
package room
