// Package cinemath is a deterministic home-theater design engine: from a
// room's dimensions and a handful of preferences it resolves the usable
// room, the screen, the projector, the speaker system, the seating and the
// acoustic treatment, and returns a single verdict with ranked upgrades.
//
// Everything is organized in small, pure packages:
//
//	core/       shared value types, enums and the requested/authoritative model
//	search/     bounded one-dimensional correction walks
//	room/       geometry reduction after treatment and obstructions
//	screen/     screen size and height (two capped correction loops)
//	projector/  throw, lens shift and ceiling mount feasibility
//	speaker/    layout authority and subwoofer sizing
//	seating/    rows, riser, seats and the rear-row sightline
//	acoustic/   treatment plan, grade and risk
//	verdict/    master verdict, confidence and upgrade steps
//	engine/     the ordered pipeline, Inputs and DesignSummary
//	designfile/ HCL design files to engine.Inputs
//	logging/    zap logger construction
//
// Quick start:
//
//	in := engine.DefaultInputs()
//	in.Room = core.Dimensions{Length: 16, Width: 12, Height: 9}
//	sum := engine.Resolve(in)
//	fmt.Println(sum.Master.Verdict, sum.Screen.DiagonalIn)
//
// Units: feet for room geometry and distances, inches for treatment depths,
// screen sizes and heights, degrees for angles.
package cinemath
