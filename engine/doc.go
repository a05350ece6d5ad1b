// Package engine is the Room Design Resolution Engine: one pure function,
// Resolve, that turns room and preference Inputs into a DesignSummary.
//
// The pipeline is fixed and every stage reads only what earlier stages
// produced:
//
//	1. room.Reduce          usable footprint after treatment and obstructions
//	2. screen.Resolve       diagonal correction and vertical placement (capped loops)
//	3. projector.Resolve    throw, lens shift and ceiling mount
//	4. speaker.Resolve      layout authority, subwoofers
//	5. seating.Resolve      rows, riser, seats, rear-row sightline
//	6. acoustic.Evaluate    treatment plan, grade, risk
//	7. verdict.Aggregate    room verdict, confidence, upgrade steps
//
// Invalid or missing room dimensions do not produce an error. Resolve
// returns a Locked summary instead: the dependent inputs revert to their
// defaults (Auto layout, one row, no riser, Medium acoustic mode, Auto
// screen, 4in treatment) and the master verdict is Not Evaluated. Callers
// that would rather reject input use Validate, which reports the same
// conditions as sentinel errors.
//
// Resolve keeps no state and takes no locks, so any number of goroutines
// may call it concurrently. Tracing goes to the zap logger given with
// WithLogger (a no-op logger by default), one Debug entry per stage.
package engine
