// Package acoustic plans the room treatment and scores it twice, for two
// different audiences.
//
// Treatment grade (credit for the plan): starts at 100 and is debited
//
//	−20 rear wall untreated          −10 absorber in a room over 20ft
//	−15 diffuser too close to seats  −10 side walls untreated
//	−10 ceiling reflection zone bare −20 no bass traps
//	 −8 rear-only bass traps
//
// then clamped to [0,100] and tiered Reference (≥90), Very Good (≥80),
// Acceptable (≥65), Needs Improvement (≥50) or Poor.
//
// Risk score (hazards for the user): width < 12ft +1, volume < 1800ft³ +2,
// rear clearance (length − viewing distance) < 6ft +2; Low ≤ 2, Medium ≤ 5,
// otherwise High. With these weights the maximum is 5, so the High tier is
// reachable only if the weights change.
//
// Recommendations combine the per-flag advice, the tier list and an
// acoustic-mode advisory when the selected mode is below the one the room
// volume calls for.
package acoustic
