// Package verdict is the only stage allowed to escalate: it reads the
// projector verdict, the rear-row sightline, the screen risk and the acoustic
// risk tier, and folds them into a single room verdict.
//
//	Not Recommended  projector Not Feasible, or row 2 Blocked
//	Compromised      projector Compromised, row 2 Compromised, or screen Critical
//	Recommended      otherwise
//
// The confidence score starts at 100 and is debited per weakness; ≥85 is
// High, ≥65 Medium. Upgrade steps are only produced for a verdict below
// Recommended and are filtered by confidence: a confident design shows only
// severity-3 steps, a middling one severity 2 and up, a weak one all of
// them. When nothing survives a single near-optimal step is returned.
package verdict
