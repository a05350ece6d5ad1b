// Package speaker is the speaker layout authority: it decides the surround
// base layer, the height (Atmos) layer and the subwoofer count, and
// reconciles a manual layout against the same physical limits.
//
// Limits:
//
//	base   = 7 if width ≥ 11ft and usable length ≥ 15ft, else 5
//	height = 0 below an 8ft ceiling; otherwise 2, raised to 4 when the
//	         ceiling is ≥ 9ft and usable length ≥ 18ft; 2 drops to 0 when
//	         usable length < 14ft
//
// Layout strings are "<base>.1.<height>" (base ∈ {5,7,9,11}, height ∈
// {0,2,4,6}), parsed by the single ParseLayout rule.
//
// Subwoofers:
//
//	1 by default, 2 from 1800ft³, 4 from 3000ft³; near-square rooms and
//	rooms at least 12ft wide get at least 2. A manual count is clamped to
//	[1,4].
//
// The Atmos elevation angle (3.5ft ear height to the ceiling over the
// viewing distance) is reported against its 30–55° window for information;
// it does not gate the height layer.
package speaker
