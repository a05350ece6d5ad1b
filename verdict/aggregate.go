// Package verdict - master verdict aggregator.
//
// Contracts:
//   - The only stage that escalates other stages' statuses.
//   - ConfidenceScore ∈ [0,100].
//   - UpgradeSteps is never empty and is sorted by severity, descending.
//
// Complexity: O(k log k) in the number of candidate steps.
package verdict

import (
	"sort"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/screen"
	"github.com/katalvlaran/cinemath/seating"
)

// Aggregate escalates the stage results into the master verdict.
func Aggregate(r Request) Master {
	m := Master{Verdict: Decide(r)}
	m.ConfidenceScore = Confidence(r, m.Verdict)
	m.ConfidenceLabel = LabelFor(m.ConfidenceScore)

	var steps []Step
	if m.Verdict != Recommended {
		steps = Filter(candidates(r), m.ConfidenceScore)
	}
	if len(steps) == 0 {
		steps = []Step{{Severity: 1, Text: StepNearOptimal}}
	}
	m.UpgradeSteps = steps
	m.NextSteps = NextSteps(m.Verdict)

	return m
}

// Decide applies the hard and soft failure rules.
func Decide(r Request) RoomVerdict {
	switch {
	case r.Projector == projector.NotFeasible || r.Row2 == seating.Row2Blocked:
		return NotRecommended
	case r.Projector == projector.Compromised || r.Row2 == seating.Row2Compromised || r.ScreenRisk == screen.RiskCritical:
		return Compromised
	default:
		return Recommended
	}
}

// Confidence debits 100 for every weakness and clamps to [0,100].
func Confidence(r Request, v RoomVerdict) int {
	c := 100
	switch v {
	case Compromised:
		c -= CompromisedDebit
	case NotRecommended:
		c -= NotRecommendedDebit
	}
	switch r.AcousticRisk {
	case acoustic.RiskMedium:
		c -= MediumRiskDebit
	case acoustic.RiskHigh:
		c -= HighRiskDebit
	}
	if r.Rows > 1 {
		c -= MultiRowDebit
	}
	if !r.ScreenFits {
		c -= ScreenFitDebit
	}
	if r.ManualSpeakers {
		c -= ManualSpeakerDebit
	}
	if r.Subwoofers == 1 && r.VolumeCuFt > SingleSubVolume {
		c -= SingleSubDebit
	}

	return min(max(c, 0), 100)
}

// LabelFor tiers a confidence score.
func LabelFor(score int) Label {
	switch {
	case score >= HighConfidence:
		return High
	case score >= MediumConfidence:
		return Medium
	default:
		return Low
	}
}

func candidates(r Request) []Step {
	var s []Step
	if r.Projector == projector.NotFeasible {
		s = append(s, Step{3, StepProjector})
	}
	if r.Row2 == seating.Row2Blocked {
		s = append(s, Step{3, StepSightline})
	}
	if r.AcousticRisk == acoustic.RiskHigh {
		s = append(s, Step{3, StepAbsorption})
	}
	if !r.ScreenFits {
		s = append(s, Step{3, StepScreenSize})
	}
	if r.Projector == projector.Compromised {
		s = append(s, Step{2, StepLensShift})
	}
	if r.RearWall == acoustic.Absorber {
		s = append(s, Step{2, StepRearAbsorb})
	}
	if r.HeightLayer == 0 && r.CeilingFt >= AtmosCeilingFt {
		s = append(s, Step{2, StepAtmos})
	}
	if r.Subwoofers == 1 && r.VolumeCuFt > SingleSubVolume {
		s = append(s, Step{1, StepSecondSub})
	}

	return s
}

// Filter keeps the steps a confidence level warrants and sorts them by
// severity, descending, keeping insertion order among equals.
func Filter(steps []Step, confidence int) []Step {
	minSeverity := 1
	switch {
	case confidence >= HighConfidence:
		minSeverity = 3
	case confidence >= MediumConfidence:
		minSeverity = 2
	}

	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Severity >= minSeverity {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Severity > out[j].Severity })

	return out
}

// NextSteps is the closing sentence for a verdict.
func NextSteps(v RoomVerdict) string {
	switch v {
	case Recommended:
		return NextRecommended
	case Compromised:
		return NextCompromised
	default:
		return NextNotRecommended
	}
}
