package verdict_test

import (
	"testing"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/screen"
	"github.com/katalvlaran/cinemath/seating"
	"github.com/katalvlaran/cinemath/verdict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthy() verdict.Request {
	return verdict.Request{
		Projector:    projector.Recommended,
		Row2:         seating.Row2NotApplicable,
		ScreenRisk:   screen.RiskOK,
		ScreenFits:   true,
		AcousticRisk: acoustic.RiskLow,
		RearWall:     acoustic.Diffuser,
		Rows:         1,
		HeightLayer:  4,
		Subwoofers:   2,
		CeilingFt:    10,
		VolumeCuFt:   3360,
	}
}

func TestDecide(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*verdict.Request)
		want   verdict.RoomVerdict
	}{
		{"healthy", func(*verdict.Request) {}, verdict.Recommended},
		{"projector not feasible", func(r *verdict.Request) { r.Projector = projector.NotFeasible }, verdict.NotRecommended},
		{"row 2 blocked", func(r *verdict.Request) { r.Row2 = seating.Row2Blocked }, verdict.NotRecommended},
		{"projector compromised", func(r *verdict.Request) { r.Projector = projector.Compromised }, verdict.Compromised},
		{"row 2 compromised", func(r *verdict.Request) { r.Row2 = seating.Row2Compromised }, verdict.Compromised},
		{"screen critical", func(r *verdict.Request) { r.ScreenRisk = screen.RiskCritical }, verdict.Compromised},
		{"screen warning only", func(r *verdict.Request) { r.ScreenRisk = screen.RiskWarning }, verdict.Recommended},
		{"hard beats soft", func(r *verdict.Request) {
			r.Projector = projector.Compromised
			r.Row2 = seating.Row2Blocked
		}, verdict.NotRecommended},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := healthy()
			tc.modify(&r)
			assert.Equal(t, tc.want, verdict.Decide(r))
		})
	}
}

func TestConfidence(t *testing.T) {
	r := healthy()
	assert.Equal(t, 100, verdict.Confidence(r, verdict.Recommended))

	r.Rows = 2
	assert.Equal(t, 90, verdict.Confidence(r, verdict.Recommended))

	r.AcousticRisk = acoustic.RiskMedium
	assert.Equal(t, 60, verdict.Confidence(r, verdict.Compromised))

	r.AcousticRisk = acoustic.RiskHigh
	r.ScreenFits = false
	r.ManualSpeakers = true
	r.Subwoofers = 1
	assert.Equal(t, 100-40-25-10-15-10-5, verdict.Confidence(r, verdict.NotRecommended))

	r.VolumeCuFt = 1800
	assert.Equal(t, 100-40-25-10-15-10, verdict.Confidence(r, verdict.NotRecommended), "single sub is fine up to 1800ft³")
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, verdict.High, verdict.LabelFor(100))
	assert.Equal(t, verdict.High, verdict.LabelFor(85))
	assert.Equal(t, verdict.Medium, verdict.LabelFor(84))
	assert.Equal(t, verdict.Medium, verdict.LabelFor(65))
	assert.Equal(t, verdict.Low, verdict.LabelFor(64))
	assert.Equal(t, verdict.Low, verdict.LabelFor(0))
}

func TestFilter(t *testing.T) {
	steps := []verdict.Step{
		{Severity: 1, Text: "a"},
		{Severity: 2, Text: "b"},
		{Severity: 3, Text: "c"},
		{Severity: 2, Text: "d"},
		{Severity: 3, Text: "e"},
	}

	assert.Equal(t, []verdict.Step{{3, "c"}, {3, "e"}}, verdict.Filter(steps, 90))
	assert.Equal(t, []verdict.Step{{3, "c"}, {3, "e"}, {2, "b"}, {2, "d"}}, verdict.Filter(steps, 70))
	assert.Equal(t, []verdict.Step{{3, "c"}, {3, "e"}, {2, "b"}, {2, "d"}, {1, "a"}}, verdict.Filter(steps, 10))
	assert.Empty(t, verdict.Filter(nil, 10))
}

func TestAggregate_RecommendedPlaceholder(t *testing.T) {
	r := healthy()
	r.Rows = 2
	m := verdict.Aggregate(r)

	assert.Equal(t, verdict.Recommended, m.Verdict)
	assert.Equal(t, 90, m.ConfidenceScore)
	assert.Equal(t, verdict.High, m.ConfidenceLabel)
	assert.Equal(t, []verdict.Step{{Severity: 1, Text: verdict.StepNearOptimal}}, m.UpgradeSteps)
	assert.Equal(t, verdict.NextRecommended, m.NextSteps)
}

func TestAggregate_CompromisedProjector(t *testing.T) {
	r := healthy()
	r.Projector = projector.Compromised
	r.AcousticRisk = acoustic.RiskMedium
	r.RearWall = acoustic.Hybrid
	r.HeightLayer = 2
	m := verdict.Aggregate(r)

	assert.Equal(t, verdict.Compromised, m.Verdict)
	assert.Equal(t, 70, m.ConfidenceScore)
	assert.Equal(t, verdict.Medium, m.ConfidenceLabel)
	assert.Equal(t, []verdict.Step{{Severity: 2, Text: verdict.StepLensShift}}, m.UpgradeSteps)
	assert.Equal(t, verdict.NextCompromised, m.NextSteps)
}

func TestAggregate_NotRecommendedAllSteps(t *testing.T) {
	r := healthy()
	r.Projector = projector.NotFeasible
	r.Row2 = seating.Row2Blocked
	r.AcousticRisk = acoustic.RiskHigh
	r.ScreenFits = false
	r.RearWall = acoustic.Absorber
	r.HeightLayer = 0
	r.Subwoofers = 1
	r.Rows = 2
	m := verdict.Aggregate(r)

	assert.Equal(t, verdict.NotRecommended, m.Verdict)
	assert.Equal(t, 100-40-25-10-15-5, m.ConfidenceScore)
	assert.Equal(t, verdict.Low, m.ConfidenceLabel)
	require.Len(t, m.UpgradeSteps, 7)
	assert.Equal(t, verdict.StepProjector, m.UpgradeSteps[0].Text)
	assert.Equal(t, verdict.StepSecondSub, m.UpgradeSteps[6].Text)
	for i := 1; i < len(m.UpgradeSteps); i++ {
		assert.GreaterOrEqual(t, m.UpgradeSteps[i-1].Severity, m.UpgradeSteps[i].Severity)
	}
	assert.Equal(t, verdict.NextNotRecommended, m.NextSteps)
}

func TestAggregate_AtmosStepNeedsCeiling(t *testing.T) {
	r := healthy()
	r.Row2 = seating.Row2Compromised
	r.HeightLayer = 0
	r.CeilingFt = 8.5
	r.AcousticRisk = acoustic.RiskHigh
	m := verdict.Aggregate(r)

	for _, s := range m.UpgradeSteps {
		assert.NotEqual(t, verdict.StepAtmos, s.Text)
	}
}
