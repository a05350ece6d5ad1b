package verdict

import (
	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/screen"
	"github.com/katalvlaran/cinemath/seating"
)

// RoomVerdict is the overall feasibility call.
type RoomVerdict string

const (
	Recommended    RoomVerdict = "Recommended"
	Compromised    RoomVerdict = "Compromised"
	NotRecommended RoomVerdict = "Not Recommended"
	NotEvaluated   RoomVerdict = "Not Evaluated"
)

// Label is the confidence tier.
type Label string

const (
	High   Label = "High"
	Medium Label = "Medium"
	Low    Label = "Low"
)

// Confidence debits.
const (
	CompromisedDebit    = 20
	NotRecommendedDebit = 40
	MediumRiskDebit     = 10
	HighRiskDebit       = 25
	MultiRowDebit       = 10
	ScreenFitDebit      = 15
	ManualSpeakerDebit  = 10
	SingleSubDebit      = 5
)

// Tier and filter thresholds.
const (
	HighConfidence   = 85
	MediumConfidence = 65
	SingleSubVolume  = 1800.0
	AtmosCeilingFt   = 9.0
)

// Step is one ranked upgrade.
type Step struct {
	Severity int    `json:"severity"`
	Text     string `json:"text"`
}

// Step texts.
const (
	StepProjector      = "Relocate the projector or choose a lens with more vertical shift so the image can be reached from the mount."
	StepSightline      = "Raise the rear riser or reduce the number of rows to restore a clear rear-row sightline."
	StepAbsorption     = "Increase broadband absorption at side walls and ceiling reflection zones."
	StepScreenSize     = "Reduce screen size to meet physical and ergonomic viewing limits."
	StepLensShift      = "Adjust the projector mount height or screen position to keep lens shift within the recommended range."
	StepRearAbsorb     = "Use thick rear wall absorption instead of diffusion to control reflections."
	StepAtmos          = "Enable Dolby Atmos by adding ceiling or height speakers."
	StepSecondSub      = "Add a second subwoofer to improve bass consistency."
	StepNearOptimal    = "Room is close to optimal. Minor acoustic tuning and calibration recommended."
	NextRecommended    = "Proceed with detailed acoustic design, equipment selection, and professional calibration."
	NextCompromised    = "Proceed carefully. Acoustic treatment, seating layout, and speaker placement will be critical."
	NextNotRecommended = "Consider room modifications or an alternative space before investing in a home theater."
)

// Request carries the stage outputs the aggregator escalates.
type Request struct {
	Projector      projector.Verdict
	Row2           seating.Row2Status
	ScreenRisk     screen.Risk
	ScreenFits     bool
	AcousticRisk   acoustic.RiskLevel
	RearWall       acoustic.Surface
	Rows           int
	ManualSpeakers bool
	HeightLayer    int
	Subwoofers     int
	CeilingFt      float64
	VolumeCuFt     float64
}

// Master is the aggregate outcome.
type Master struct {
	Verdict         RoomVerdict `json:"verdict"`
	ConfidenceScore int         `json:"confidenceScore"`
	ConfidenceLabel Label       `json:"confidenceLabel"`
	UpgradeSteps    []Step      `json:"upgradeSteps"`
	NextSteps       string      `json:"nextSteps"`
}
