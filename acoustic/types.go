package acoustic

import "github.com/katalvlaran/cinemath/core"

// Surface is a treatment type.
type Surface string

const (
	Untreated Surface = "None"
	Absorber  Surface = "Absorber"
	Hybrid    Surface = "Hybrid"
	Diffuser  Surface = "Diffuser"
)

// BassTraps is the corner trap coverage.
type BassTraps string

const (
	TrapsAll      BassTraps = "All"
	TrapsRearOnly BassTraps = "RearOnly"
	TrapsNone     BassTraps = "None"
)

// RiskLevel is the hazard tier.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Grade is the treatment credit tier.
type Grade string

const (
	GradeReference        Grade = "Reference Grade"
	GradeVeryGood         Grade = "Very Good"
	GradeAcceptable       Grade = "Acceptable"
	GradeNeedsImprovement Grade = "Needs Improvement"
	GradePoor             Grade = "Poor"
)

// Flag is a user-facing acoustic hazard.
type Flag string

const (
	FlagEarlyReflections  Flag = "Early Reflections"
	FlagBassBuildUp       Flag = "Bass Build-up"
	FlagInsufficientDiff  Flag = "Insufficient Diffusion"
	FlagLowCeiling        Flag = "Low Ceiling Risk"
	FlagSeatWallProximity Flag = "Seat-to-Wall Proximity"
)

// Plan thresholds, feet and cubic feet.
const (
	ShortRoomFt        = 16.0
	LongRoomFt         = 22.0
	OverAbsorbRoomFt   = 20.0
	CeilingRoomFt      = 18.0
	CloudMinCeilingFt  = 8.0
	CloudMinRowDistFt  = 3.0
	SideMinWidthFt     = 10.0
	SideAbsorberDistFt = 10.0
	SideHybridDistFt   = 14.0
	MinDiffusionFt     = 6.0
	AllTrapsVolume     = 1500.0
	RearTrapsVolume    = 2500.0
	BassRiskVolume     = 2200.0
	LowCeilingFt       = 8.5
	ProximityFt        = 3.0
	MinTrapDepthIn     = 8.0
)

// Risk score thresholds.
const (
	NarrowWidthFt   = 12.0
	LowVolumeCuFt   = 1800.0
	RearClearanceFt = 6.0
)

// Mode recommendation thresholds, cubic feet.
const (
	BasicMaxVolume  = 2500.0
	MediumMaxVolume = 5500.0
)

// Request is everything the acoustic stage reads.
type Request struct {
	Room              core.Dimensions
	Treatment         core.Treatment
	ViewingDistanceFt float64
	HeightSpeakers    int     // final Atmos layer
	FrontRowFt        float64 // front row distance from the screen wall
	Mode              core.AcousticMode

	// Overrides; zero values select the automatic plan.
	RearWall  Surface
	BassTraps BassTraps
}

// Plan is the treatment plan.
type Plan struct {
	RearWall             Surface   `json:"rearWall"`
	RearPanelDepthIn     float64   `json:"rearPanelDepthIn"`
	SideWalls            bool      `json:"sideWalls"`
	SideWallType         Surface   `json:"sideWallType"`
	Ceiling              bool      `json:"ceiling"`
	CeilingCloud         bool      `json:"ceilingCloud"`
	RearDiffusionAllowed bool      `json:"rearDiffusionAllowed"`
	BassTraps            BassTraps `json:"bassTraps"`
	BassTrapDepthIn      float64   `json:"bassTrapDepthIn"`
}

// Assessment is the acoustic stage output.
type Assessment struct {
	RiskLevel       RiskLevel `json:"riskLevel"`
	Grade           Grade     `json:"grade"`
	Score           int       `json:"score"`
	Recommendations []string  `json:"recommendations"`

	RiskScore   int      `json:"riskScore"`
	Flags       []Flag   `json:"flags"`
	Warnings    []string `json:"warnings"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Plan        Plan     `json:"plan"`

	Mode            core.AcousticMode `json:"mode"`
	RecommendedMode core.AcousticMode `json:"recommendedMode"`
}
