package screen

import (
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/room"
)

// Sizing.
const (
	// WidthRatio sizes the ideal image at 75% of the room width.
	WidthRatio = 0.75

	// MinDiagonalIn is the smallest image the correction loop will propose.
	MinDiagonalIn = 90.0

	// DiagonalStepIn is the shrink applied per correction iteration.
	DiagonalStepIn = 2.0

	// CriticalWidthRatio flags an image wider than 90% of the room.
	CriticalWidthRatio = 0.9
)

// Vertical placement, inches above the finished floor.
const (
	DefaultBottomIn = 24.0
	CenterSpeakerIn = 10.0
	CenterGapIn     = 2.0
	MinBottomIn     = CenterSpeakerIn + CenterGapIn

	BottomMinIn  = 18.0 // placement search range
	BottomMaxIn  = 32.0
	BottomStepIn = 1.0

	// IdealBottomMaxIn is the top of the ergonomic "Ideal" band.
	IdealBottomMaxIn = 30.0

	EyeHeightIn = 42.0
)

// Clearances, feet.
const (
	SideClearanceFt   = 0.5
	TopClearanceFt    = 0.5
	BottomClearanceFt = 1.5

	// CeilingMarginFt is the headroom the top of the image must keep.
	CeilingMarginFt = 2.0
)

// Viewing angle limits, degrees.
const (
	MaxCorrectionAngleDeg = 20.0
	ComfortAngleDeg       = 15.0
)

// StandardSizesIn lists the commercially common diagonals.
var StandardSizesIn = []float64{72, 92, 100, 110, 120, 135, 150, 165, 180, 200}

// Risk is the screen-level hazard grade.
type Risk string

const (
	RiskOK       Risk = "OK"
	RiskWarning  Risk = "Warning"
	RiskCritical Risk = "Critical"
)

// Comfort grades the vertical viewing angle from the front row.
type Comfort string

const (
	Comfortable  Comfort = "Comfortable"
	SlightlyHigh Comfort = "Slightly High"
	TooHighAngle Comfort = "Too High"
)

// Ergonomics grades the image bottom height.
type Ergonomics string

const (
	BottomTooLow     Ergonomics = "Too Low"
	BottomAcceptable Ergonomics = "Acceptable"
	BottomIdeal      Ergonomics = "Ideal"
	BottomTooHigh    Ergonomics = "Too High"
)

// Gate names reported by the diagonal correction loop.
const (
	GateCeiling   = "ceiling fit"
	GateClearance = "center speaker clearance"
	GateAngle     = "vertical angle"
	GateLensShift = "lens shift"
	GateThrow     = "projector throw"
)

// Request is everything the screen resolver reads.
type Request struct {
	Room       core.Dimensions
	Usable     room.Usable
	Aspect     core.Aspect
	Standard   core.ViewingStandard
	DiagonalIn float64 // 0 = Auto
	Mount      core.MountType
}

// Options bounds the two correction loops.
type Options struct {
	DiagonalIterations int
	PositionIterations int
}

// DefaultOptions returns the 50/30 iteration caps.
func DefaultOptions() Options {
	return Options{DiagonalIterations: 50, PositionIterations: 30}
}

// Loop reports how a bounded correction ended.
type Loop struct {
	Converged  bool     `json:"converged"`
	Iterations int      `json:"iterations"`
	Failing    []string `json:"failing,omitempty"`
}

// Geometry is the resolved screen.
type Geometry struct {
	DiagonalIn float64 `json:"diagonalIn"`
	WidthFt    float64 `json:"widthFt"`
	HeightFt   float64 `json:"heightFt"`
	BottomIn   float64 `json:"bottomIn"`

	WidthIn  float64 `json:"widthIn"`
	HeightIn float64 `json:"heightIn"`
	CenterIn float64 `json:"centerIn"`
	TopIn    float64 `json:"topIn"`

	// IdealDiagonalIn is the 75%-width image before any correction.
	IdealDiagonalIn     float64                  `json:"idealDiagonalIn"`
	CorrectedDiagonalIn float64                  `json:"correctedDiagonalIn"`
	Diagonal            core.Resolution[float64] `json:"diagonal"`
	Bottom              core.Resolution[float64] `json:"bottom"`
	DiagonalLoop        Loop                     `json:"diagonalLoop"`
	PositionLoop        Loop                     `json:"positionLoop"`

	ViewingDistanceFt float64    `json:"viewingDistanceFt"`
	LensHeightIn      float64    `json:"lensHeightIn"`
	VerticalAngleDeg  float64    `json:"verticalAngleDeg"`
	Comfort           Comfort    `json:"comfort"`
	Ergonomics        Ergonomics `json:"ergonomics"`

	FitsRoom          bool        `json:"fitsRoom"`
	Solid             bool        `json:"solid"`
	Status            core.Status `json:"status"`
	Risk              Risk        `json:"risk"`
	NearestStandardIn float64     `json:"nearestStandardIn"`
	AllowedSizesIn    []float64   `json:"allowedSizesIn"`
	Notes             []string    `json:"notes"`
}
