package seating

import (
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/room"
)

// Seat model (recliner), inches.
const (
	SeatWidthIn  = 36.0
	SeatDepthIn  = 70.0
	SeatHeightIn = 44.0
	SideGapIn    = 1.0
)

// Row and riser limits.
const (
	MinRows = 1
	MaxRows = 6

	RiserMinIn = 5.0
	RiserMaxIn = 12.0

	// RiserMinCeilingFt is the lowest ceiling that takes a riser platform.
	RiserMinCeilingFt = 8.0
	// MinHeadroomFt is the clearance above a seated rear-row head.
	MinHeadroomFt = 1.0

	RiserDepthIn     = 72.0
	DeepRiserDepthIn = 84.0
	DeepRiserRoomFt  = 22.0

	FrontClearanceFt = 1.0
	RearClearanceFt  = 1.0
)

// Sightline model, inches and degrees.
const (
	EyeHeightIn     = 42.0
	FrontHeadIn     = 48.0
	RearComfortDeg  = 20.0
	overPackEpsilon = 1e-9
)

// Row2Status grades the rear-row view.
type Row2Status string

const (
	Row2NotApplicable Row2Status = "N/A"
	Row2Clear         Row2Status = "Clear"
	Row2Compromised   Row2Status = "Compromised"
	Row2Blocked       Row2Status = "Blocked"
)

// Row2 messages.
const (
	MsgRow2NotApplicable = "Single row layout; no rear-row sightline to check."
	MsgRow2Blocked       = "Rear row view is blocked by front row head height."
	MsgRow2Compromised   = "Rear row vertical viewing angle is steep but usable."
	MsgRow2Clear         = "Rear row has a clear and comfortable view of the screen."
)

// Request is everything the seating resolver reads.
type Request struct {
	Room        core.Dimensions
	Usable      room.Box
	Rows        int
	RiserIn     float64
	SeatsPerRow int // 0 = as many as fit
	Aisle       core.Aisle

	ScreenBottomIn    float64
	ScreenCenterIn    float64
	ViewingDistanceFt float64
}

// Row is one seating row; Y is the front edge of the seats, in feet from the
// screen wall.
type Row struct {
	Index   int     `json:"index"`
	Y       float64 `json:"yFt"`
	RiserIn float64 `json:"riserIn"`
	Seats   int     `json:"seats"`
}

// Sightline is the rear-row view check.
type Sightline struct {
	Status      Row2Status `json:"status"`
	Message     string     `json:"message"`
	SightlineIn float64    `json:"sightlineIn"`
	AngleDeg    float64    `json:"angleDeg"`
}

// Layout is the resolved seating plan.
type Layout struct {
	Rows        core.Resolution[int]     `json:"rows"`
	RiserIn     core.Resolution[float64] `json:"riserIn"`
	SeatsPerRow core.Resolution[int]     `json:"seatsPerRow"`

	MaxSeatsPerRow int      `json:"maxSeatsPerRow"`
	RiserDepthIn   float64  `json:"riserDepthIn"`
	SpacingFt      float64  `json:"spacingFt"`
	Positions      []Row    `json:"positions"`
	OverPacked     bool     `json:"overPacked"`
	Notes          []string `json:"notes"`

	Row2 Sightline `json:"row2"`
}
