package projector

// Fixed projector model.
const (
	// ThrowRatio is throw distance / image width.
	ThrowRatio = 1.6

	// LensDropIn is how far below the ceiling the lens sits when mounted.
	LensDropIn = 12.0

	// MinMountCeilingFt is the lowest ceiling that takes a ceiling mount.
	MinMountCeilingFt = 8.0
)

// Lens shift limits, percent of the image dimension.
const (
	VerticalOKPct     = 60.0
	VerticalWarnPct   = 70.0
	HorizontalOKPct   = 30.0
	HorizontalWarnPct = 35.0
)

// ShiftStatus grades a lens shift requirement.
type ShiftStatus string

const (
	ShiftOK          ShiftStatus = "OK"
	ShiftWarning     ShiftStatus = "Warning"
	ShiftNotPossible ShiftStatus = "Not Possible"
)

// Verdict is the projector authority result.
type Verdict string

const (
	Recommended Verdict = "Recommended"
	Compromised Verdict = "Compromised"
	NotFeasible Verdict = "Not Feasible"
)

// Request carries the final screen geometry and the room limits.
type Request struct {
	CeilingFt         float64 // raw ceiling height
	EquipmentLengthFt float64 // depth available to the throw
	ScreenWidthIn     float64
	ScreenHeightIn    float64
	ScreenCenterIn    float64 // height of the image center above the floor
	OffsetIn          float64 // horizontal lens offset from screen center
}

// LensShift is the required shift in percent.
type LensShift struct {
	V float64 `json:"v"`
	H float64 `json:"h"`
}

// Feasibility is the projector stage output.
type Feasibility struct {
	Verdict          Verdict     `json:"verdict"`
	ThrowFt          float64     `json:"throwFt"`
	ThrowFits        bool        `json:"throwFits"`
	LensHeightIn     float64     `json:"lensHeightIn"`
	LensShift        LensShift   `json:"lensShift"`
	VerticalStatus   ShiftStatus `json:"verticalStatus"`
	HorizontalStatus ShiftStatus `json:"horizontalStatus"`
	MountFeasible    bool        `json:"mountFeasible"`
	Reasons          []string    `json:"reasons"`
}
