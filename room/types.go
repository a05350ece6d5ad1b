package room

// Box is the usable footprint in feet. X is measured from the left wall and
// Y from the screen wall, so the box can be drawn directly by a renderer.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"widthFt"`
	Length float64 `json:"lengthFt"`
}

// Bottom returns the Y of the rear usable boundary.
func (b Box) Bottom() float64 { return b.Y + b.Length }

// LossClass buckets the volume lost to treatment and obstructions.
type LossClass string

const (
	LossMinimal     LossClass = "Minimal"     // < 5%
	LossModerate    LossClass = "Moderate"    // <= 12%
	LossSignificant LossClass = "Significant" // > 12%
)

// Severity summarizes the advisories.
type Severity string

const (
	SeveritySafe     Severity = "Safe"
	SeverityCaution  Severity = "Caution"
	SeverityCritical Severity = "Critical"
)

// Advisory is a non-fatal geometry warning.
type Advisory struct {
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity"`
}

// Advisory titles.
const (
	ExcessiveSideDepth  = "Excessive Side Wall Depth"
	ExcessiveFrontDepth = "Excessive Front Wall Depth"
	ExcessiveRearDepth  = "Excessive Rear Wall Depth"
	OverConstrainedW    = "Over-Constrained Width"
	OverConstrainedL    = "Over-Constrained Length"
)

// Thresholds for the advisories, in inches for depths and feet for space.
const (
	SideDepthLimitIn  = 16.0
	FrontDepthLimitIn = 10.0
	RearDepthLimitIn  = 10.0
	MinUsableWidthFt  = 9.0
	MinUsableLengthFt = 12.0

	// EquipmentZoneFt is reserved behind the seating for the projector body
	// and rack; it is not available to the lens throw.
	EquipmentZoneFt = 2.0
)

// Usable is the room left after treatment and obstructions.
type Usable struct {
	Box
	Height float64 `json:"heightFt"`

	Volume        float64   `json:"volumeCuFt"`
	RawVolume     float64   `json:"rawVolumeCuFt"`
	VolumeLossPct float64   `json:"volumeLossPct"`
	LossClass     LossClass `json:"lossClass"`

	// EquipmentLength is the depth available to the projector throw:
	// raw length minus front/back treatment minus the equipment zone.
	EquipmentLength float64 `json:"equipmentLengthFt"`

	FrontObstructionIn float64 `json:"frontObstructionIn"`

	Advisories []Advisory `json:"advisories"`
	Severity   Severity   `json:"severity"`
}

// Degenerate reports whether any usable dimension collapsed to zero.
func (u Usable) Degenerate() bool {
	return u.Width == 0 || u.Length == 0 || u.Height == 0
}
