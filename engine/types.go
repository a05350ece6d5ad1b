package engine

import (
	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/room"
	"github.com/katalvlaran/cinemath/screen"
	"github.com/katalvlaran/cinemath/seating"
	"github.com/katalvlaran/cinemath/speaker"
	"github.com/katalvlaran/cinemath/verdict"
)

// Inputs is the full input contract. The zero Room means "absent".
type Inputs struct {
	Room      core.Dimensions `json:"room"`
	Treatment core.Treatment  `json:"treatment"`

	Mount      core.MountType `json:"mountType"`
	Layout     string         `json:"layoutChoice"` // Auto or "<base>.1.<height>"
	Subwoofers int            `json:"subwoofers"`   // 0 = automatic

	Aspect     core.Aspect          `json:"aspect"`
	Standard   core.ViewingStandard `json:"viewingStandard"`
	DiagonalIn float64              `json:"diagonalIn"` // 0 = Auto

	ProjectorOffsetIn float64 `json:"projectorOffsetIn"`

	Rows        int        `json:"rowCount"`
	RiserIn     float64    `json:"riserHeightIn"`
	SeatsPerRow int        `json:"seatsPerRow"` // 0 = as many as fit
	Aisle       core.Aisle `json:"aisle"`

	AcousticMode core.AcousticMode  `json:"acousticMode"`
	RearWall     acoustic.Surface   `json:"rearWall,omitempty"`  // empty = automatic
	BassTraps    acoustic.BassTraps `json:"bassTraps,omitempty"` // empty = automatic
}

// DefaultInputs returns the form defaults with no room entered.
func DefaultInputs() Inputs {
	return Inputs{
		Treatment:    core.DefaultTreatment(),
		Mount:        core.InWall,
		Layout:       speaker.Auto,
		Aspect:       core.Aspect16x9,
		Standard:     core.SMPTE,
		Rows:         1,
		Aisle:        core.AisleNone,
		AcousticMode: core.ModeMedium,
	}
}

// Screen is the screen section of the summary.
type Screen struct {
	DiagonalIn float64 `json:"diagonalIn"`
	WidthFt    float64 `json:"widthFt"`
	HeightFt   float64 `json:"heightFt"`
	BottomIn   float64 `json:"bottomIn"`

	Detail screen.Geometry `json:"detail"`
}

// Seating is the seating section of the summary.
type Seating struct {
	Rows        int               `json:"rows"`
	RiserIn     float64           `json:"riserIn"`
	SeatsPerRow int               `json:"seatsPerRow"`
	Row2        seating.Sightline `json:"row2"`

	Detail seating.Layout `json:"detail"`
}

// DesignSummary is the sole engine output. It is built fresh by every
// Resolve call.
type DesignSummary struct {
	Locked bool `json:"locked"`

	// Inputs echoes the effective inputs, after the locked reset if any.
	Inputs Inputs `json:"inputs"`

	UsableRoom room.Usable           `json:"usableRoom"`
	Screen     Screen                `json:"screen"`
	Projector  projector.Feasibility `json:"projector"`
	Speakers   speaker.Config        `json:"speakers"`
	Seating    Seating               `json:"seating"`
	Acoustic   acoustic.Assessment   `json:"acoustic"`
	Master     verdict.Master        `json:"master"`
}
