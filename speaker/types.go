package speaker

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cinemath/core"
)

// ErrBadLayout indicates a layout string that is not "<base>.1.<height>"
// with base in {5,7,9,11} and height in {0,2,4,6}.
var ErrBadLayout = errors.New("speaker: layout must be <base>.1.<height>")

// Auto selects the layout from room geometry.
const Auto = "Auto"

// Gating thresholds, feet.
const (
	SevenBaseMinWidthFt  = 11.0
	SevenBaseMinLengthFt = 15.0

	AtmosMinCeilingFt     = 8.0
	AtmosFourMinCeilingFt = 9.0
	AtmosFourMinLengthFt  = 18.0
	AtmosTwoMinLengthFt   = 14.0

	EarHeightFt           = 3.5
	AtmosMinElevationDeg  = 30.0
	AtmosMaxElevationDeg  = 55.0
	TwoSubMinVolumeCuFt   = 1800.0
	FourSubMinVolumeCuFt  = 3000.0
	WideRoomFt            = 12.0
	MaxSubwoofers         = 4
	nearSquareLow         = 0.85
	nearSquareHigh        = 1.15
)

// Layout is a parsed "<base>.1.<height>" surround layout.
type Layout struct {
	Base   int
	Height int
}

// String renders the layout in dotted form.
func (l Layout) String() string {
	return fmt.Sprintf("%d.1.%d", l.Base, l.Height)
}

// Request is everything the speaker authority reads.
type Request struct {
	Room              core.Dimensions
	UsableLengthFt    float64
	Mount             core.MountType
	Choice            string // Auto or "<base>.1.<height>"
	Subwoofers        int    // 0 = automatic
	ViewingDistanceFt float64
}

// Config is the resolved speaker system.
type Config struct {
	Layout  string      `json:"layout"`
	Status  core.Status `json:"status"`
	Message string      `json:"message"`

	Choice    core.Resolution[string] `json:"choice"`
	Base      core.Resolution[int]    `json:"base"`
	Height    core.Resolution[int]    `json:"height"`
	MaxBase   int                     `json:"maxBase"`
	MaxHeight int                     `json:"maxHeight"`
	Manual    bool                    `json:"manual"`

	Placement core.PlacementMode `json:"placement"`

	Subwoofers         core.Resolution[int] `json:"subwoofers"`
	SubwooferPlacement string               `json:"subwooferPlacement"`

	AtmosElevationDeg float64 `json:"atmosElevationDeg"`
	AtmosInWindow     bool    `json:"atmosInWindow"`
}
