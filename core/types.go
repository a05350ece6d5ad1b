// Package core - shared value types for every resolution stage.
//
// Dimensions and Treatment describe the raw room; the string enumerations
// (MountType, Aspect, ViewingStandard, Aisle, AcousticMode) are the choices a
// design is expressed in. Each enumeration carries the physical quantity it
// implies (obstruction depth, aspect ratio, viewing angle, aisle width).
//
// Errors:
//
//	ErrUnknownAspect    - aspect ratio name not recognized.
//	ErrUnknownStandard  - viewing standard name not recognized.
//	ErrUnknownMount     - speaker mount type name not recognized.
//	ErrUnknownAisle     - aisle type name not recognized.
//	ErrUnknownMode      - acoustic mode name not recognized.
package core

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors for name parsing.
var (
	// ErrUnknownAspect indicates an aspect ratio outside {16:9, 2.35:1, 4:3}.
	ErrUnknownAspect = errors.New("core: unknown aspect ratio")

	// ErrUnknownStandard indicates a viewing standard outside {smpte, thx, max}.
	ErrUnknownStandard = errors.New("core: unknown viewing standard")

	// ErrUnknownMount indicates a mount type outside {InWall, OnWall}.
	ErrUnknownMount = errors.New("core: unknown speaker mount type")

	// ErrUnknownAisle indicates an aisle type outside {None, Left, Right, Center, Both}.
	ErrUnknownAisle = errors.New("core: unknown aisle type")

	// ErrUnknownMode indicates an acoustic mode outside {Basic, Medium, High}.
	ErrUnknownMode = errors.New("core: unknown acoustic mode")
)

// Hard room limits (feet). Anything above is outside the supported envelope.
const (
	MaxLengthFt = 60.0
	MaxWidthFt  = 40.0
	MaxHeightFt = 20.0
)

// CeilingDepthIn is the fixed ceiling build-up (services, AC, fresh air).
// It is never user-set.
const CeilingDepthIn = 12.0

// DefaultWallDepthIn is the per-wall treatment depth restored on reset.
const DefaultWallDepthIn = 4.0

// Dimensions is the raw room box in feet. A zero field means "not entered".
type Dimensions struct {
	Length float64 `json:"lengthFt"`
	Width  float64 `json:"widthFt"`
	Height float64 `json:"heightFt"`
}

// Valid reports whether every dimension is finite, positive and within the
// hard caps (60/40/20 ft).
func (d Dimensions) Valid() bool {
	return inRange(d.Length, MaxLengthFt) &&
		inRange(d.Width, MaxWidthFt) &&
		inRange(d.Height, MaxHeightFt)
}

// Volume returns L·W·H in cubic feet, or 0 when the room is not valid.
func (d Dimensions) Volume() float64 {
	if !d.Valid() {
		return 0
	}

	return d.Length * d.Width * d.Height
}

func inRange(v, hi float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= hi
}

// Treatment holds the per-wall acoustic treatment depth in inches.
// The ceiling depth is CeilingDepthIn and is not part of this value.
type Treatment struct {
	Front float64 `json:"frontIn"`
	Back  float64 `json:"backIn"`
	Left  float64 `json:"leftIn"`
	Right float64 `json:"rightIn"`
}

// DefaultTreatment returns 4in on every wall.
func DefaultTreatment() Treatment {
	return Treatment{
		Front: DefaultWallDepthIn,
		Back:  DefaultWallDepthIn,
		Left:  DefaultWallDepthIn,
		Right: DefaultWallDepthIn,
	}
}

// Sanitized returns a copy with every negative or non-finite depth
// replaced by 0.
func (t Treatment) Sanitized() Treatment {
	return Treatment{
		Front: NonNegative(t.Front),
		Back:  NonNegative(t.Back),
		Left:  NonNegative(t.Left),
		Right: NonNegative(t.Right),
	}
}

// MountType is how the front speakers are installed.
type MountType string

const (
	// InWall speakers are recessed in the front wall behind a transparent screen.
	InWall MountType = "InWall"
	// OnWall speakers are surface mounted beside a solid screen.
	OnWall MountType = "OnWall"
)

// PlacementMode is where the front speakers sit relative to the screen.
type PlacementMode string

const (
	BehindScreen PlacementMode = "BehindScreen"
	BesideScreen PlacementMode = "BesideScreen"
)

// Placement derives the placement mode. In-wall speakers always go behind
// an acoustically transparent screen; on-wall speakers never can.
func (m MountType) Placement() PlacementMode {
	if m == OnWall {
		return BesideScreen
	}

	return BehindScreen
}

// FrontObstructionIn is the depth the speaker/screen assembly takes from the
// front of the room: a 10in baffle for in-wall, 6in projection for on-wall.
func (m MountType) FrontObstructionIn() float64 {
	if m == OnWall {
		return 6
	}

	return 10
}

// Aspect is the screen aspect ratio.
type Aspect string

const (
	Aspect16x9  Aspect = "16:9"
	Aspect235x1 Aspect = "2.35:1"
	Aspect4x3   Aspect = "4:3"
)

// Ratio returns width/height. Unknown values fall back to 16:9.
func (a Aspect) Ratio() float64 {
	switch a {
	case Aspect235x1:
		return 2.35
	case Aspect4x3:
		return 4.0 / 3.0
	default:
		return 16.0 / 9.0
	}
}

// ViewingStandard selects the horizontal viewing angle.
type ViewingStandard string

const (
	SMPTE ViewingStandard = "smpte" // 30°
	THX   ViewingStandard = "thx"   // 36°
	Max   ViewingStandard = "max"   // 40°
)

// AngleDeg returns the horizontal viewing angle in degrees.
func (s ViewingStandard) AngleDeg() float64 {
	switch s {
	case THX:
		return 36
	case Max:
		return 40
	default:
		return 30
	}
}

// Aisle is the seating aisle arrangement.
type Aisle string

const (
	AisleNone   Aisle = "None"
	AisleLeft   Aisle = "Left"
	AisleRight  Aisle = "Right"
	AisleCenter Aisle = "Center"
	AisleBoth   Aisle = "Both"
)

// AisleWidthIn is the width of a single aisle.
const AisleWidthIn = 24.0

// DeductionFt is the row width consumed by the aisle arrangement.
func (a Aisle) DeductionFt() float64 {
	switch a {
	case AisleLeft, AisleRight, AisleCenter:
		return AisleWidthIn / 12
	case AisleBoth:
		return 2 * AisleWidthIn / 12
	default:
		return 0
	}
}

// AcousticMode is the requested treatment level.
type AcousticMode string

const (
	ModeBasic  AcousticMode = "Basic"
	ModeMedium AcousticMode = "Medium"
	ModeHigh   AcousticMode = "High"
)

// Rank orders modes Basic < Medium < High. Unknown modes rank as Medium.
func (m AcousticMode) Rank() int {
	switch m {
	case ModeBasic:
		return 0
	case ModeHigh:
		return 2
	default:
		return 1
	}
}

// ParseAspect maps a user-facing name to an Aspect.
func ParseAspect(s string) (Aspect, error) {
	switch strings.TrimSpace(s) {
	case "16:9", "":
		return Aspect16x9, nil
	case "2.35:1", "2.35":
		return Aspect235x1, nil
	case "4:3":
		return Aspect4x3, nil
	}

	return "", ErrUnknownAspect
}

// ParseViewingStandard maps a name (case-insensitive) to a ViewingStandard.
func ParseViewingStandard(s string) (ViewingStandard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smpte", "":
		return SMPTE, nil
	case "thx":
		return THX, nil
	case "max":
		return Max, nil
	}

	return "", ErrUnknownStandard
}

// ParseMountType maps a name (case-insensitive) to a MountType.
func ParseMountType(s string) (MountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inwall", "in-wall", "":
		return InWall, nil
	case "onwall", "on-wall":
		return OnWall, nil
	}

	return "", ErrUnknownMount
}

// ParseAisle maps a name (case-insensitive) to an Aisle.
func ParseAisle(s string) (Aisle, error) {
	for _, a := range []Aisle{AisleNone, AisleLeft, AisleRight, AisleCenter, AisleBoth} {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return AisleNone, nil
	}

	return "", ErrUnknownAisle
}

// ParseAcousticMode maps a name (case-insensitive) to an AcousticMode.
func ParseAcousticMode(s string) (AcousticMode, error) {
	for _, m := range []AcousticMode{ModeBasic, ModeMedium, ModeHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return ModeMedium, nil
	}

	return "", ErrUnknownMode
}
