// Package speaker - layout authority.
//
// Contracts:
//   - Auto yields exactly the physical maxima (MaxBase, MaxHeight).
//   - A manual layout is clamped down to the same maxima; it can never
//     exceed what Auto would allow.
//   - A manual height layer zeroed by the ceiling is Restricted; any other
//     clamp is Adjusted.
//   - An unparsable choice falls back to Auto with status Adjusted.
//
// Complexity: O(1).
package speaker

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cinemath/core"
)

var (
	validBases   = map[int]bool{5: true, 7: true, 9: true, 11: true}
	validHeights = map[int]bool{0: true, 2: true, 4: true, 6: true}
)

// ParseLayout is the single canonical parser: split on ".", exactly three
// parts, the middle part "1".
func ParseLayout(s string) (Layout, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 || parts[1] != "1" {
		return Layout{}, fmt.Errorf("%w: %q", ErrBadLayout, s)
	}
	base, err := strconv.Atoi(parts[0])
	if err != nil || !validBases[base] {
		return Layout{}, fmt.Errorf("%w: base %q", ErrBadLayout, parts[0])
	}
	height, err := strconv.Atoi(parts[2])
	if err != nil || !validHeights[height] {
		return Layout{}, fmt.Errorf("%w: height %q", ErrBadLayout, parts[2])
	}

	return Layout{Base: base, Height: height}, nil
}

// IsAuto reports whether choice selects the automatic layout.
func IsAuto(choice string) bool {
	c := strings.TrimSpace(choice)
	return c == "" || strings.EqualFold(c, Auto)
}

// MaxBase is 7 in rooms at least 11ft wide with 15ft usable length, else 5.
func MaxBase(widthFt, usableLengthFt float64) int {
	if widthFt >= SevenBaseMinWidthFt && usableLengthFt >= SevenBaseMinLengthFt {
		return 7
	}

	return 5
}

// MaxHeight is the largest height layer the ceiling and length support.
func MaxHeight(ceilingFt, usableLengthFt float64) int {
	if !(ceilingFt >= AtmosMinCeilingFt) {
		return 0
	}

	h := 2
	if ceilingFt >= AtmosFourMinCeilingFt && usableLengthFt >= AtmosFourMinLengthFt {
		h = 4
	}
	if h == 4 && usableLengthFt < AtmosFourMinLengthFt {
		h = 2
	}
	if h == 2 && usableLengthFt < AtmosTwoMinLengthFt {
		h = 0
	}

	return h
}

// Resolve reconciles the layout choice with the room.
func Resolve(r Request) Config {
	c := Config{
		MaxBase:   MaxBase(r.Room.Width, r.UsableLengthFt),
		MaxHeight: MaxHeight(r.Room.Height, r.UsableLengthFt),
		Placement: r.Mount.Placement(),
	}
	limit := Layout{Base: c.MaxBase, Height: c.MaxHeight}

	switch {
	case IsAuto(r.Choice):
		c.Base, c.Height = core.Honored(limit.Base), core.Honored(limit.Height)
		c.Status = core.StatusValid
		c.Message = fmt.Sprintf("Auto layout %s selected for this room.", limit)

	default:
		req, err := ParseLayout(r.Choice)
		if err != nil {
			c.Base, c.Height = core.Honored(limit.Base), core.Honored(limit.Height)
			c.Status = core.StatusAdjusted
			c.Message = fmt.Sprintf("Unrecognized layout %q; using Auto layout %s.", r.Choice, limit)

			break
		}

		c.Manual = true
		c.Base = core.ClampDown(req.Base, limit.Base)
		c.Height = core.ClampDown(req.Height, limit.Height)
		// Only the ceiling restricts; a height layer lost to a short room
		// is an ordinary clamp.
		if req.Height > 0 && c.Height.Authoritative == 0 && !(r.Room.Height >= AtmosMinCeilingFt) {
			c.Height = c.Height.Restrict(0)
		}
		c.Status = core.Worst(c.Base.Status, c.Height.Status)
		final := Layout{Base: c.Base.Authoritative, Height: c.Height.Authoritative}

		switch c.Status {
		case core.StatusRestricted:
			c.Message = fmt.Sprintf("Ceiling does not support height speakers; %s reduced to %s.", req, final)
		case core.StatusAdjusted:
			if req.Height > 0 && final.Height == 0 {
				c.Message = fmt.Sprintf("Room length does not support height speakers; %s reduced to %s.", req, final)
				break
			}
			c.Message = fmt.Sprintf("%s exceeds what the room supports; reduced to %s.", req, final)
		default:
			c.Message = fmt.Sprintf("Manual layout %s fits the room.", final)
		}
	}

	c.Layout = Layout{Base: c.Base.Authoritative, Height: c.Height.Authoritative}.String()
	c.Choice = core.Resolution[string]{Requested: r.Choice, Authoritative: c.Layout, Status: c.Status}
	if IsAuto(r.Choice) {
		c.Choice.Requested = Auto
	}

	c.Subwoofers = subwoofers(r.Room, r.Subwoofers)
	c.SubwooferPlacement = subwooferPlacement(c.Subwoofers.Authoritative)
	c.AtmosElevationDeg = elevation(r.Room.Height, r.ViewingDistanceFt)
	c.AtmosInWindow = c.AtmosElevationDeg >= AtmosMinElevationDeg && c.AtmosElevationDeg <= AtmosMaxElevationDeg

	return c
}

// AutoSubwoofers sizes the subwoofer count from volume and shape.
func AutoSubwoofers(d core.Dimensions) int {
	var (
		n   = 1
		vol = d.Volume()
	)
	switch {
	case vol >= FourSubMinVolumeCuFt:
		n = 4
	case vol >= TwoSubMinVolumeCuFt:
		n = 2
	}
	// Square rooms stack axial modes; two subs smooth them.
	if d.Width > 0 {
		ratio := d.Length / d.Width
		if ratio > nearSquareLow && ratio < nearSquareHigh && n < 2 {
			n = 2
		}
	}
	if d.Width >= WideRoomFt && n == 1 {
		n = 2
	}

	return min(max(n, 1), MaxSubwoofers)
}

func subwoofers(d core.Dimensions, override int) core.Resolution[int] {
	if override > 0 {
		return core.ClampRange(override, 1, MaxSubwoofers)
	}

	return core.Honored(AutoSubwoofers(d))
}

func subwooferPlacement(n int) string {
	switch n {
	case 1:
		return "Front wall, offset from corner"
	case 2:
		return "Front wall midpoints or diagonal corners"
	case 3:
		return "Front wall corners plus rear wall midpoint"
	default:
		return "Four corners or mid-wall symmetric"
	}
}

// elevation is the angle from seated ear height to the ceiling above the
// screen-to-seat distance. Zero when either leg is missing.
func elevation(ceilingFt, distFt float64) float64 {
	rise := ceilingFt - EarHeightFt
	if !(rise > 0) || !(distFt > 0) {
		return 0
	}

	return core.Round1(core.Deg(math.Atan(rise / distFt)))
}
