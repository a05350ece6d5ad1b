// Package room - geometry reduction.
//
// Reduce subtracts the fixed ceiling build-up, the wall treatment depths and
// the front speaker obstruction from the raw room.
//
// Contracts:
//   - Never fails: every usable dimension is floored at 0.
//   - Depth inputs are sanitized (negative/NaN → 0) before use.
//   - Volume loss is reported to one decimal place.
//
// Complexity: O(1).
package room

import (
	"fmt"

	"github.com/katalvlaran/cinemath/core"
)

// Reduce computes the usable room.
func Reduce(d core.Dimensions, t core.Treatment, mount core.MountType) Usable {
	var (
		depths = t.Sanitized()
		obsIn  = mount.FrontObstructionIn()
		u      Usable
	)

	u.FrontObstructionIn = obsIn
	u.X = depths.Left / 12
	u.Y = (depths.Front + obsIn) / 12
	u.Width = core.NonNegative(d.Width - (depths.Left+depths.Right)/12)
	u.Length = core.NonNegative(d.Length - (depths.Front+depths.Back+obsIn)/12)
	u.Height = core.NonNegative(d.Height - core.CeilingDepthIn/12)
	u.EquipmentLength = core.NonNegative(d.Length - (depths.Front+depths.Back)/12 - EquipmentZoneFt)

	u.RawVolume = core.NonNegative(d.Length) * core.NonNegative(d.Width) * core.NonNegative(d.Height)
	u.Volume = u.Width * u.Length * u.Height
	if u.RawVolume > 0 {
		u.VolumeLossPct = core.Round1((u.RawVolume - u.Volume) / u.RawVolume * 100)
	}
	u.LossClass = classifyLoss(u.VolumeLossPct)

	u.Advisories = advisories(depths, u)
	u.Severity = worst(u.Advisories)

	return u
}

func classifyLoss(pct float64) LossClass {
	switch {
	case pct < 5:
		return LossMinimal
	case pct <= 12:
		return LossModerate
	default:
		return LossSignificant
	}
}

func advisories(t core.Treatment, u Usable) []Advisory {
	out := make([]Advisory, 0, 5)
	if side := t.Left + t.Right; side >= SideDepthLimitIn {
		out = append(out, Advisory{
			Title:    ExcessiveSideDepth,
			Detail:   fmt.Sprintf("Side treatment totals %.0fin and narrows the seating area.", side),
			Severity: SeverityCaution,
		})
	}
	if t.Front >= FrontDepthLimitIn {
		out = append(out, Advisory{
			Title:    ExcessiveFrontDepth,
			Detail:   fmt.Sprintf("Front treatment of %.0fin pushes the screen plane into the room.", t.Front),
			Severity: SeverityCaution,
		})
	}
	if t.Back >= RearDepthLimitIn {
		out = append(out, Advisory{
			Title:    ExcessiveRearDepth,
			Detail:   fmt.Sprintf("Rear treatment of %.0fin shortens the seating depth.", t.Back),
			Severity: SeverityCaution,
		})
	}
	if u.Width < MinUsableWidthFt {
		out = append(out, Advisory{
			Title:    OverConstrainedW,
			Detail:   fmt.Sprintf("Usable width %.1fft is below the %.0fft minimum.", u.Width, MinUsableWidthFt),
			Severity: SeverityCritical,
		})
	}
	if u.Length < MinUsableLengthFt {
		out = append(out, Advisory{
			Title:    OverConstrainedL,
			Detail:   fmt.Sprintf("Usable length %.1fft is below the %.0fft minimum.", u.Length, MinUsableLengthFt),
			Severity: SeverityCritical,
		})
	}

	return out
}

func worst(as []Advisory) Severity {
	sev := SeveritySafe
	for _, a := range as {
		if a.Severity == SeverityCritical {
			return SeverityCritical
		}
		sev = SeverityCaution
	}

	return sev
}
