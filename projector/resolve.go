// Package projector - throw and lens shift feasibility.
//
// Contracts:
//   - Hard failures (throw does not fit, a shift is Not Possible) always
//     produce NotFeasible, whatever soft failures are also present.
//   - Soft failures (a shift at Warning, mount infeasible) produce Compromised.
//   - Reasons lists every failure found, hard ones first.
//
// Complexity: O(1).
package projector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cinemath/core"
)

// LensHeightIn returns the lens height above the floor for a ceiling mount.
func LensHeightIn(ceilingFt float64) float64 {
	return core.NonNegative(ceilingFt*12 - LensDropIn)
}

// ThrowFt returns the throw distance needed for an image widthIn wide.
func ThrowFt(widthIn float64) float64 {
	return widthIn / 12 * ThrowRatio
}

// VerticalShiftPct returns |lens - center| as a percentage of the image
// height. A zero height yields +Inf, which grades as Not Possible.
func VerticalShiftPct(lensIn, centerIn, heightIn float64) float64 {
	if heightIn <= 0 {
		return math.Inf(1)
	}

	return math.Abs(lensIn-centerIn) / heightIn * 100
}

// HorizontalShiftPct returns |offset| as a percentage of the image width.
func HorizontalShiftPct(offsetIn, widthIn float64) float64 {
	if offsetIn == 0 {
		return 0
	}
	if widthIn <= 0 {
		return math.Inf(1)
	}

	return math.Abs(offsetIn) / widthIn * 100
}

// ClassifyVertical grades a vertical shift: <=60 OK, <=70 Warning.
func ClassifyVertical(pct float64) ShiftStatus {
	return classify(pct, VerticalOKPct, VerticalWarnPct)
}

// ClassifyHorizontal grades a horizontal shift: <=30 OK, <=35 Warning.
func ClassifyHorizontal(pct float64) ShiftStatus {
	return classify(pct, HorizontalOKPct, HorizontalWarnPct)
}

func classify(pct, ok, warn float64) ShiftStatus {
	switch {
	case pct <= ok:
		return ShiftOK
	case pct <= warn:
		return ShiftWarning
	default:
		return ShiftNotPossible
	}
}

// Resolve evaluates the projector against the final screen geometry.
func Resolve(r Request) Feasibility {
	var (
		f     Feasibility
		hard  []string
		soft  []string
		vPct  = VerticalShiftPct(LensHeightIn(r.CeilingFt), r.ScreenCenterIn, r.ScreenHeightIn)
		hPct  = HorizontalShiftPct(r.OffsetIn, r.ScreenWidthIn)
		throw = ThrowFt(r.ScreenWidthIn)
	)

	f.ThrowFt = core.Round2(throw)
	f.ThrowFits = throw <= r.EquipmentLengthFt
	f.LensHeightIn = LensHeightIn(r.CeilingFt)
	f.VerticalStatus = ClassifyVertical(vPct)
	f.HorizontalStatus = ClassifyHorizontal(hPct)
	f.LensShift = LensShift{V: reportPct(vPct), H: reportPct(hPct)}
	f.MountFeasible = r.CeilingFt >= MinMountCeilingFt &&
		f.VerticalStatus == ShiftOK &&
		f.HorizontalStatus == ShiftOK

	if !f.ThrowFits {
		hard = append(hard, fmt.Sprintf("Required throw %.1fft exceeds the available %.1fft.", throw, r.EquipmentLengthFt))
	}
	if f.VerticalStatus == ShiftNotPossible {
		hard = append(hard, "Vertical lens shift exceeds projector limits.")
	}
	if f.HorizontalStatus == ShiftNotPossible {
		hard = append(hard, "Horizontal lens shift exceeds projector limits.")
	}
	if f.VerticalStatus == ShiftWarning {
		soft = append(soft, "Vertical lens shift is near the projector limit.")
	}
	if f.HorizontalStatus == ShiftWarning {
		soft = append(soft, "Horizontal lens shift is near the projector limit.")
	}
	if !f.MountFeasible {
		soft = append(soft, "Ceiling mount is not feasible for this room.")
	}

	switch {
	case len(hard) > 0:
		f.Verdict = NotFeasible
	case len(soft) > 0:
		f.Verdict = Compromised
	default:
		f.Verdict = Recommended
	}
	f.Reasons = append(hard, soft...)

	return f
}

// reportPct keeps JSON encodable: +Inf is reported as the sentinel 999.
func reportPct(p float64) float64 {
	if math.IsInf(p, 1) {
		return 999
	}

	return core.Round1(p)
}
