// Package screen - screen sizing and placement resolver.
//
// Resolve derives the ideal image from the room width, shrinks it with a
// bounded diagonal correction, reconciles a manual diagonal against the
// corrected one, and then searches the image bottom height for a
// comfortable, projectable placement.
//
// Contracts:
//   - Both loops are capped (opts.DiagonalIterations, opts.PositionIterations).
//   - A manual diagonal never exceeds the corrected automatic diagonal.
//   - The final bottom height always lies in [BottomMinIn, BottomMaxIn].
//   - A top edge above ceiling − 2ft is flagged (StatusConflict), never fixed.
//
// Complexity: O(DiagonalIterations + PositionIterations).
package screen

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/search"
)

// ErrBadIterations indicates a non-positive loop cap.
var ErrBadIterations = errors.New("screen: iteration caps must be > 0")

// ViewingDistanceFt returns the distance at which an image widthFt wide
// fills the standard's horizontal angle.
func ViewingDistanceFt(widthFt float64, s core.ViewingStandard) float64 {
	return widthFt / (2 * math.Tan(core.Rad(s.AngleDeg())/2))
}

// Dimensions splits a diagonal into image width and height (inches).
func Dimensions(diagonalIn float64, a core.Aspect) (widthIn, heightIn float64) {
	ratio := a.Ratio()
	heightIn = diagonalIn / math.Sqrt(1+ratio*ratio)

	return heightIn * ratio, heightIn
}

// VerticalAngleDeg is the absolute angle from seated eye height to a point
// centerIn above the floor, viewed from distanceFt away. A non-positive
// distance is treated as looking straight up.
func VerticalAngleDeg(centerIn, distanceFt float64) float64 {
	if distanceFt <= 0 {
		return 90
	}

	return math.Abs(core.Deg(math.Atan((centerIn - EyeHeightIn) / (distanceFt * 12))))
}

// Resolve sizes and places the screen.
func Resolve(r Request, opts Options) (Geometry, error) {
	if opts.DiagonalIterations <= 0 || opts.PositionIterations <= 0 {
		return Geometry{}, ErrBadIterations
	}

	var (
		g       Geometry
		idealFt = core.NonNegative(r.Room.Width) * WidthRatio
		ratio   = r.Aspect.Ratio()
	)
	g.ViewingDistanceFt = ViewingDistanceFt(idealFt, r.Standard)
	g.LensHeightIn = projector.LensHeightIn(r.Room.Height)
	g.IdealDiagonalIn = math.Hypot(idealFt*12, idealFt*12/ratio)
	g.Solid = r.Mount.Placement() == core.BesideScreen

	// --- Stage 1: diagonal correction.
	all, hard := diagonalGates(r, g.ViewingDistanceFt, g.LensHeightIn)
	corrected, loop, err := correctDiagonal(g.IdealDiagonalIn, all, hard, opts.DiagonalIterations)
	if err != nil {
		return Geometry{}, fmt.Errorf("screen: diagonal correction: %w", err)
	}
	g.CorrectedDiagonalIn = corrected
	g.DiagonalLoop = loop

	// --- Stage 2: manual diagonal authority.
	if r.DiagonalIn > 0 && core.Finite(r.DiagonalIn) {
		g.Diagonal = core.ClampDown(r.DiagonalIn, corrected)
		if g.Diagonal.Changed() {
			g.Notes = append(g.Notes, fmt.Sprintf("Requested %.0fin screen reduced to %.1fin to fit the room.", r.DiagonalIn, corrected))
		}
	} else {
		g.Diagonal = core.Resolution[float64]{Requested: g.IdealDiagonalIn, Authoritative: corrected, Status: core.StatusValid}
		if corrected < g.IdealDiagonalIn {
			g.Diagonal.Status = core.StatusAdjusted
		}
	}
	g.DiagonalIn = g.Diagonal.Authoritative
	g.WidthIn, g.HeightIn = Dimensions(g.DiagonalIn, r.Aspect)
	g.WidthFt, g.HeightFt = g.WidthIn/12, g.HeightIn/12

	// --- Stage 3: vertical placement.
	bottom, ploop, err := placeBottom(g.HeightIn, g.ViewingDistanceFt, g.LensHeightIn, opts.PositionIterations)
	if err != nil {
		return Geometry{}, fmt.Errorf("screen: position search: %w", err)
	}
	g.PositionLoop = ploop
	g.Bottom = core.Resolution[float64]{Requested: DefaultBottomIn, Authoritative: bottom, Status: core.StatusValid}
	if bottom != DefaultBottomIn {
		g.Bottom.Status = core.StatusAdjusted
	}
	g.BottomIn = bottom
	g.CenterIn = bottom + g.HeightIn/2
	g.TopIn = bottom + g.HeightIn
	if g.Solid {
		g.Notes = append(g.Notes, "On-wall speakers require a solid screen; the center channel sits below the image.")
	}

	// --- Stage 4: consistency and grading.
	g.Status = core.Worst(g.Diagonal.Status, g.Bottom.Status)
	conflict := g.TopIn > (r.Room.Height-CeilingMarginFt)*12
	if conflict {
		g.Status = core.StatusConflict
		g.Notes = append(g.Notes, "Screen top exceeds the safe ceiling limit.")
	}

	g.VerticalAngleDeg = VerticalAngleDeg(g.CenterIn, g.ViewingDistanceFt)
	g.Comfort = comfortFor(g.VerticalAngleDeg)
	g.Ergonomics = ergonomicsFor(g.BottomIn)
	g.FitsRoom = g.WidthFt <= r.Room.Width-2*SideClearanceFt &&
		g.HeightFt <= r.Room.Height-TopClearanceFt-BottomClearanceFt

	g.Risk = RiskOK
	if (r.Usable.Length > 0 && g.ViewingDistanceFt > r.Usable.Length) || conflict {
		g.Risk = RiskWarning
	}
	if g.WidthFt > r.Room.Width*CriticalWidthRatio {
		g.Risk = RiskCritical
	}

	g.NearestStandardIn = nearestStandard(g.DiagonalIn)
	for _, s := range StandardSizesIn {
		if s <= g.DiagonalIn {
			g.AllowedSizesIn = append(g.AllowedSizesIn, s)
		}
	}

	return g, nil
}

// diagonalGates returns every gate and the hard (physical) subset. The
// angle and lens shift gates are evaluated at the default bottom height.
// Throw sits beside the four geometric gates: a diagonal the projector
// cannot fill from the equipment zone is never a candidate, even as the
// non-converged fallback in correctDiagonal.
func diagonalGates(r Request, distFt, lensIn float64) (all, hard []search.Constraint) {
	var (
		maxHeightIn = (r.Room.Height - TopClearanceFt - BottomClearanceFt) * 12
		throwFt     = r.Usable.EquipmentLength
	)
	height := func(d float64) float64 {
		_, h := Dimensions(d, r.Aspect)
		return h
	}

	ceiling := search.Constraint{Name: GateCeiling, Check: func(d float64) bool {
		return height(d) <= maxHeightIn
	}}
	clearance := search.Constraint{Name: GateClearance, Check: func(float64) bool {
		return DefaultBottomIn >= MinBottomIn
	}}
	angle := search.Constraint{Name: GateAngle, Check: func(d float64) bool {
		return VerticalAngleDeg(DefaultBottomIn+height(d)/2, distFt) <= MaxCorrectionAngleDeg
	}}
	shift := search.Constraint{Name: GateLensShift, Check: func(d float64) bool {
		h := height(d)
		return projector.VerticalShiftPct(lensIn, DefaultBottomIn+h/2, h) <= projector.VerticalOKPct
	}}
	throw := search.Constraint{Name: GateThrow, Check: func(d float64) bool {
		w, _ := Dimensions(d, r.Aspect)
		return projector.ThrowFt(w) <= throwFt
	}}

	return []search.Constraint{ceiling, clearance, angle, shift, throw},
		[]search.Constraint{ceiling, clearance, throw}
}

// correctDiagonal shrinks the ideal diagonal until every gate passes. When
// the walk does not converge the largest visited diagonal that passes the
// hard gates is kept; failing that, the value the walk ended on.
func correctDiagonal(ideal float64, all, hard []search.Constraint, maxIter int) (float64, Loop, error) {
	opts := search.DefaultOptions()
	opts.Step = DiagonalStepIn
	opts.Lower = MinDiagonalIn
	opts.MaxIterations = maxIter

	res, err := search.Search(ideal, search.Gates(all...), opts)
	if err != nil {
		return 0, Loop{}, err
	}

	loop := Loop{Converged: res.Converged, Iterations: res.Iterations}
	if res.Converged {
		return res.Value, loop, nil
	}

	value := res.Value
	if v, ok := res.First(func(d float64) bool { return search.All(d, hard...) }); ok {
		value = v
	}
	loop.Failing = search.Failing(value, all...)

	return value, loop, nil
}

// placeBottom searches the bottom height in [18,32]in. Priorities: a steep
// angle lowers the image, missing clearance raises it, excess lens shift
// moves the image center toward the lens.
func placeBottom(heightIn, distFt, lensIn float64, maxIter int) (float64, Loop, error) {
	targets := []search.Constraint{
		{Name: GateAngle, Check: func(b float64) bool {
			return VerticalAngleDeg(b+heightIn/2, distFt) <= ComfortAngleDeg
		}},
		{Name: GateClearance, Check: func(b float64) bool { return b >= MinBottomIn }},
		{Name: GateLensShift, Check: func(b float64) bool {
			return projector.VerticalShiftPct(lensIn, b+heightIn/2, heightIn) <= projector.VerticalOKPct
		}},
	}

	rule := func(b float64) search.Move {
		switch {
		case !targets[0].Check(b):
			return search.Lower
		case !targets[1].Check(b):
			return search.Raise
		case !targets[2].Check(b):
			if lensIn > b+heightIn/2 {
				return search.Raise
			}
			return search.Lower
		}

		return search.Hold
	}

	opts := search.Options{
		Step:          BottomStepIn,
		MaxIterations: maxIter,
		Lower:         BottomMinIn,
		Upper:         BottomMaxIn,
		Clamp:         true,
	}
	res, err := search.Search(DefaultBottomIn, rule, opts)
	if err != nil {
		return 0, Loop{}, err
	}

	loop := Loop{Converged: res.Converged, Iterations: res.Iterations}
	if !res.Converged {
		loop.Failing = search.Failing(res.Value, targets...)
	}

	return res.Value, loop, nil
}

func comfortFor(deg float64) Comfort {
	switch {
	case deg <= ComfortAngleDeg:
		return Comfortable
	case deg <= MaxCorrectionAngleDeg:
		return SlightlyHigh
	default:
		return TooHighAngle
	}
}

func ergonomicsFor(bottomIn float64) Ergonomics {
	switch {
	case bottomIn < MinBottomIn:
		return BottomTooLow
	case bottomIn < BottomMinIn:
		return BottomAcceptable
	case bottomIn <= IdealBottomMaxIn:
		return BottomIdeal
	default:
		return BottomTooHigh
	}
}

// nearestStandard picks the closest standard size; ties keep the smaller.
func nearestStandard(d float64) float64 {
	best := StandardSizesIn[0]
	for _, s := range StandardSizesIn[1:] {
		if math.Abs(s-d) < math.Abs(best-d) {
			best = s
		}
	}

	return best
}
