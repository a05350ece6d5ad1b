// Package seating - row layout resolver.
//
// Contracts:
//   - Final rows ∈ [1,6]; final riser ∈ [5,12] when rows > 1, else 0.
//   - Seats per row ≥ 1 and never above what fits the usable width.
//   - Positions are rear-anchored, ordered front to back and never in front
//     of the usable box; rows that do not fit stack at its front edge.
//   - Every row behind the front row sits on the same riser platform.
//
// Complexity: O(rows).
package seating

import (
	"math"

	"github.com/katalvlaran/cinemath/core"
)

// Resolve lays out the seating.
func Resolve(r Request) Layout {
	var l Layout

	l.Rows, l.RiserIn = rowsAndRiser(r.Room.Height, r.Rows, r.RiserIn)
	if l.Rows.Status == core.StatusRestricted {
		l.Notes = append(l.Notes, "Ceiling height cannot accommodate a riser; seating reduced to one row.")
	}

	l.MaxSeatsPerRow = MaxSeats(r.Usable.Width, r.Aisle)
	if r.SeatsPerRow > 0 {
		l.SeatsPerRow = core.ClampRange(r.SeatsPerRow, 1, l.MaxSeatsPerRow)
	} else {
		l.SeatsPerRow = core.Honored(l.MaxSeatsPerRow)
	}

	l.RiserDepthIn = RiserDepthIn
	if r.Usable.Length > DeepRiserRoomFt {
		l.RiserDepthIn = DeepRiserDepthIn
	}

	l.SpacingFt, l.Positions = positions(r, l.Rows.Authoritative, l.RiserIn.Authoritative, l.SeatsPerRow.Authoritative)
	if len(l.Positions) > 0 && l.Positions[0].Y < r.Usable.Y+FrontClearanceFt-overPackEpsilon {
		l.OverPacked = true
		l.Notes = append(l.Notes, "Rows do not fit the usable length; front rows are held at the front of the room.")
	}

	l.Row2 = sightline(r, l.Rows.Authoritative, l.RiserIn.Authoritative)

	return l
}

// rowsAndRiser clamps the row count, collapses to one row when the ceiling
// cannot take a riser, and derives the riser from the final count.
func rowsAndRiser(ceilingFt float64, rows int, riserIn float64) (core.Resolution[int], core.Resolution[float64]) {
	rr := core.ClampRange(rows, MinRows, MaxRows)
	if !core.Finite(riserIn) {
		riserIn = 0
	}

	if rr.Authoritative > 1 {
		riser := core.Clamp(riserIn, RiserMinIn, RiserMaxIn)
		headroom := ceilingFt - (SeatHeightIn+riser)/12
		if !(headroom >= MinHeadroomFt) || !(ceilingFt >= RiserMinCeilingFt) {
			rr = rr.Restrict(MinRows)
		}
	}

	if rr.Authoritative > 1 {
		return rr, core.ClampRange(riserIn, RiserMinIn, RiserMaxIn)
	}

	riser := core.Resolution[float64]{Requested: riserIn, Authoritative: 0, Status: core.StatusValid}
	if riserIn != 0 {
		riser.Status = core.StatusAdjusted
	}

	return rr, riser
}

// MaxSeats is how many seats fit across the usable width after the aisle
// and the side gaps; never less than 1.
func MaxSeats(usableWidthFt float64, a core.Aisle) int {
	avail := (usableWidthFt-a.DeductionFt())*12 - 2*SideGapIn
	n := int(math.Floor(avail / SeatWidthIn))

	return max(n, 1)
}

// positions anchors the back row against the rear clearance and spaces the
// others forward at equal intervals. No row is placed ahead of the usable
// box front edge.
func positions(r Request, rows int, riserIn float64, seats int) (float64, []Row) {
	var (
		depthFt = SeatDepthIn / 12
		spacing float64
		out     = make([]Row, rows)
		back    = r.Usable.Bottom() - RearClearanceFt - depthFt
	)
	if rows > 1 {
		spacing = core.NonNegative((r.Usable.Length - FrontClearanceFt - RearClearanceFt - depthFt*float64(rows)) / float64(rows-1))
	}

	for i := 0; i < rows; i++ {
		idx := rows - 1 - i
		out[idx] = Row{
			Index: idx + 1,
			Y:     math.Max(back-float64(i)*(depthFt+spacing), r.Usable.Y),
			Seats: seats,
		}
		if idx > 0 {
			out[idx].RiserIn = riserIn
		}
	}

	return spacing, out
}

// sightline interpolates the rear-row sightline at the front-row head:
// rear eye → screen bottom over (seat depth / distance to screen).
func sightline(r Request, rows int, riserIn float64) Sightline {
	if rows < 2 {
		return Sightline{Status: Row2NotApplicable, Message: MsgRow2NotApplicable}
	}

	var (
		depthFt = SeatDepthIn / 12
		distFt  = r.ViewingDistanceFt + depthFt
		rearEye = EyeHeightIn + riserIn
		s       Sightline
	)
	s.SightlineIn = rearEye - (rearEye-r.ScreenBottomIn)*(depthFt/distFt)
	s.AngleDeg = math.Abs(core.Deg(math.Atan((r.ScreenCenterIn - rearEye) / (distFt * 12))))

	switch {
	case !(s.SightlineIn >= FrontHeadIn):
		s.Status, s.Message = Row2Blocked, MsgRow2Blocked
	case s.AngleDeg > RearComfortDeg:
		s.Status, s.Message = Row2Compromised, MsgRow2Compromised
	default:
		s.Status, s.Message = Row2Clear, MsgRow2Clear
	}

	return s
}
