// Package engine - Room Design Resolution Engine.
//
// Contracts:
//   - Resolve is pure: identical Inputs yield identical summaries.
//   - Resolve never returns an error and never panics; invalid input
//     produces a Locked summary, infeasibility produces domain verdicts.
//   - Stages run in a fixed order and each reads only earlier outputs.
//
// Complexity: O(1) per call; the two correction loops are capped.
package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/projector"
	"github.com/katalvlaran/cinemath/room"
	"github.com/katalvlaran/cinemath/screen"
	"github.com/katalvlaran/cinemath/seating"
	"github.com/katalvlaran/cinemath/speaker"
	"github.com/katalvlaran/cinemath/verdict"
)

// MsgLocked explains a locked summary.
const MsgLocked = "Enter valid room dimensions to evaluate the design."

// Resolve runs the full pipeline over in.
func Resolve(in Inputs, opts ...Option) DesignSummary {
	cfg := newConfig(opts...)
	log := cfg.logger

	in, err := normalize(in)
	if err != nil {
		log.Warn("unknown input names replaced by defaults", zap.Error(err))
	}
	in, err = finite(in)
	if err != nil {
		log.Warn("non-finite inputs replaced by zero", zap.Error(err))
	}
	if !in.Room.Valid() {
		log.Debug("room dimensions invalid; summary locked",
			zap.Float64("lengthFt", in.Room.Length),
			zap.Float64("widthFt", in.Room.Width),
			zap.Float64("heightFt", in.Room.Height))
		return locked(in)
	}

	// --- Stage 1: geometry reduction.
	u := room.Reduce(in.Room, in.Treatment, in.Mount)
	log.Debug("usable room",
		zap.Float64("widthFt", u.Width),
		zap.Float64("lengthFt", u.Length),
		zap.Float64("heightFt", u.Height),
		zap.Float64("volumeLossPct", u.VolumeLossPct),
		zap.String("severity", string(u.Severity)))

	// --- Stage 2: screen and viewing.
	g, err := screen.Resolve(screen.Request{
		Room:       in.Room,
		Usable:     u,
		Aspect:     in.Aspect,
		Standard:   in.Standard,
		DiagonalIn: in.DiagonalIn,
		Mount:      in.Mount,
	}, cfg.screen)
	if err != nil {
		// Options are validated by their constructors; this is unreachable
		// unless a stage invariant is broken.
		log.Error("screen resolution failed; summary locked", zap.Error(err))
		return locked(in)
	}
	log.Debug("screen",
		zap.Float64("idealDiagonalIn", g.IdealDiagonalIn),
		zap.Float64("correctedDiagonalIn", g.CorrectedDiagonalIn),
		zap.Bool("diagonalConverged", g.DiagonalLoop.Converged),
		zap.Int("diagonalIterations", g.DiagonalLoop.Iterations),
		zap.Strings("failingGates", g.DiagonalLoop.Failing),
		zap.Float64("bottomIn", g.BottomIn),
		zap.Bool("positionConverged", g.PositionLoop.Converged),
		zap.String("status", string(g.Status)),
		zap.String("risk", string(g.Risk)))

	// --- Stage 3: projector feasibility.
	p := projector.Resolve(projector.Request{
		CeilingFt:         in.Room.Height,
		EquipmentLengthFt: u.EquipmentLength,
		ScreenWidthIn:     g.WidthIn,
		ScreenHeightIn:    g.HeightIn,
		ScreenCenterIn:    g.CenterIn,
		OffsetIn:          in.ProjectorOffsetIn,
	})
	log.Debug("projector",
		zap.String("verdict", string(p.Verdict)),
		zap.Float64("throwFt", p.ThrowFt),
		zap.Float64("shiftV", p.LensShift.V),
		zap.Float64("shiftH", p.LensShift.H),
		zap.Bool("mountFeasible", p.MountFeasible))

	// --- Stage 4: speaker authority.
	sp := speaker.Resolve(speaker.Request{
		Room:              in.Room,
		UsableLengthFt:    u.Length,
		Mount:             in.Mount,
		Choice:            in.Layout,
		Subwoofers:        in.Subwoofers,
		ViewingDistanceFt: g.ViewingDistanceFt,
	})
	log.Debug("speakers",
		zap.String("layout", sp.Layout),
		zap.String("status", string(sp.Status)),
		zap.Int("subwoofers", sp.Subwoofers.Authoritative))

	// --- Stage 5: seating.
	st := seating.Resolve(seating.Request{
		Room:              in.Room,
		Usable:            u.Box,
		Rows:              in.Rows,
		RiserIn:           in.RiserIn,
		SeatsPerRow:       in.SeatsPerRow,
		Aisle:             in.Aisle,
		ScreenBottomIn:    g.BottomIn,
		ScreenCenterIn:    g.CenterIn,
		ViewingDistanceFt: g.ViewingDistanceFt,
	})
	log.Debug("seating",
		zap.Int("rows", st.Rows.Authoritative),
		zap.Float64("riserIn", st.RiserIn.Authoritative),
		zap.Int("seatsPerRow", st.SeatsPerRow.Authoritative),
		zap.String("row2", string(st.Row2.Status)))

	// --- Stage 6: acoustics.
	var frontRowFt float64
	if len(st.Positions) > 0 {
		frontRowFt = st.Positions[0].Y
	}
	a := acoustic.Evaluate(acoustic.Request{
		Room:              in.Room,
		Treatment:         in.Treatment,
		ViewingDistanceFt: g.ViewingDistanceFt,
		HeightSpeakers:    sp.Height.Authoritative,
		FrontRowFt:        frontRowFt,
		Mode:              in.AcousticMode,
		RearWall:          in.RearWall,
		BassTraps:         in.BassTraps,
	})
	log.Debug("acoustics",
		zap.Int("score", a.Score),
		zap.String("grade", string(a.Grade)),
		zap.Int("riskScore", a.RiskScore),
		zap.String("riskLevel", string(a.RiskLevel)))

	// --- Stage 7: master verdict.
	m := verdict.Aggregate(verdict.Request{
		Projector:      p.Verdict,
		Row2:           st.Row2.Status,
		ScreenRisk:     g.Risk,
		ScreenFits:     g.FitsRoom,
		AcousticRisk:   a.RiskLevel,
		RearWall:       a.Plan.RearWall,
		Rows:           st.Rows.Authoritative,
		ManualSpeakers: sp.Manual,
		HeightLayer:    sp.Height.Authoritative,
		Subwoofers:     sp.Subwoofers.Authoritative,
		CeilingFt:      in.Room.Height,
		VolumeCuFt:     in.Room.Volume(),
	})
	log.Debug("master verdict",
		zap.String("verdict", string(m.Verdict)),
		zap.Int("confidence", m.ConfidenceScore),
		zap.Int("upgradeSteps", len(m.UpgradeSteps)))

	return DesignSummary{
		Inputs:     in,
		UsableRoom: u,
		Screen: Screen{
			DiagonalIn: core.Round1(g.DiagonalIn),
			WidthFt:    core.Round2(g.WidthFt),
			HeightFt:   core.Round2(g.HeightFt),
			BottomIn:   core.Round1(g.BottomIn),
			Detail:     g,
		},
		Projector: p,
		Speakers:  sp,
		Seating: Seating{
			Rows:        st.Rows.Authoritative,
			RiserIn:     st.RiserIn.Authoritative,
			SeatsPerRow: st.SeatsPerRow.Authoritative,
			Row2:        st.Row2,
			Detail:      st,
		},
		Acoustic: a,
		Master:   m,
	}
}

// locked builds the degraded summary for invalid room dimensions: every
// dependent input reverts to its default and every stage reports its
// documented default.
func locked(in Inputs) DesignSummary {
	in.Treatment = core.DefaultTreatment()
	in.Layout = speaker.Auto
	in.Subwoofers = 0
	in.DiagonalIn = 0
	in.Rows = 1
	in.RiserIn = 0
	in.SeatsPerRow = 0
	in.AcousticMode = core.ModeMedium
	in.RearWall, in.BassTraps = "", ""

	return DesignSummary{
		Locked: true,
		Inputs: in,
		Speakers: speaker.Config{
			Layout:    speaker.Auto,
			Status:    core.StatusValid,
			Message:   MsgLocked,
			Choice:    core.Honored(speaker.Auto),
			Placement: in.Mount.Placement(),
		},
		Seating: Seating{
			Rows: 1,
			Row2: seating.Sightline{Status: seating.Row2NotApplicable, Message: seating.MsgRow2NotApplicable},
			Detail: seating.Layout{
				Rows:    core.Honored(1),
				RiserIn: core.Honored(0.0),
			},
		},
		Acoustic: acoustic.Assessment{
			Mode:            core.ModeMedium,
			RecommendedMode: core.ModeMedium,
		},
		Master: verdict.Master{
			Verdict:         verdict.NotEvaluated,
			ConfidenceLabel: verdict.Low,
			UpgradeSteps:    []verdict.Step{},
			NextSteps:       MsgLocked,
		},
	}
}
