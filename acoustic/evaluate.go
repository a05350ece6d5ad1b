// Package acoustic - treatment plan, grade and risk scoring.
//
// Contracts:
//   - Score ∈ [0,100]; RiskScore ≥ 0.
//   - Recommendations are never empty: per-flag items (or the balanced
//     note), then the tier list, then the mode advisory if any.
//
// Complexity: O(1).
package acoustic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cinemath/core"
)

// Evaluate scores the room.
func Evaluate(r Request) Assessment {
	var (
		a   Assessment
		vol = r.Room.Volume()
	)

	a.Plan = BuildPlan(r)
	a.Score, a.Warnings = score(r, a.Plan)
	a.Grade = gradeFor(a.Score)
	a.Title, a.Explanation = explain(a.Grade)

	a.RiskScore = RiskScore(r.Room, r.ViewingDistanceFt)
	a.RiskLevel = levelFor(a.RiskScore)
	a.Flags = flags(r, a.Plan)

	a.Mode = r.Mode
	if a.Mode == "" {
		a.Mode = core.ModeMedium
	}
	a.RecommendedMode = RecommendedMode(vol)

	a.Recommendations = recommendations(a)

	return a
}

// BuildPlan derives the treatment plan from geometry, honoring overrides.
func BuildPlan(r Request) Plan {
	var (
		p   Plan
		t   = r.Treatment.Sanitized()
		vol = r.Room.Volume()
	)

	switch {
	case r.RearWall != "":
		p.RearWall = r.RearWall
	case t.Back == 0:
		p.RearWall = Untreated
	case r.Room.Length < ShortRoomFt:
		p.RearWall = Absorber
	case r.Room.Length <= LongRoomFt:
		p.RearWall = Hybrid
	default:
		p.RearWall = Diffuser
	}
	p.RearPanelDepthIn = panelDepth(p.RearWall)

	p.SideWalls = r.Room.Width >= SideMinWidthFt && (t.Left > 0 || t.Right > 0)
	p.SideWallType = Untreated
	if p.SideWalls {
		switch {
		case r.ViewingDistanceFt < SideAbsorberDistFt:
			p.SideWallType = Absorber
		case r.ViewingDistanceFt <= SideHybridDistFt:
			p.SideWallType = Hybrid
		default:
			p.SideWallType = Diffuser
		}
	}

	p.Ceiling = r.HeightSpeakers > 0 || r.Room.Length > CeilingRoomFt
	p.CeilingCloud = r.Room.Height >= CloudMinCeilingFt && r.FrontRowFt > CloudMinRowDistFt
	p.RearDiffusionAllowed = r.Room.Length-r.ViewingDistanceFt >= MinDiffusionFt

	switch {
	case r.BassTraps != "":
		p.BassTraps = r.BassTraps
	case vol < AllTrapsVolume:
		p.BassTraps = TrapsAll
	case vol <= RearTrapsVolume:
		p.BassTraps = TrapsRearOnly
	default:
		p.BassTraps = TrapsNone
	}
	if p.BassTraps != TrapsNone {
		p.BassTrapDepthIn = math.Max(math.Max(math.Max(t.Front, t.Back), math.Max(t.Left, t.Right)), MinTrapDepthIn)
	}

	return p
}

func panelDepth(s Surface) float64 {
	switch s {
	case Absorber:
		return 4
	case Hybrid:
		return 6
	case Diffuser:
		return 8
	default:
		return 0
	}
}

func score(r Request, p Plan) (int, []string) {
	var (
		s    = 100
		warn []string
	)
	if p.RearWall == Untreated {
		s -= 20
		warn = append(warn, "Rear wall has no acoustic treatment")
	}
	if p.RearWall == Absorber && r.Room.Length > OverAbsorbRoomFt {
		s -= 10
		warn = append(warn, "Rear wall may be over-absorbed for a long room")
	}
	if p.RearWall == Diffuser && !p.RearDiffusionAllowed {
		s -= 15
		warn = append(warn, "Rear diffuser placed too close to seating")
	}
	if !p.SideWalls {
		s -= 10
		warn = append(warn, "Side wall first reflection points untreated")
	}
	if !p.CeilingCloud && !p.Ceiling {
		s -= 10
		warn = append(warn, "Ceiling reflection zone untreated")
	}
	switch p.BassTraps {
	case TrapsNone:
		s -= 20
		warn = append(warn, "No bass traps; low-frequency control will suffer")
	case TrapsRearOnly:
		s -= 8
		warn = append(warn, "Bass traps only on rear wall; front corners untreated")
	}

	return min(max(s, 0), 100), warn
}

func gradeFor(s int) Grade {
	switch {
	case s >= 90:
		return GradeReference
	case s >= 80:
		return GradeVeryGood
	case s >= 65:
		return GradeAcceptable
	case s >= 50:
		return GradeNeedsImprovement
	default:
		return GradePoor
	}
}

func explain(g Grade) (string, string) {
	switch g {
	case GradeReference:
		return "Reference-Level Acoustic Design",
			"Reflection control, bass management and diffusion depth are within optimal ranges. No corrective treatment is required."
	case GradeVeryGood:
		return "High-Performance Acoustic Room",
			"Excellent acoustic performance. Additional bass trapping or fine-tuned diffusion may further improve precision."
	case GradeAcceptable:
		return "Acoustically Acceptable with Improvements",
			"Basic requirements are met with noticeable limitations. Targeted upgrades at reflection points and in low-frequency control are recommended."
	case GradeNeedsImprovement:
		return "Acoustic Treatment Required",
			"Early reflections or poor bass control are present. A revised treatment strategy is needed."
	default:
		return "Unsuitable Acoustic Conditions",
			"Geometry and treatment are inadequate. Layout changes and deeper treatment are strongly recommended."
	}
}

// RiskScore accumulates hazard points: narrow width +1, low volume +2,
// short rear clearance +2.
func RiskScore(d core.Dimensions, viewingDistanceFt float64) int {
	s := 0
	if d.Width < NarrowWidthFt {
		s++
	}
	if d.Volume() < LowVolumeCuFt {
		s += 2
	}
	if d.Length-viewingDistanceFt < RearClearanceFt {
		s += 2
	}

	return s
}

func levelFor(s int) RiskLevel {
	switch {
	case s <= 2:
		return RiskLow
	case s <= 5:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func flags(r Request, p Plan) []Flag {
	var out []Flag
	if !p.SideWalls {
		out = append(out, FlagEarlyReflections)
	}
	if p.BassTraps != TrapsAll && r.Room.Volume() < BassRiskVolume {
		out = append(out, FlagBassBuildUp)
	}
	if p.RearWall == Diffuser && !p.RearDiffusionAllowed {
		out = append(out, FlagInsufficientDiff)
	}
	if r.Room.Height < LowCeilingFt {
		out = append(out, FlagLowCeiling)
	}
	if r.Room.Length-r.ViewingDistanceFt < ProximityFt {
		out = append(out, FlagSeatWallProximity)
	}

	return out
}

var flagAdvice = map[Flag]string{
	FlagEarlyReflections:  "Add broadband absorbers or hybrid panels at first reflection points on side walls.",
	FlagBassBuildUp:       "Increase low-frequency control using full-height corner bass traps or membrane traps.",
	FlagInsufficientDiff:  "Replace rear-wall diffusers with absorbers or increase listening distance to allow proper diffusion.",
	FlagLowCeiling:        "Use thinner ceiling absorbers and avoid deep diffusers to reduce comb filtering.",
	FlagSeatWallProximity: "Add thick rear-wall absorption behind seating to control strong reflections.",
}

// Balanced is emitted when no hazard flag is raised.
const Balanced = "Room acoustic conditions are well-balanced. Only fine-tuning is required."

func recommendations(a Assessment) []string {
	out := make([]string, 0, 10)
	for _, f := range a.Flags {
		out = append(out, flagAdvice[f])
	}
	if len(a.Flags) == 0 {
		out = append(out, Balanced)
	}

	out = append(out, TierAdvice(a.RiskLevel, a.Plan.RearWall)...)

	if a.Mode.Rank() < a.RecommendedMode.Rank() {
		out = append(out, fmt.Sprintf("Room volume suggests %s acoustic treatment; %s may leave the room under-treated.", a.RecommendedMode, a.Mode))
	}

	return out
}

// TierAdvice returns the recommendation list for a risk tier. Each tier is
// more cautious than the one below it.
func TierAdvice(level RiskLevel, rear Surface) []string {
	switch level {
	case RiskHigh:
		return []string{
			"Full broadband absorption at all first reflection points is mandatory.",
			"Use deep bass traps (6–8 inches) in all four vertical corners.",
			"Install a full-size ceiling cloud covering the reflection zone.",
			"Avoid diffusion near seating; prioritize absorption and controlled decay.",
		}
	case RiskMedium:
		rearAdvice := "Rear wall absorption is preferred due to limited listening distance."
		if rear == Diffuser {
			rearAdvice = "Rear wall diffusion is appropriate due to sufficient listening distance."
		}
		return []string{
			"Treat first reflection points on side walls with absorbers or hybrid panels.",
			"Install bass traps in all rear corners to control low-frequency build-up.",
			"Add a ceiling cloud above the main seating position.",
			rearAdvice,
		}
	default:
		return []string{
			"Use broadband absorbers at first reflection points for clarity.",
			"Basic bass trapping in rear corners is sufficient.",
			"Optional ceiling cloud can improve dialogue focus.",
		}
	}
}

// RecommendedMode maps raw room volume to a treatment level.
func RecommendedMode(volumeCuFt float64) core.AcousticMode {
	switch {
	case volumeCuFt < BasicMaxVolume:
		return core.ModeBasic
	case volumeCuFt < MediumMaxVolume:
		return core.ModeMedium
	default:
		return core.ModeHigh
	}
}
