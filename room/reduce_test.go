package room_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/room"
	"github.com/stretchr/testify/assert"
)

func TestReduce_TypicalInWall(t *testing.T) {
	u := room.Reduce(core.Dimensions{Length: 16, Width: 12, Height: 9}, core.DefaultTreatment(), core.InWall)

	assert.InDelta(t, 14.5, u.Length, 1e-9, "16 - (4+4+10)/12")
	assert.InDelta(t, 12-8.0/12, u.Width, 1e-9)
	assert.InDelta(t, 8.0, u.Height, 1e-9)
	assert.InDelta(t, 4.0/12, u.X, 1e-9)
	assert.InDelta(t, 14.0/12, u.Y, 1e-9)
	assert.InDelta(t, 16-8.0/12-2, u.EquipmentLength, 1e-9)
	assert.InDelta(t, 1728.0, u.RawVolume, 1e-9)
	assert.Equal(t, 23.9, u.VolumeLossPct)
	assert.Equal(t, room.LossSignificant, u.LossClass)
	assert.Empty(t, u.Advisories)
	assert.Equal(t, room.SeveritySafe, u.Severity)
	assert.InDelta(t, u.Y+u.Length, u.Bottom(), 1e-12)
}

func TestReduce_OnWallObstruction(t *testing.T) {
	in := room.Reduce(core.Dimensions{Length: 20, Width: 14, Height: 9}, core.Treatment{}, core.InWall)
	on := room.Reduce(core.Dimensions{Length: 20, Width: 14, Height: 9}, core.Treatment{}, core.OnWall)

	assert.InDelta(t, 20-10.0/12, in.Length, 1e-9)
	assert.InDelta(t, 20-6.0/12, on.Length, 1e-9)
	assert.Equal(t, 6.0, on.FrontObstructionIn)
}

// TestReduce_ClampsToZero over-treats a tiny room: nothing may go negative.
func TestReduce_ClampsToZero(t *testing.T) {
	u := room.Reduce(
		core.Dimensions{Length: 2, Width: 1, Height: 0.5},
		core.Treatment{Front: 30, Back: 30, Left: 12, Right: 12},
		core.InWall,
	)

	assert.Zero(t, u.Length)
	assert.Zero(t, u.Width)
	assert.Zero(t, u.Height)
	assert.Zero(t, u.Volume)
	assert.Zero(t, u.EquipmentLength)
	assert.True(t, u.Degenerate())
	assert.Equal(t, 100.0, u.VolumeLossPct)
	assert.Equal(t, room.SeverityCritical, u.Severity)
}

func TestReduce_NegativeDepthsIgnored(t *testing.T) {
	u := room.Reduce(
		core.Dimensions{Length: 16, Width: 12, Height: 9},
		core.Treatment{Front: -10, Back: -10, Left: -10, Right: -10},
		core.OnWall,
	)
	assert.InDelta(t, 12.0, u.Width, 1e-9)
	assert.InDelta(t, 16-0.5, u.Length, 1e-9)
}

// TestReduce_InfiniteDepthIgnored: an infinite wall depth is treated as no
// treatment rather than pushing the usable box off to infinity.
func TestReduce_InfiniteDepthIgnored(t *testing.T) {
	d := core.Dimensions{Length: 16, Width: 12, Height: 9}
	inf := room.Reduce(d, core.Treatment{Front: 4, Back: math.Inf(1), Left: 4, Right: 4}, core.InWall)
	bare := room.Reduce(d, core.Treatment{Front: 4, Back: 0, Left: 4, Right: 4}, core.InWall)

	assert.Equal(t, bare, inf)
	assert.True(t, core.Finite(inf.Y))
	assert.True(t, core.Finite(inf.Length))
}

func TestReduce_Advisories(t *testing.T) {
	u := room.Reduce(
		core.Dimensions{Length: 14, Width: 10, Height: 9},
		core.Treatment{Front: 10, Back: 12, Left: 8, Right: 8},
		core.InWall,
	)

	titles := make([]string, 0, len(u.Advisories))
	for _, a := range u.Advisories {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{
		room.ExcessiveSideDepth,
		room.ExcessiveFrontDepth,
		room.ExcessiveRearDepth,
		room.OverConstrainedW,
		room.OverConstrainedL,
	}, titles)
	assert.Equal(t, room.SeverityCritical, u.Severity)
}

func TestReduce_LossClasses(t *testing.T) {
	// 40x40x20 with no side/rear treatment and an on-wall obstruction:
	// only the ceiling (1ft of 20) and 6in of length are lost.
	u := room.Reduce(core.Dimensions{Length: 40, Width: 40, Height: 20}, core.Treatment{}, core.OnWall)
	assert.Equal(t, room.LossModerate, u.LossClass)

	u = room.Reduce(core.Dimensions{Length: 60, Width: 40, Height: 20}, core.Treatment{}, core.OnWall)
	assert.Equal(t, room.LossModerate, u.LossClass)
	assert.Equal(t, room.SeveritySafe, u.Severity)
}
