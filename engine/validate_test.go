package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/engine"
	"github.com/katalvlaran/cinemath/speaker"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*engine.Inputs)
		want   error
	}{
		{"valid", func(*engine.Inputs) {}, nil},
		{"missing height", func(in *engine.Inputs) { in.Room.Height = 0 }, engine.ErrInvalidDimensions},
		{"over cap", func(in *engine.Inputs) { in.Room.Width = 40.5 }, engine.ErrInvalidDimensions},
		{"negative depth", func(in *engine.Inputs) { in.Treatment.Left = -1 }, engine.ErrNegativeDepth},
		{"NaN depth", func(in *engine.Inputs) { in.Treatment.Back = math.NaN() }, engine.ErrNegativeDepth},
		{"unknown aspect", func(in *engine.Inputs) { in.Aspect = "21:9" }, core.ErrUnknownAspect},
		{"unknown mount", func(in *engine.Inputs) { in.Mount = "Ceiling" }, core.ErrUnknownMount},
		{"unknown standard", func(in *engine.Inputs) { in.Standard = "imax" }, core.ErrUnknownStandard},
		{"unknown aisle", func(in *engine.Inputs) { in.Aisle = "Middle" }, core.ErrUnknownAisle},
		{"unknown mode", func(in *engine.Inputs) { in.AcousticMode = "Extreme" }, core.ErrUnknownMode},
		{"bad layout", func(in *engine.Inputs) { in.Layout = "6.1.2" }, speaker.ErrBadLayout},
		{"auto layout", func(in *engine.Inputs) { in.Layout = "auto" }, nil},
		{"zero rows", func(in *engine.Inputs) { in.Rows = 0 }, engine.ErrRowsOutOfRange},
		{"seven rows", func(in *engine.Inputs) { in.Rows = 7 }, engine.ErrRowsOutOfRange},
		{"riser ignored for one row", func(in *engine.Inputs) { in.RiserIn = 30 }, nil},
		{"riser too high", func(in *engine.Inputs) { in.Rows, in.RiserIn = 2, 13 }, engine.ErrRiserOutOfRange},
		{"riser missing", func(in *engine.Inputs) { in.Rows = 2 }, engine.ErrRiserOutOfRange},
		{"negative seats", func(in *engine.Inputs) { in.SeatsPerRow = -1 }, engine.ErrNegativeSeats},
		{"five subs", func(in *engine.Inputs) { in.Subwoofers = 5 }, engine.ErrSubwoofers},
		{"negative diagonal", func(in *engine.Inputs) { in.DiagonalIn = -100 }, engine.ErrNegativeDiagonal},
		{"infinite diagonal", func(in *engine.Inputs) { in.DiagonalIn = math.Inf(1) }, engine.ErrNegativeDiagonal},
		{"unknown rear wall", func(in *engine.Inputs) { in.RearWall = "Foam" }, engine.ErrUnknownTreatment},
		{"unknown bass traps", func(in *engine.Inputs) { in.BassTraps = "Some" }, engine.ErrUnknownTreatment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := inputs(16, 12, 9)
			tc.modify(&in)
			err := engine.Validate(in)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidate_DegradesInResolve: input Validate rejects still resolves.
func TestValidate_DegradesInResolve(t *testing.T) {
	in := inputs(16, 12, 9)
	in.Treatment.Front = -6
	in.Rows, in.RiserIn = 9, 40
	assert.Error(t, engine.Validate(in))

	sum := engine.Resolve(in)
	assert.False(t, sum.Locked)
	assert.LessOrEqual(t, sum.Seating.Rows, 6)
}
