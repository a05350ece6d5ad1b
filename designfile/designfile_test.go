package designfile_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/designfile"
	"github.com/katalvlaran/cinemath/engine"
	"github.com/katalvlaran/cinemath/speaker"
	"github.com/katalvlaran/cinemath/verdict"
)

const full = `
room {
  length = 24
  width  = 14.5
  height = "10"
}

treatment {
  front = 6
  back  = 8
  left  = 2
  right = 2
}

speakers {
  mount      = "on-wall"
  layout     = "7.1.4"
  subwoofers = 2
}

screen {
  aspect   = "2.35:1"
  standard = "THX"
  diagonal = 120
}

projector {
  offset = 6
}

seating {
  rows          = 3
  riser         = 8
  seats_per_row = 3
  aisle         = "both"
}

acoustics {
  mode       = "high"
  rear_wall  = "Absorber"
  bass_traps = "RearOnly"
}
`

func TestParse_Full(t *testing.T) {
	in, err := designfile.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)

	want := engine.Inputs{
		Room:              core.Dimensions{Length: 24, Width: 14.5, Height: 10},
		Treatment:         core.Treatment{Front: 6, Back: 8, Left: 2, Right: 2},
		Mount:             core.OnWall,
		Layout:            "7.1.4",
		Subwoofers:        2,
		Aspect:            core.Aspect235x1,
		Standard:          core.THX,
		DiagonalIn:        120,
		ProjectorOffsetIn: 6,
		Rows:              3,
		RiserIn:           8,
		SeatsPerRow:       3,
		Aisle:             core.AisleBoth,
		AcousticMode:      core.ModeHigh,
		RearWall:          acoustic.Absorber,
		BassTraps:         acoustic.TrapsRearOnly,
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, engine.Validate(in))
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	in, err := designfile.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultInputs(), in)
	assert.True(t, engine.Resolve(in).Locked)
}

func TestParse_NullAndAuto(t *testing.T) {
	src := `
room {
  length = 16
  width  = null
  height = 9
}
speakers {
  layout     = "auto"
  subwoofers = "Auto"
}
screen {
  diagonal = null
}
seating {
  seats_per_row = "AUTO"
}
`
	in, err := designfile.Parse([]byte(src), "auto.hcl")
	require.NoError(t, err)
	assert.Zero(t, in.Room.Width)
	assert.Equal(t, speaker.Auto, in.Layout)
	assert.Zero(t, in.Subwoofers)
	assert.Zero(t, in.DiagonalIn)
	assert.Zero(t, in.SeatsPerRow)

	sum := engine.Resolve(in)
	assert.True(t, sum.Locked, "null width means absent")
	assert.Equal(t, verdict.NotEvaluated, sum.Master.Verdict)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []error
	}{
		{"syntax", `room { length = }`, []error{designfile.ErrSyntax}},
		{"unknown block", `garage { cars = 2 }`, []error{designfile.ErrDecode}},
		{"unknown attribute", `room { depth = 3 }`, []error{designfile.ErrDecode}},
		{"rows not integer", `seating { rows = 1.5 }`, []error{designfile.ErrDecode}},
		{"variable reference", `room { length = size }`, []error{designfile.ErrDecode}},
		{"aspect", `screen { aspect = "21:9" }`, []error{designfile.ErrUnknownEnum, core.ErrUnknownAspect}},
		{"standard", `screen { standard = "imax" }`, []error{designfile.ErrUnknownEnum, core.ErrUnknownStandard}},
		{"mount", `speakers { mount = "ceiling" }`, []error{designfile.ErrUnknownEnum, core.ErrUnknownMount}},
		{"layout", `speakers { layout = "6.1.2" }`, []error{designfile.ErrUnknownEnum, speaker.ErrBadLayout}},
		{"aisle", `seating { aisle = "middle" }`, []error{designfile.ErrUnknownEnum, core.ErrUnknownAisle}},
		{"mode", `acoustics { mode = "max" }`, []error{designfile.ErrUnknownEnum, core.ErrUnknownMode}},
		{"rear wall", `acoustics { rear_wall = "foam" }`, []error{designfile.ErrUnknownEnum}},
		{"bass traps", `acoustics { bass_traps = "some" }`, []error{designfile.ErrUnknownEnum}},
		{"diagonal word", `screen { diagonal = "big" }`, []error{designfile.ErrNotAutoOrNumber}},
		{"fractional seats", `seating { seats_per_row = 2.5 }`, []error{designfile.ErrNotAutoOrNumber}},
		{"length word", `room { length = "long" }`, []error{designfile.ErrNotAutoOrNumber}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := designfile.Parse([]byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func TestLoad_HCL(t *testing.T) {
	in, err := designfile.Load(filepath.Join("testdata", "small_room.hcl"))
	require.NoError(t, err)
	assert.Equal(t, core.Dimensions{Length: 16, Width: 12, Height: 9}, in.Room)
	assert.Equal(t, core.DefaultTreatment(), in.Treatment)

	sum := engine.Resolve(in)
	assert.Equal(t, "5.1.2", sum.Speakers.Layout)
	assert.Equal(t, verdict.Compromised, sum.Master.Verdict)
}

func TestLoad_JSON(t *testing.T) {
	in, err := designfile.Load(filepath.Join("testdata", "wide_room.json"))
	require.NoError(t, err)
	assert.Equal(t, "7.1.4", in.Layout)
	assert.Equal(t, 4, in.Subwoofers)
	assert.Equal(t, 2, in.Rows)
	assert.Equal(t, 12.0, in.RiserIn)
	assert.Equal(t, core.ModeHigh, in.AcousticMode)

	sum := engine.Resolve(in)
	assert.Equal(t, verdict.Recommended, sum.Master.Verdict)
	assert.True(t, sum.Speakers.Manual)
}

func TestLoad_Missing(t *testing.T) {
	_, err := designfile.Load(filepath.Join("testdata", "nope.hcl"))
	assert.ErrorIs(t, err, designfile.ErrSyntax)
}
