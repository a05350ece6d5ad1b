package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cinemath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDimensions_Valid checks the hard caps and the zero/NaN "absent" cases.
func TestDimensions_Valid(t *testing.T) {
	cases := []struct {
		name string
		d    core.Dimensions
		want bool
	}{
		{"typical", core.Dimensions{Length: 16, Width: 12, Height: 9}, true},
		{"at caps", core.Dimensions{Length: 60, Width: 40, Height: 20}, true},
		{"length over cap", core.Dimensions{Length: 60.1, Width: 12, Height: 9}, false},
		{"width over cap", core.Dimensions{Length: 16, Width: 41, Height: 9}, false},
		{"height over cap", core.Dimensions{Length: 16, Width: 12, Height: 21}, false},
		{"missing length", core.Dimensions{Width: 12, Height: 9}, false},
		{"negative width", core.Dimensions{Length: 16, Width: -1, Height: 9}, false},
		{"NaN height", core.Dimensions{Length: 16, Width: 12, Height: math.NaN()}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.Valid())
		})
	}
}

func TestDimensions_Volume(t *testing.T) {
	assert.InDelta(t, 1728.0, core.Dimensions{Length: 16, Width: 12, Height: 9}.Volume(), 1e-9)
	assert.Zero(t, core.Dimensions{Length: 16, Width: 12}.Volume(), "invalid room has no volume")
}

func TestTreatment_DefaultsAndSanitize(t *testing.T) {
	def := core.DefaultTreatment()
	assert.Equal(t, core.Treatment{Front: 4, Back: 4, Left: 4, Right: 4}, def)

	got := core.Treatment{Front: -3, Back: math.NaN(), Left: 2, Right: math.Inf(1)}.Sanitized()
	assert.Equal(t, core.Treatment{Front: 0, Back: 0, Left: 2, Right: 0}, got)
}

func TestMountType_Derived(t *testing.T) {
	assert.Equal(t, core.BehindScreen, core.InWall.Placement())
	assert.Equal(t, core.BesideScreen, core.OnWall.Placement())
	assert.Equal(t, 10.0, core.InWall.FrontObstructionIn())
	assert.Equal(t, 6.0, core.OnWall.FrontObstructionIn())
}

func TestEnums_Quantities(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, core.Aspect16x9.Ratio(), 1e-12)
	assert.InDelta(t, 2.35, core.Aspect235x1.Ratio(), 1e-12)
	assert.InDelta(t, 4.0/3.0, core.Aspect4x3.Ratio(), 1e-12)

	assert.Equal(t, 30.0, core.SMPTE.AngleDeg())
	assert.Equal(t, 36.0, core.THX.AngleDeg())
	assert.Equal(t, 40.0, core.Max.AngleDeg())

	assert.Equal(t, 0.0, core.AisleNone.DeductionFt())
	assert.Equal(t, 2.0, core.AisleCenter.DeductionFt())
	assert.Equal(t, 4.0, core.AisleBoth.DeductionFt())

	assert.Less(t, core.ModeBasic.Rank(), core.ModeMedium.Rank())
	assert.Less(t, core.ModeMedium.Rank(), core.ModeHigh.Rank())
}

func TestParse_Names(t *testing.T) {
	a, err := core.ParseAspect("2.35:1")
	require.NoError(t, err)
	assert.Equal(t, core.Aspect235x1, a)

	s, err := core.ParseViewingStandard("THX")
	require.NoError(t, err)
	assert.Equal(t, core.THX, s)

	m, err := core.ParseMountType("on-wall")
	require.NoError(t, err)
	assert.Equal(t, core.OnWall, m)

	ai, err := core.ParseAisle("both")
	require.NoError(t, err)
	assert.Equal(t, core.AisleBoth, ai)

	mode, err := core.ParseAcousticMode("")
	require.NoError(t, err)
	assert.Equal(t, core.ModeMedium, mode, "empty mode defaults to Medium")
}

func TestParse_Unknown(t *testing.T) {
	_, err := core.ParseAspect("21:9")
	assert.ErrorIs(t, err, core.ErrUnknownAspect)
	_, err = core.ParseViewingStandard("imax")
	assert.ErrorIs(t, err, core.ErrUnknownStandard)
	_, err = core.ParseMountType("ceiling")
	assert.ErrorIs(t, err, core.ErrUnknownMount)
	_, err = core.ParseAisle("middle")
	assert.ErrorIs(t, err, core.ErrUnknownAisle)
	_, err = core.ParseAcousticMode("Ultra")
	assert.ErrorIs(t, err, core.ErrUnknownMode)
}
