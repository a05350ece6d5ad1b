package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/seating"
	"github.com/katalvlaran/cinemath/speaker"
)

// Sentinel errors returned by Validate. Resolve never returns them; it
// degrades instead.
var (
	// ErrInvalidDimensions indicates a missing, non-finite or out-of-cap room dimension.
	ErrInvalidDimensions = errors.New("engine: room dimensions must be finite, > 0 and within 60x40x20 ft")

	// ErrNegativeDepth indicates a negative wall treatment depth.
	ErrNegativeDepth = errors.New("engine: treatment depth must be >= 0")

	// ErrRowsOutOfRange indicates a row count outside [1,6].
	ErrRowsOutOfRange = errors.New("engine: row count must be in [1,6]")

	// ErrRiserOutOfRange indicates a multi-row riser outside [5,12] in.
	ErrRiserOutOfRange = errors.New("engine: riser height must be in [5,12] in")

	// ErrNegativeSeats indicates a negative seats-per-row request.
	ErrNegativeSeats = errors.New("engine: seats per row must be >= 0")

	// ErrSubwoofers indicates a subwoofer count outside [0,4].
	ErrSubwoofers = errors.New("engine: subwoofer count must be in [0,4]")

	// ErrNegativeDiagonal indicates a diagonal that is neither Auto (0) nor positive.
	ErrNegativeDiagonal = errors.New("engine: diagonal must be 0 (Auto) or positive")

	// ErrUnknownTreatment indicates an unknown rear wall or bass trap override.
	ErrUnknownTreatment = errors.New("engine: unknown treatment override")

	// ErrNonFinite indicates a NaN or infinite numeric input. Resolve
	// replaces it with 0 and logs it.
	ErrNonFinite = errors.New("engine: numeric input must be finite")
)

// Validate reports the first input the engine would have to degrade. It is
// for callers that prefer rejecting input to a locked or adjusted summary.
func Validate(in Inputs) error {
	if !in.Room.Valid() {
		return fmt.Errorf("room %gx%gx%g: %w", in.Room.Length, in.Room.Width, in.Room.Height, ErrInvalidDimensions)
	}

	depths := []struct {
		wall string
		v    float64
	}{
		{"front", in.Treatment.Front},
		{"back", in.Treatment.Back},
		{"left", in.Treatment.Left},
		{"right", in.Treatment.Right},
	}
	for _, d := range depths {
		if !(d.v >= 0) || !core.Finite(d.v) {
			return fmt.Errorf("%s wall %g: %w", d.wall, d.v, ErrNegativeDepth)
		}
	}

	if _, err := normalize(in); err != nil {
		return err
	}
	if in.Layout != "" && !speaker.IsAuto(in.Layout) {
		if _, err := speaker.ParseLayout(in.Layout); err != nil {
			return err
		}
	}

	if in.Rows < seating.MinRows || in.Rows > seating.MaxRows {
		return fmt.Errorf("rows %d: %w", in.Rows, ErrRowsOutOfRange)
	}
	if in.Rows > 1 && (in.RiserIn < seating.RiserMinIn || in.RiserIn > seating.RiserMaxIn) {
		return fmt.Errorf("riser %gin: %w", in.RiserIn, ErrRiserOutOfRange)
	}
	if in.SeatsPerRow < 0 {
		return fmt.Errorf("seats %d: %w", in.SeatsPerRow, ErrNegativeSeats)
	}
	if in.Subwoofers < 0 || in.Subwoofers > speaker.MaxSubwoofers {
		return fmt.Errorf("subwoofers %d: %w", in.Subwoofers, ErrSubwoofers)
	}
	if !(in.DiagonalIn >= 0) || !core.Finite(in.DiagonalIn) {
		return fmt.Errorf("diagonal %g: %w", in.DiagonalIn, ErrNegativeDiagonal)
	}

	switch in.RearWall {
	case "", acoustic.Untreated, acoustic.Absorber, acoustic.Hybrid, acoustic.Diffuser:
	default:
		return fmt.Errorf("rear wall %q: %w", in.RearWall, ErrUnknownTreatment)
	}
	switch in.BassTraps {
	case "", acoustic.TrapsAll, acoustic.TrapsRearOnly, acoustic.TrapsNone:
	default:
		return fmt.Errorf("bass traps %q: %w", in.BassTraps, ErrUnknownTreatment)
	}

	return nil
}

// normalize resolves the enum fields to their canonical values. Unknown
// names fall back to the defaults and are reported in the joined error.
func normalize(in Inputs) (Inputs, error) {
	var errs []error

	mount, err := core.ParseMountType(string(in.Mount))
	if err != nil {
		errs = append(errs, fmt.Errorf("mount type %q: %w", in.Mount, err))
		mount = core.InWall
	}
	aspect, err := core.ParseAspect(string(in.Aspect))
	if err != nil {
		errs = append(errs, fmt.Errorf("aspect %q: %w", in.Aspect, err))
		aspect = core.Aspect16x9
	}
	standard, err := core.ParseViewingStandard(string(in.Standard))
	if err != nil {
		errs = append(errs, fmt.Errorf("viewing standard %q: %w", in.Standard, err))
		standard = core.SMPTE
	}
	aisle, err := core.ParseAisle(string(in.Aisle))
	if err != nil {
		errs = append(errs, fmt.Errorf("aisle %q: %w", in.Aisle, err))
		aisle = core.AisleNone
	}
	mode, err := core.ParseAcousticMode(string(in.AcousticMode))
	if err != nil {
		errs = append(errs, fmt.Errorf("acoustic mode %q: %w", in.AcousticMode, err))
		mode = core.ModeMedium
	}

	in.Mount, in.Aspect, in.Standard, in.Aisle, in.AcousticMode = mount, aspect, standard, aisle, mode
	if in.Layout == "" {
		in.Layout = speaker.Auto
	}

	return in, errors.Join(errs...)
}

// finite zeroes every NaN or infinite numeric input so nothing non-finite
// reaches a stage or the echoed Inputs. A zeroed room dimension still locks
// the summary.
func finite(in Inputs) (Inputs, error) {
	var errs []error

	fields := []struct {
		name string
		v    *float64
	}{
		{"room length", &in.Room.Length},
		{"room width", &in.Room.Width},
		{"room height", &in.Room.Height},
		{"front wall depth", &in.Treatment.Front},
		{"back wall depth", &in.Treatment.Back},
		{"left wall depth", &in.Treatment.Left},
		{"right wall depth", &in.Treatment.Right},
		{"diagonal", &in.DiagonalIn},
		{"projector offset", &in.ProjectorOffsetIn},
		{"riser", &in.RiserIn},
	}
	for _, f := range fields {
		if !core.Finite(*f.v) {
			errs = append(errs, fmt.Errorf("%s %g: %w", f.name, *f.v, ErrNonFinite))
			*f.v = 0
		}
	}

	return in, errors.Join(errs...)
}
