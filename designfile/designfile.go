// Package designfile - HCL design files to engine.Inputs.
//
// Contracts:
//   - Every block and attribute is optional; missing values keep the
//     engine.DefaultInputs value, and a missing room leaves the summary
//     Locked.
//   - Names are checked here (ErrUnknownEnum); numeric ranges are left to
//     the engine, which clamps, or to engine.Validate.
//   - Diagnostics are returned wrapped, never printed.
package designfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/katalvlaran/cinemath/acoustic"
	"github.com/katalvlaran/cinemath/core"
	"github.com/katalvlaran/cinemath/engine"
	"github.com/katalvlaran/cinemath/speaker"
)

var (
	// ErrSyntax indicates a file that is not valid HCL (or HCL JSON).
	ErrSyntax = errors.New("designfile: invalid syntax")

	// ErrDecode indicates valid syntax with an unexpected block or attribute.
	ErrDecode = errors.New("designfile: invalid design")

	// ErrUnknownEnum indicates a name outside an attribute's allowed set.
	ErrUnknownEnum = errors.New("designfile: unknown name")

	// ErrNotAutoOrNumber indicates an attribute that must be "Auto", a
	// number or null.
	ErrNotAutoOrNumber = errors.New("designfile: expected \"Auto\" or a number")
)

// Parse decodes HCL native syntax held in memory. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (engine.Inputs, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return engine.Inputs{}, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	return decode(f.Body)
}

// Load reads a design file from disk. Files ending in .json are parsed as
// HCL JSON, everything else as native syntax.
func Load(path string) (engine.Inputs, error) {
	var (
		p     = hclparse.NewParser()
		f     *hcl.File
		diags hcl.Diagnostics
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, diags = p.ParseJSONFile(path)
	} else {
		f, diags = p.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return engine.Inputs{}, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	return decode(f.Body)
}

func decode(body hcl.Body) (engine.Inputs, error) {
	var raw file
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return engine.Inputs{}, fmt.Errorf("%w: %w", ErrDecode, diags)
	}

	in := engine.DefaultInputs()
	steps := []func(*engine.Inputs, file) error{
		decodeRoom,
		decodeTreatment,
		decodeSpeakers,
		decodeScreen,
		decodeProjector,
		decodeSeating,
		decodeAcoustics,
	}
	for _, step := range steps {
		if err := step(&in, raw); err != nil {
			return engine.Inputs{}, err
		}
	}

	return in, nil
}

func decodeRoom(in *engine.Inputs, f file) error {
	if f.Room == nil {
		return nil
	}
	var err error
	if in.Room.Length, err = nullableNumber("room.length", f.Room.Length); err != nil {
		return err
	}
	if in.Room.Width, err = nullableNumber("room.width", f.Room.Width); err != nil {
		return err
	}
	if in.Room.Height, err = nullableNumber("room.height", f.Room.Height); err != nil {
		return err
	}

	return nil
}

func decodeTreatment(in *engine.Inputs, f file) error {
	if f.Treatment == nil {
		return nil
	}
	set(&in.Treatment.Front, f.Treatment.Front)
	set(&in.Treatment.Back, f.Treatment.Back)
	set(&in.Treatment.Left, f.Treatment.Left)
	set(&in.Treatment.Right, f.Treatment.Right)

	return nil
}

func decodeSpeakers(in *engine.Inputs, f file) error {
	b := f.Speakers
	if b == nil {
		return nil
	}
	if b.Mount != nil {
		m, err := core.ParseMountType(*b.Mount)
		if err != nil {
			return unknown("speakers.mount", *b.Mount, err)
		}
		in.Mount = m
	}
	if b.Layout != nil {
		if !speaker.IsAuto(*b.Layout) {
			if _, err := speaker.ParseLayout(*b.Layout); err != nil {
				return unknown("speakers.layout", *b.Layout, err)
			}
		}
		in.Layout = strings.TrimSpace(*b.Layout)
		if speaker.IsAuto(in.Layout) {
			in.Layout = speaker.Auto
		}
	}

	n, err := autoInt("speakers.subwoofers", b.Subwoofers)
	if err != nil {
		return err
	}
	in.Subwoofers = n

	return nil
}

func decodeScreen(in *engine.Inputs, f file) error {
	b := f.Screen
	if b == nil {
		return nil
	}
	if b.Aspect != nil {
		a, err := core.ParseAspect(*b.Aspect)
		if err != nil {
			return unknown("screen.aspect", *b.Aspect, err)
		}
		in.Aspect = a
	}
	if b.Standard != nil {
		s, err := core.ParseViewingStandard(*b.Standard)
		if err != nil {
			return unknown("screen.standard", *b.Standard, err)
		}
		in.Standard = s
	}

	d, err := autoNumber("screen.diagonal", b.Diagonal)
	if err != nil {
		return err
	}
	in.DiagonalIn = d

	return nil
}

func decodeProjector(in *engine.Inputs, f file) error {
	if f.Projector != nil {
		set(&in.ProjectorOffsetIn, f.Projector.Offset)
	}

	return nil
}

func decodeSeating(in *engine.Inputs, f file) error {
	b := f.Seating
	if b == nil {
		return nil
	}
	if b.Rows != nil {
		in.Rows = *b.Rows
	}
	set(&in.RiserIn, b.Riser)
	if b.Aisle != nil {
		a, err := core.ParseAisle(*b.Aisle)
		if err != nil {
			return unknown("seating.aisle", *b.Aisle, err)
		}
		in.Aisle = a
	}

	n, err := autoInt("seating.seats_per_row", b.SeatsPerRow)
	if err != nil {
		return err
	}
	in.SeatsPerRow = n

	return nil
}

func decodeAcoustics(in *engine.Inputs, f file) error {
	b := f.Acoustics
	if b == nil {
		return nil
	}
	if b.Mode != nil {
		m, err := core.ParseAcousticMode(*b.Mode)
		if err != nil {
			return unknown("acoustics.mode", *b.Mode, err)
		}
		in.AcousticMode = m
	}
	if b.RearWall != nil && !speaker.IsAuto(*b.RearWall) {
		s, ok := surfaces[strings.ToLower(strings.TrimSpace(*b.RearWall))]
		if !ok {
			return unknown("acoustics.rear_wall", *b.RearWall, nil)
		}
		in.RearWall = s
	}
	if b.BassTraps != nil && !speaker.IsAuto(*b.BassTraps) {
		t, ok := traps[strings.ToLower(strings.TrimSpace(*b.BassTraps))]
		if !ok {
			return unknown("acoustics.bass_traps", *b.BassTraps, nil)
		}
		in.BassTraps = t
	}

	return nil
}

var surfaces = map[string]acoustic.Surface{
	"none":     acoustic.Untreated,
	"absorber": acoustic.Absorber,
	"hybrid":   acoustic.Hybrid,
	"diffuser": acoustic.Diffuser,
}

var traps = map[string]acoustic.BassTraps{
	"all":      acoustic.TrapsAll,
	"rearonly": acoustic.TrapsRearOnly,
	"none":     acoustic.TrapsNone,
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func unknown(attr, value string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s = %q", ErrUnknownEnum, attr, value)
	}

	return fmt.Errorf("%w: %s = %q: %w", ErrUnknownEnum, attr, value, cause)
}
