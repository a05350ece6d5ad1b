package designfile

import "github.com/hashicorp/hcl/v2"

// Attributes that accept "Auto", a number or null are decoded as raw
// expressions and evaluated into cty values afterwards.

type file struct {
	Room      *roomBlock      `hcl:"room,block"`
	Treatment *treatmentBlock `hcl:"treatment,block"`
	Speakers  *speakersBlock  `hcl:"speakers,block"`
	Screen    *screenBlock    `hcl:"screen,block"`
	Projector *projectorBlock `hcl:"projector,block"`
	Seating   *seatingBlock   `hcl:"seating,block"`
	Acoustics *acousticsBlock `hcl:"acoustics,block"`
}

type roomBlock struct {
	Length hcl.Expression `hcl:"length,optional"`
	Width  hcl.Expression `hcl:"width,optional"`
	Height hcl.Expression `hcl:"height,optional"`
}

type treatmentBlock struct {
	Front *float64 `hcl:"front,optional"`
	Back  *float64 `hcl:"back,optional"`
	Left  *float64 `hcl:"left,optional"`
	Right *float64 `hcl:"right,optional"`
}

type speakersBlock struct {
	Mount      *string        `hcl:"mount,optional"`
	Layout     *string        `hcl:"layout,optional"`
	Subwoofers hcl.Expression `hcl:"subwoofers,optional"`
}

type screenBlock struct {
	Aspect   *string        `hcl:"aspect,optional"`
	Standard *string        `hcl:"standard,optional"`
	Diagonal hcl.Expression `hcl:"diagonal,optional"`
}

type projectorBlock struct {
	Offset *float64 `hcl:"offset,optional"`
}

type seatingBlock struct {
	Rows        *int           `hcl:"rows,optional"`
	Riser       *float64       `hcl:"riser,optional"`
	SeatsPerRow hcl.Expression `hcl:"seats_per_row,optional"`
	Aisle       *string        `hcl:"aisle,optional"`
}

type acousticsBlock struct {
	Mode      *string `hcl:"mode,optional"`
	RearWall  *string `hcl:"rear_wall,optional"`
	BassTraps *string `hcl:"bass_traps,optional"`
}
