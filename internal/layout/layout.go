// Package layout computes avatar shape geometry from a container width.
package layout

import "math"

// Options controls how the container size is derived.
type Options struct {
	DefaultWidth int     `yaml:"default_width" validate:"omitempty,min=1"`
	MinHeight    int     `yaml:"min_height" validate:"omitempty,min=1"`
	AspectRatio  float64 `yaml:"aspect_ratio" validate:"omitempty,gt=0,lte=4"`
}

// DefaultOptions returns the stock sizing rules.
func DefaultOptions() Options {
	return Options{DefaultWidth: 600, MinHeight: 400, AspectRatio: 0.6}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DefaultWidth <= 0 {
		o.DefaultWidth = d.DefaultWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = d.MinHeight
	}
	if o.AspectRatio <= 0 {
		o.AspectRatio = d.AspectRatio
	}
	return o
}

// Circle is a circle centred at (CX, CY).
type Circle struct {
	CX, CY, R float64
}

// Rect is an axis-aligned rectangle with corner radius RX.
type Rect struct {
	X, Y, Width, Height, RX float64
}

// Geometry is the full set of shape positions for one container size.
type Geometry struct {
	Width  int
	Height int
	Scale  float64

	Head  Circle
	Torso Rect
	Arms  [2]Rect
	Legs  [2]Rect
	Shoes [2]Rect
}

// Shape proportions, as fractions of the uniform scale.
const (
	topFraction = 0.15

	headRadius = 0.08
	bodyWidth  = 0.18
	bodyHeight = 0.28
	armWidth   = 0.06
	armHeight  = 0.22
	legWidth   = 0.08
	legHeight  = 0.28
	shoeHeight = 0.05
	shoeWiden  = 1.2

	gap        = 0.02
	armOutset  = 0.08
	armDrop    = 0.05
	cornerSize = 0.02
)

// Compute derives the geometry for a container of the given width. A
// non-positive width falls back to opts.DefaultWidth.
func Compute(width int, opts Options) Geometry {
	opts = opts.withDefaults()

	w := width
	if w <= 0 {
		w = opts.DefaultWidth
	}
	h := int(math.Round(float64(w) * opts.AspectRatio))
	if h < opts.MinHeight {
		h = opts.MinHeight
	}

	s := float64(min(w, h))
	cx := float64(w) / 2
	top := float64(h) * topFraction
	rx := cornerSize * s

	headR := headRadius * s
	bodyW, bodyH := bodyWidth*s, bodyHeight*s
	armW, armH := armWidth*s, armHeight*s
	legW, legH := legWidth*s, legHeight*s

	g := Geometry{Width: w, Height: h, Scale: s}
	g.Head = Circle{CX: cx, CY: top + headR, R: headR}

	bodyX := cx - bodyW/2
	bodyY := top + headR*2 + gap*s
	g.Torso = Rect{X: bodyX, Y: bodyY, Width: bodyW, Height: bodyH, RX: rx}

	armY := bodyY + armDrop*s
	g.Arms = [2]Rect{
		{X: bodyX - armOutset*s, Y: armY, Width: armW, Height: armH, RX: rx},
		{X: bodyX + bodyW + gap*s, Y: armY, Width: armW, Height: armH, RX: rx},
	}

	legTop := bodyY + bodyH + gap*s
	leftLegX := cx - legW - gap*s
	rightLegX := cx + gap*s
	g.Legs = [2]Rect{
		{X: leftLegX, Y: legTop, Width: legW, Height: legH, RX: rx},
		{X: rightLegX, Y: legTop, Width: legW, Height: legH, RX: rx},
	}

	shoeW := legW * shoeWiden
	shoeH := shoeHeight * s
	shoeY := legTop + legH
	inset := (shoeW - legW) / 2
	g.Shoes = [2]Rect{
		{X: leftLegX - inset, Y: shoeY, Width: shoeW, Height: shoeH, RX: rx},
		{X: rightLegX - inset, Y: shoeY, Width: shoeW, Height: shoeH, RX: rx},
	}

	return g
}
