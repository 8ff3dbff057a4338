// Package avatar holds the recolorable parts of the avatar and their color state.
package avatar

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	avaerrors "github.com/alexisbeaulieu97/avatint/pkg/errors"
)

// Key identifies one of the fixed avatar parts.
type Key string

const (
	KeyHead Key = "head"
	KeyBody Key = "body"
	KeyLeg  Key = "leg"
	KeyShoe Key = "shoe"
)

// Keys lists every part in display order.
var Keys = []Key{KeyHead, KeyBody, KeyLeg, KeyShoe}

// ParseKey resolves a part name.
func ParseKey(name string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Keys {
		if k == known {
			return k, nil
		}
	}
	return "", avaerrors.NewValidationError(name, "not an avatar part (want head, body, leg or shoe)", avaerrors.ErrUnknownPart)
}

// Field names one editable color channel of a part.
type Field string

const (
	FieldR      Field = "r"
	FieldG      Field = "g"
	FieldB      Field = "b"
	FieldBright Field = "bright"
)

// Fields lists the editable fields in control order.
var Fields = []Field{FieldR, FieldG, FieldB, FieldBright}

// ParseField resolves a field name. "brightness" and "br" are accepted for bright.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "r", "red":
		return FieldR, nil
	case "g", "green":
		return FieldG, nil
	case "b", "blue":
		return FieldB, nil
	case "bright", "brightness", "br":
		return FieldBright, nil
	}
	return "", avaerrors.NewValidationError(name, "not a color field (want r, g, b or bright)", avaerrors.ErrUnknownField)
}

// Bounds returns the inclusive domain of the field.
func (f Field) Bounds() (int, int) {
	if f == FieldBright {
		return color.BrightnessMin, color.BrightnessMax
	}
	return color.ChannelMin, color.ChannelMax
}

// Part is one recolorable avatar segment.
type Part struct {
	Key    Key
	Label  string
	R      int
	G      int
	B      int
	Bright int
}

// RGB returns the part's base color.
func (p Part) RGB() color.RGB {
	return color.NewRGB(p.R, p.G, p.B)
}

// Value reads a field.
func (p Part) Value(f Field) int {
	switch f {
	case FieldR:
		return p.R
	case FieldG:
		return p.G
	case FieldB:
		return p.B
	default:
		return p.Bright
	}
}

func (p *Part) set(f Field, v int) {
	switch f {
	case FieldR:
		p.R = v
	case FieldG:
		p.G = v
	case FieldB:
		p.B = v
	case FieldBright:
		p.Bright = v
	}
}

// normalize forces every field into its domain.
func (p *Part) normalize() {
	for _, f := range Fields {
		lo, hi := f.Bounds()
		p.set(f, color.Clamp(float64(p.Value(f)), lo, hi))
	}
}

func (p Part) String() string {
	return fmt.Sprintf("%s(%d,%d,%d @%d%%)", p.Key, p.R, p.G, p.B, p.Bright)
}
