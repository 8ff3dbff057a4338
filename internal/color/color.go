// Package color maps RGB channels plus a brightness percentage to the hex
// color an avatar part is painted with.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NewRGB builds an RGB from loosely typed channel values, clamping each to [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: uint8(Clamp(float64(r), ChannelMin, ChannelMax)),
		G: uint8(Clamp(float64(g), ChannelMin, ChannelMax)),
		B: uint8(Clamp(float64(b), ChannelMin, ChannelMax)),
	}
}

// ParseHex parses "#rrggbb" (or "#rgb").
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func expandShortHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}

// Hex formats the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lightness returns the HSL lightness of a hex color in [0,1].
func Lightness(hex string) (float64, error) {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return 0, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	_, _, l := c.Hsl()
	return l, nil
}

// AdjustBrightness rescales the HSL lightness of rgb. At 100 the color is
// unchanged. Below 100 lightness scales linearly toward black (0 is black);
// above 100 it moves linearly toward white (200 is white).
func AdjustBrightness(rgb RGB, percent int) string {
	h, s, l := rgb.colorful().Hsl()
	p := float64(percent)
	if percent >= BrightnessNeutral {
		l += (1 - l) * (p - BrightnessNeutral) / 100
	} else {
		l *= p / 100
	}
	return fromHsl(h, s, l)
}

// ScaleBrightness multiplies lightness by percent/100, saturating at 1.
func ScaleBrightness(rgb RGB, percent int) string {
	h, s, l := rgb.colorful().Hsl()
	l = clampUnit(l * float64(percent) / 100)
	return fromHsl(h, s, l)
}

func fromHsl(h, s, l float64) string {
	return colorful.Hsl(h, s, clampUnit(l)).Clamped().Hex()
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
