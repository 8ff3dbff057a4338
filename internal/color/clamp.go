package color

import (
	"math"
	"strconv"
	"strings"
)

// Channel and brightness domains shared by every numeric control.
const (
	ChannelMin    = 0
	ChannelMax    = 255
	BrightnessMin = 0
	BrightnessMax = 200
	// BrightnessNeutral leaves a color unchanged.
	BrightnessNeutral = 100
)

// Clamp restricts value to [min, max]. Non-finite values map to min and
// fractional values round to the nearest integer.
func Clamp(value float64, min, max int) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return min
	}
	v := math.Round(value)
	if v < float64(min) {
		return min
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

// ClampInput coerces a raw control value to a number and clamps it.
// Empty or unparsable input maps to min.
func ClampInput(raw string, min, max int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return min
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return min
	}
	return Clamp(v, min, max)
}
