package color

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Mode selects how brightness percentages are applied.
type Mode string

const (
	// ModeBlend moves lightness toward black below 100 and toward white above it.
	ModeBlend Mode = "blend"
	// ModeScale multiplies lightness by the percentage.
	ModeScale Mode = "scale"
)

// DefaultCacheSize bounds the number of memoized colors.
const DefaultCacheSize = 256

// ParseMode resolves a mode name; empty selects ModeBlend.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeBlend:
		return ModeBlend, nil
	case ModeScale:
		return ModeScale, nil
	default:
		return "", fmt.Errorf("unknown brightness mode %q", name)
	}
}

type cacheKey struct {
	rgb     RGB
	percent int
}

// Adjuster applies a brightness mode and memoizes results.
type Adjuster struct {
	mode  Mode
	cache *lru.Cache[cacheKey, string]
}

// NewAdjuster creates an Adjuster. A non-positive size disables caching.
func NewAdjuster(mode Mode, size int) *Adjuster {
	a := &Adjuster{mode: mode}
	if a.mode == "" {
		a.mode = ModeBlend
	}
	if size > 0 {
		cache, err := lru.New[cacheKey, string](size)
		if err == nil {
			a.cache = cache
		}
	}
	return a
}

// Mode reports the active brightness mode.
func (a *Adjuster) Mode() Mode {
	return a.mode
}

// Color returns the display hex for rgb at the given brightness percentage.
// The percentage is clamped to [0,200] first.
func (a *Adjuster) Color(rgb RGB, percent int) string {
	percent = Clamp(float64(percent), BrightnessMin, BrightnessMax)
	key := cacheKey{rgb: rgb, percent: percent}
	if a.cache != nil {
		if hex, ok := a.cache.Get(key); ok {
			return hex
		}
	}

	var hex string
	switch a.mode {
	case ModeScale:
		hex = ScaleBrightness(rgb, percent)
	default:
		hex = AdjustBrightness(rgb, percent)
	}

	if a.cache != nil {
		a.cache.Add(key, hex)
	}
	return hex
}

// Cached reports how many colors are memoized.
func (a *Adjuster) Cached() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}
