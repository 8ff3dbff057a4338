package config

import (
	"time"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	"github.com/alexisbeaulieu97/avatint/internal/frame"
	"github.com/alexisbeaulieu97/avatint/internal/layout"
)

// Config represents the avatint configuration document. Every section is
// optional; absent values fall back to Default().
type Config struct {
	Parts      []PartConfig     `yaml:"parts,omitempty" validate:"omitempty,max=4,dive"`
	Layout     layout.Options   `yaml:"layout,omitempty"`
	Brightness BrightnessConfig `yaml:"brightness,omitempty"`
	Frame      FrameConfig      `yaml:"frame,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// PartConfig overrides the startup color of one avatar part.
type PartConfig struct {
	Key        string `yaml:"key" validate:"required,part_key"`
	Label      string `yaml:"label,omitempty" validate:"omitempty,max=40"`
	Color      string `yaml:"color,omitempty" validate:"omitempty,hexcolor"`
	Brightness *int   `yaml:"brightness,omitempty" validate:"omitempty,min=0,max=200"`
}

// BrightnessConfig selects the brightness transform.
type BrightnessConfig struct {
	Mode      string `yaml:"mode,omitempty" validate:"omitempty,brightness_mode"`
	CacheSize *int   `yaml:"cache_size,omitempty" validate:"omitempty,min=0,max=65536"`
}

// FrameConfig controls redraw coalescing.
type FrameConfig struct {
	IntervalMS int `yaml:"interval_ms,omitempty" validate:"omitempty,min=1,max=1000"`
}

// OutputConfig names where rendered surfaces are written from the TUI.
type OutputConfig struct {
	SVGPath string `yaml:"svg_path,omitempty"`
}

// Default returns the stock configuration.
func Default() *Config {
	size := color.DefaultCacheSize
	return &Config{
		Layout:     layout.DefaultOptions(),
		Brightness: BrightnessConfig{Mode: string(color.ModeBlend), CacheSize: &size},
		Frame:      FrameConfig{IntervalMS: int(frame.DefaultInterval / time.Millisecond)},
		Output:     OutputConfig{SVGPath: "avatar.svg"},
	}
}

// FrameInterval returns the redraw interval.
func (c *Config) FrameInterval() time.Duration {
	if c == nil || c.Frame.IntervalMS <= 0 {
		return frame.DefaultInterval
	}
	return time.Duration(c.Frame.IntervalMS) * time.Millisecond
}

// CacheSize returns the color cache capacity.
func (c *Config) CacheSize() int {
	if c == nil || c.Brightness.CacheSize == nil {
		return color.DefaultCacheSize
	}
	return *c.Brightness.CacheSize
}

// Mode returns the brightness mode, defaulting to blend.
func (c *Config) Mode() color.Mode {
	if c == nil {
		return color.ModeBlend
	}
	mode, err := color.ParseMode(c.Brightness.Mode)
	if err != nil {
		return color.ModeBlend
	}
	return mode
}
