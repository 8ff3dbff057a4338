package config

import (
	"strings"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/color"
)

// applyDefaults fills fields a document left empty.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Layout.DefaultWidth == 0 {
		cfg.Layout.DefaultWidth = d.Layout.DefaultWidth
	}
	if cfg.Layout.MinHeight == 0 {
		cfg.Layout.MinHeight = d.Layout.MinHeight
	}
	if cfg.Layout.AspectRatio == 0 {
		cfg.Layout.AspectRatio = d.Layout.AspectRatio
	}
	if strings.TrimSpace(cfg.Brightness.Mode) == "" {
		cfg.Brightness.Mode = d.Brightness.Mode
	}
	if cfg.Brightness.CacheSize == nil {
		cfg.Brightness.CacheSize = d.Brightness.CacheSize
	}
	if cfg.Frame.IntervalMS == 0 {
		cfg.Frame.IntervalMS = d.Frame.IntervalMS
	}
	if strings.TrimSpace(cfg.Output.SVGPath) == "" {
		cfg.Output.SVGPath = d.Output.SVGPath
	}
}

// PartOverrides merges the configured parts onto the built-in defaults.
// Unset fields keep their default value.
func (c *Config) PartOverrides() ([]avatar.Part, error) {
	if c == nil || len(c.Parts) == 0 {
		return nil, nil
	}

	defaults := make(map[avatar.Key]avatar.Part, len(avatar.Keys))
	for _, p := range avatar.DefaultParts() {
		defaults[p.Key] = p
	}

	out := make([]avatar.Part, 0, len(c.Parts))
	for _, pc := range c.Parts {
		key, err := avatar.ParseKey(pc.Key)
		if err != nil {
			return nil, err
		}
		part := defaults[key]
		if pc.Label != "" {
			part.Label = pc.Label
		}
		if pc.Color != "" {
			rgb, err := color.ParseHex(pc.Color)
			if err != nil {
				return nil, err
			}
			part.R, part.G, part.B = int(rgb.R), int(rgb.G), int(rgb.B)
		}
		if pc.Brightness != nil {
			part.Bright = *pc.Brightness
		}
		out = append(out, part)
	}
	return out, nil
}
