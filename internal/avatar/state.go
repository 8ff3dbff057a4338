package avatar

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/avatint/internal/color"
	avaerrors "github.com/alexisbeaulieu97/avatint/pkg/errors"
)

// DefaultParts returns the startup colors for every part.
func DefaultParts() []Part {
	return []Part{
		{Key: KeyHead, Label: "Head / skin", R: 246, G: 215, B: 176, Bright: color.BrightnessNeutral},
		{Key: KeyBody, Label: "Top", R: 59, G: 130, B: 246, Bright: color.BrightnessNeutral},
		{Key: KeyLeg, Label: "Pants", R: 16, G: 185, B: 129, Bright: color.BrightnessNeutral},
		{Key: KeyShoe, Label: "Shoes", R: 55, G: 65, B: 81, Bright: color.BrightnessNeutral},
	}
}

// State owns the color state of the fixed part set. Parts are never added
// or removed after construction; only their fields change.
type State struct {
	parts map[Key]*Part
}

// NewState builds a State from overrides applied on top of DefaultParts.
// Overrides for keys outside the part set are rejected.
func NewState(overrides ...Part) (*State, error) {
	s := &State{parts: make(map[Key]*Part, len(Keys))}
	for _, p := range DefaultParts() {
		p := p
		s.parts[p.Key] = &p
	}
	for _, o := range overrides {
		existing, ok := s.parts[o.Key]
		if !ok {
			return nil, avaerrors.NewValidationError(string(o.Key), "not an avatar part", avaerrors.ErrUnknownPart)
		}
		label := existing.Label
		*existing = o
		if strings.TrimSpace(existing.Label) == "" {
			existing.Label = label
		}
		existing.normalize()
	}
	return s, nil
}

// Part returns a copy of the part with the given key.
func (s *State) Part(k Key) (Part, bool) {
	p, ok := s.parts[k]
	if !ok {
		return Part{}, false
	}
	return *p, true
}

// Parts returns copies of every part in display order.
func (s *State) Parts() []Part {
	out := make([]Part, 0, len(Keys))
	for _, k := range Keys {
		out = append(out, *s.parts[k])
	}
	return out
}

// Set clamps raw into the field's domain and stores it, returning the stored
// value. Out-of-range or non-numeric input is corrected, never rejected.
func (s *State) Set(k Key, f Field, raw string) (int, error) {
	p, ok := s.parts[k]
	if !ok {
		return 0, avaerrors.NewValidationError(string(k), "not an avatar part", avaerrors.ErrUnknownPart)
	}
	f, err := ParseField(string(f))
	if err != nil {
		return 0, err
	}
	lo, hi := f.Bounds()
	v := color.ClampInput(raw, lo, hi)
	p.set(f, v)
	return v, nil
}

// Assignment is a parsed "part.field=value" edit.
type Assignment struct {
	Key   Key
	Field Field
	Raw   string
}

// ParseAssignment parses "head.r=999" style edits.
func ParseAssignment(expr string) (Assignment, error) {
	lhs, raw, ok := strings.Cut(expr, "=")
	if !ok {
		return Assignment{}, avaerrors.NewValidationError(expr, "expected part.field=value", nil)
	}
	partName, fieldName, ok := strings.Cut(lhs, ".")
	if !ok {
		return Assignment{}, avaerrors.NewValidationError(expr, "expected part.field=value", nil)
	}
	k, err := ParseKey(partName)
	if err != nil {
		return Assignment{}, err
	}
	f, err := ParseField(fieldName)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Key: k, Field: f, Raw: strings.TrimSpace(raw)}, nil
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s.%s=%s", a.Key, a.Field, a.Raw)
}
