// Package controls describes the per-part input controls of the control panel.
package controls

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
)

// InputType distinguishes number boxes from sliders.
type InputType string

const (
	InputNumber InputType = "number"
	InputRange  InputType = "range"
)

// Control is one bounded integer input bound to a part field.
type Control struct {
	ID    string
	Label string
	Type  InputType
	Part  avatar.Key
	Field avatar.Field
	Min   int
	Max   int
	Step  int
	Value int
}

// Format renders the control's value the way the panel displays it.
func (c Control) Format() string {
	if c.Type == InputRange {
		return fmt.Sprintf("%d%%", c.Value)
	}
	return strconv.Itoa(c.Value)
}

// Bounds returns the inclusive range the control accepts.
func (c Control) Bounds() (int, int) {
	return c.Min, c.Max
}

// Card groups the controls of a single part.
type Card struct {
	Part     avatar.Key
	Title    string
	Controls []Control
}

// Panel is the full control surface.
type Panel struct {
	Cards []Card
}

// ID returns the element identifier for a part field, e.g. "r-head" or "br-leg".
func ID(k avatar.Key, f avatar.Field) string {
	if f == avatar.FieldBright {
		return "br-" + string(k)
	}
	return string(f) + "-" + string(k)
}

func labelFor(f avatar.Field) string {
	switch f {
	case avatar.FieldR:
		return "R"
	case avatar.FieldG:
		return "G"
	case avatar.FieldB:
		return "B"
	default:
		return "Brightness %"
	}
}

// Build creates the panel from the current state.
func Build(state *avatar.State) Panel {
	var panel Panel
	for _, part := range state.Parts() {
		card := Card{Part: part.Key, Title: part.Label}
		for _, f := range avatar.Fields {
			lo, hi := f.Bounds()
			typ := InputNumber
			if f == avatar.FieldBright {
				typ = InputRange
			}
			card.Controls = append(card.Controls, Control{
				ID:    ID(part.Key, f),
				Label: labelFor(f),
				Type:  typ,
				Part:  part.Key,
				Field: f,
				Min:   lo,
				Max:   hi,
				Step:  1,
				Value: part.Value(f),
			})
		}
		panel.Cards = append(panel.Cards, card)
	}
	return panel
}

// Controls flattens the panel into focus order.
func (p Panel) Controls() []Control {
	var out []Control
	for _, card := range p.Cards {
		out = append(out, card.Controls...)
	}
	return out
}

// Find returns the control with the given ID.
func (p Panel) Find(id string) (Control, bool) {
	for _, c := range p.Controls() {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}
