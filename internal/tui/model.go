// Package tui hosts the avatar customizer in a terminal. The terminal window
// is the container whose width drives layout, and each control of the panel
// is a text input bound to one part field.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/avatint/internal/controls"
	"github.com/alexisbeaulieu97/avatint/internal/frame"
	"github.com/alexisbeaulieu97/avatint/internal/logger"
	"github.com/alexisbeaulieu97/avatint/internal/view"
)

const (
	// cellPixels is the container width, in layout pixels, of one terminal column.
	cellPixels = 8
	// panelWidth is the number of columns reserved for the control panel.
	panelWidth = 34
)

// frameMsg fires a coalesced redraw.
type frameMsg struct {
	token frame.Token
}

// svgWrittenMsg reports the outcome of writing the rendered surface.
type svgWrittenMsg struct {
	path string
	err  error
}

// Options configures a Model.
type Options struct {
	FrameInterval time.Duration
	SVGPath       string
	Logger        *logger.Logger
}

// Model is the Bubbletea state for the customizer.
type Model struct {
	view     *view.View
	controls []controls.Control
	inputs   []textinput.Model
	focus    int

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	frameInterval time.Duration
	svgPath       string
	status        string
	statusErr     bool
	log           *logger.Logger
}

// NewModel builds the control panel for v's state and draws the avatar at
// the default container width.
func NewModel(v *view.View, opts Options) Model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = frame.DefaultInterval
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	panel := controls.Build(v.State())
	ctrls := panel.Controls()
	inputs := make([]textinput.Model, len(ctrls))
	for i, c := range ctrls {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 6
		ti.Width = 4
		ti.SetValue(strconv.Itoa(c.Value))
		inputs[i] = ti
	}

	m := Model{
		view:          v,
		controls:      ctrls,
		inputs:        inputs,
		keys:          defaultKeyMap(),
		help:          help.New(),
		frameInterval: interval,
		svgPath:       opts.SVGPath,
		log:           log.Component("tui"),
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	v.Draw(0)
	return m
}

// Init starts the Bubbletea program. The first tea.WindowSizeMsg triggers layout.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focused returns the control that receives input.
func (m Model) Focused() controls.Control {
	return m.controls[m.focus]
}

// Value returns the displayed value of the control with the given ID.
func (m Model) Value(id string) (string, bool) {
	for i, c := range m.controls {
		if c.ID == id {
			return m.inputs[i].Value(), true
		}
	}
	return "", false
}

// AvatarView returns the view driven by this model.
func (m Model) AvatarView() *view.View {
	return m.view
}

// containerWidth converts the preview area of a terminal into layout pixels.
func containerWidth(termWidth int) int {
	cols := termWidth - panelWidth
	if cols <= 0 {
		return 0
	}
	return cols * cellPixels
}
