// Package view keeps the avatar scene in sync with part state and container size.
package view

import (
	"io"
	"strconv"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/color"
	"github.com/alexisbeaulieu97/avatint/internal/frame"
	"github.com/alexisbeaulieu97/avatint/internal/layout"
	"github.com/alexisbeaulieu97/avatint/internal/logger"
	"github.com/alexisbeaulieu97/avatint/internal/scene"
)

// Options configures a View.
type Options struct {
	Layout   layout.Options
	Adjuster *color.Adjuster
	Logger   *logger.Logger
}

// View owns the part state and the retained scene rendered from it.
type View struct {
	state    *avatar.State
	scene    *scene.Scene
	adjuster *color.Adjuster
	opts     layout.Options
	log      *logger.Logger

	geometry     layout.Geometry
	slot         frame.Slot
	pendingWidth int
	redraws      int
}

// New creates a View over state. Nothing is drawn until Draw or a resize frame runs.
func New(state *avatar.State, opts Options) *View {
	adj := opts.Adjuster
	if adj == nil {
		adj = color.NewAdjuster(color.ModeBlend, color.DefaultCacheSize)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &View{
		state:    state,
		scene:    scene.New(),
		adjuster: adj,
		opts:     opts.Layout,
		log:      log.Component("view"),
	}
}

// State returns the owned part state.
func (v *View) State() *avatar.State {
	return v.state
}

// Scene returns the retained scene.
func (v *View) Scene() *scene.Scene {
	return v.scene
}

// Geometry returns the last rendered geometry snapshot.
func (v *View) Geometry() layout.Geometry {
	return v.geometry
}

// Layout computes geometry for a measured container width.
func (v *View) Layout(width int) layout.Geometry {
	return layout.Compute(width, v.opts)
}

// Render reconciles the scene with g and repaints it. Rendering the same
// geometry twice leaves the scene untouched.
func (v *View) Render(g layout.Geometry) scene.Patch {
	v.geometry = g
	v.scene.SetViewBox(g.Width, g.Height)
	patch := v.scene.Reconcile(Nodes(g))
	v.Paint()
	return patch
}

// Draw lays out for width and renders the result.
func (v *View) Draw(width int) scene.Patch {
	g := v.Layout(width)
	patch := v.Render(g)
	v.redraws++
	v.log.Debug("redraw", "width", g.Width, "height", g.Height,
		"created", len(patch.Created), "updated", len(patch.Updated), "removed", len(patch.Removed))
	return patch
}

// Redraws returns how many layout cycles have run.
func (v *View) Redraws() int {
	return v.redraws
}

// PartColor returns the display color for a part.
func (v *View) PartColor(k avatar.Key) string {
	p, ok := v.state.Part(k)
	if !ok {
		return ""
	}
	return v.adjuster.Color(p.RGB(), p.Bright)
}

// Paint applies every part's display color to its shapes and returns the
// number of fills that changed.
func (v *View) Paint() int {
	changed := 0
	for _, k := range avatar.Keys {
		hex := v.PartColor(k)
		for _, class := range partClasses[k] {
			changed += v.scene.SetFill(class, hex)
		}
	}
	return changed
}

// SetField clamps raw into the field's domain, stores it, repaints, and
// returns the corrected value for the control to display.
func (v *View) SetField(k avatar.Key, f avatar.Field, raw string) (string, error) {
	val, err := v.state.Set(k, f, raw)
	if err != nil {
		v.log.Warn("rejected edit", "part", string(k), "field", string(f))
		return "", err
	}
	changed := v.Paint()
	v.log.Debug("field updated", "part", string(k), "field", string(f), "raw", raw, "value", val, "fills", changed)
	return strconv.Itoa(val), nil
}

// Resize records a container size change and requests a coalesced redraw.
// Only the token returned by the latest call is accepted by Frame.
func (v *View) Resize(width, height int) frame.Token {
	v.pendingWidth = width
	tok := v.slot.Request()
	v.log.Debug("resize requested", "width", width, "height", height, "token", uint64(tok))
	return tok
}

// Frame runs the redraw scheduled under tok, reporting whether it ran.
// Superseded tokens are ignored.
func (v *View) Frame(tok frame.Token) bool {
	if !v.slot.Take(tok) {
		return false
	}
	v.Draw(v.pendingWidth)
	return true
}

// CancelFrame drops a pending redraw.
func (v *View) CancelFrame() bool {
	return v.slot.Cancel()
}

// WriteSVG writes the current scene.
func (v *View) WriteSVG(w io.Writer) error {
	return v.scene.WriteSVG(w)
}
