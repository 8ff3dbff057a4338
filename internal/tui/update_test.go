package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/view"
)

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	state, err := avatar.NewState()
	require.NoError(t, err)
	return NewModel(view.New(state, view.Options{}), opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func clearField(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	return m
}

func TestNewModelDrawsDefaultLayout(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	require.Equal(t, 1, m.AvatarView().Redraws())
	require.Equal(t, 600, m.AvatarView().Geometry().Width)
	require.Equal(t, "r-head", m.Focused().ID)

	v, ok := m.Value("br-shoe")
	require.True(t, ok)
	require.Equal(t, "100", v)
}

func TestTypingOverMaxSnapsToBound(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	m = clearField(t, m)
	m = typeText(t, m, "999")

	v, _ := m.Value("r-head")
	require.Equal(t, "255", v)
	head, _ := m.AvatarView().State().Part(avatar.KeyHead)
	require.Equal(t, 255, head.R)

	fill := m.AvatarView().Scene().ByClass("head")[0].Fill
	require.Equal(t, "#ffd7b0", fill)
}

func TestNonNumericKeysAreIgnored(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	m = typeText(t, m, "x")

	v, _ := m.Value("r-head")
	require.Equal(t, "246", v)
}

func TestFocusNavigationWraps(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "br-shoe", m.Focused().ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "r-head", m.Focused().ID)

	for i := 0; i < 4; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, "r-body", m.Focused().ID)
}

func TestNudgeBrightnessClamps(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	// move to br-leg: head(4) + body(4) + r,g,b of leg
	for i := 0; i < 11; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, "br-leg", m.Focused().ID)

	for i := 0; i < 15; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	}
	v, _ := m.Value("br-leg")
	require.Equal(t, "0", v)

	for _, n := range m.AvatarView().Scene().ByClass("leg") {
		require.Equal(t, "#000000", n.Fill)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	v, _ = m.Value("br-leg")
	require.Equal(t, "1", v)
}

func TestWindowResizeBurstCoalesces(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{FrameInterval: time.Millisecond})
	before := m.AvatarView().Redraws()

	var cmds []tea.Cmd
	for w := 100; w < 110; w++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.WindowSizeMsg{Width: w, Height: 40})
		require.NotNil(t, cmd)
		cmds = append(cmds, cmd)
	}

	for _, cmd := range cmds {
		msg := cmd()
		_, isFrame := msg.(frameMsg)
		require.True(t, isFrame)
		m, _ = update(t, m, msg)
	}

	require.Equal(t, before+1, m.AvatarView().Redraws())
	require.Equal(t, containerWidth(109), m.AvatarView().Geometry().Width)
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.svg")
	m := newModel(t, Options{SVGPath: path})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `class="head"`)
	require.Contains(t, m.status, "wrote")
	require.False(t, m.statusErr)
}

func TestWriteSVGWithoutPath(t *testing.T) {
	t.Parallel()

	m := newModel(t, Options{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = update(t, m, cmd())
	require.True(t, m.statusErr)
}
