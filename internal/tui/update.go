package tui

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/avatint/internal/frame"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		tok := m.view.Resize(containerWidth(msg.Width), msg.Height)
		return m, frameCmd(m.frameInterval, tok)

	case frameMsg:
		m.view.Frame(msg.token)
		return m, nil

	case svgWrittenMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("write failed: %v", msg.err), true)
			m.log.Error(msg.err, "svg write failed", "path", msg.path)
		} else {
			m.setStatus("wrote "+msg.path, false)
			m.log.Info("svg written", "path", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func frameCmd(interval time.Duration, tok frame.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{token: tok}
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Inc):
		m.nudge(1)
		return m, nil
	case key.Matches(msg, m.keys.Dec):
		m.nudge(-1)
		return m, nil
	case key.Matches(msg, m.keys.IncLarge):
		m.nudge(10)
		return m, nil
	case key.Matches(msg, m.keys.DecLarge):
		m.nudge(-10)
		return m, nil
	case key.Matches(msg, m.keys.Write):
		return m, m.writeSVG()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	if !editKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.commit(m.inputs[m.focus].Value())
	return m, cmd
}

// editKey reports whether msg may change a numeric field.
func editKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' && r != '.' {
				return false
			}
		}
		return true
	}
	return false
}

// commit stores raw through the view and snaps the input to the clamped value.
func (m *Model) commit(raw string) {
	c := m.controls[m.focus]
	shown, err := m.view.SetField(c.Part, c.Field, raw)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if m.inputs[m.focus].Value() != shown {
		m.inputs[m.focus].SetValue(shown)
		m.inputs[m.focus].CursorEnd()
	}
	v, _ := strconv.Atoi(shown)
	m.controls[m.focus].Value = v
	m.status = ""
}

func (m *Model) nudge(delta int) {
	c := m.controls[m.focus]
	m.commit(strconv.Itoa(c.Value + delta))
}

func (m *Model) moveFocus(delta int) {
	n := len(m.inputs)
	if n == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
	m.inputs[m.focus].CursorEnd()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// writeSVG snapshots the scene now and writes it off the event loop.
func (m Model) writeSVG() tea.Cmd {
	path := m.svgPath
	if path == "" {
		return func() tea.Msg {
			return svgWrittenMsg{err: fmt.Errorf("no output path configured")}
		}
	}
	var buf bytes.Buffer
	if err := m.view.WriteSVG(&buf); err != nil {
		return func() tea.Msg { return svgWrittenMsg{path: path, err: err} }
	}
	data := buf.Bytes()
	return func() tea.Msg {
		err := os.WriteFile(path, data, 0o644)
		return svgWrittenMsg{path: path, err: err}
	}
}
