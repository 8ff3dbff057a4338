package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	IncLarge key.Binding
	DecLarge key.Binding
	Write    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Inc:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "+1")),
		Dec:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "-1")),
		IncLarge: key.NewBinding(key.WithKeys("shift+right", "pgup"), key.WithHelp("shift+→", "+10")),
		DecLarge: key.NewBinding(key.WithKeys("shift+left", "pgdown"), key.WithHelp("shift+←", "-10")),
		Write:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "write svg")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Inc, k.Dec, k.Write, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Inc, k.Dec, k.IncLarge, k.DecLarge},
		{k.Write, k.Help, k.Quit},
	}
}
