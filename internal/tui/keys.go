package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Roth      key.Binding
	HECM      key.Binding
	Inherited key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		NextScene: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next calculator")),
		PrevScene: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous calculator")),
		Roth:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "roth")),
		HECM:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "reverse mortgage")),
		Inherited: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "inherited ira")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NextScene, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextScene, k.PrevScene, k.Roth, k.HECM, k.Inherited},
		{k.Help, k.Quit},
	}
}
