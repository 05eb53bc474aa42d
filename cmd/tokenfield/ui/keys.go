package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the set of bindings the model reacts to. Everything else is
// typed into the input.
type KeyMap struct {
	Commit key.Binding
	Remove key.Binding
	Prev   key.Binding
	Next   key.Binding
	Blur   key.Binding
	Done   key.Binding
	Abort  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "remove"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc", "ctrl+d"),
			key.WithHelp("esc", "done"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Remove, k.Prev, k.Blur, k.Done, k.Abort}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Remove},
		{k.Prev, k.Next},
		{k.Blur, k.Done, k.Abort},
	}
}
