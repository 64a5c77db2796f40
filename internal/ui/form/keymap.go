package form

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the form key bindings.
type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	AddAnswer    key.Binding
	RemoveAnswer key.Binding
	Submit       key.Binding
	Refresh      key.Binding
	Quit         key.Binding
}

// defaultKeyMap returns the standard form bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		AddAnswer: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add answer"),
		),
		RemoveAnswer: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove answer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the one-line help footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AddAnswer, k.RemoveAnswer, k.Submit, k.Quit}
}

// FullHelp lists all bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.AddAnswer, k.RemoveAnswer},
		{k.Submit, k.Refresh, k.Quit},
	}
}
