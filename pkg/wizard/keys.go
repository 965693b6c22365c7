package wizard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	Light      key.Binding
	Heavy      key.Binding
	Comparison key.Binding
	Reset      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Light: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light details"),
		),
		Heavy: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "heavy details"),
		),
		Comparison: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comparison"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
