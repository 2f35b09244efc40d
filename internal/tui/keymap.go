package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Intake
	NextSlot key.Binding
	Browse   key.Binding
	Clear    key.Binding
	Submit   key.Binding

	// Verification intents
	Approve  key.Binding
	Flag     key.Binding
	Reupload key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSlot: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("Tab", "switch slot"),
		),
		Browse: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "browse for file"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "clear slot"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "process"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "approve & save"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag for review"),
		),
		Reupload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "re-upload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}
