package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the interactive UI.
type KeyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// View switching
	ViewExtensions key.Binding
	ViewProfiles   key.Binding
	NextTab        key.Binding

	// Navigation (vim-style + arrows)
	Up   key.Binding
	Down key.Binding

	// Selection
	Select key.Binding
	Back   key.Binding

	// Actions
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Launch     key.Binding
	Search     key.Binding
	Refresh    key.Binding
	SetDefault key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		ViewExtensions: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "extensions"),
		),
		ViewProfiles: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "profiles"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Launch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "launch"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		SetDefault: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "set default"),
		),
	}
}

// keys is the shared key map instance.
var keys = DefaultKeyMap()
