package viewer

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap collects the viewer's key bindings. The help bubble renders
// its footer from these.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Zoom     key.Binding
	Close    key.Binding
	Theme    key.Binding
	Search   key.Binding
	Info     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "zoom"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "about"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Zoom, k.Theme, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Zoom},
		{k.Theme, k.Search, k.Info},
		{k.Close, k.Help, k.Quit},
	}
}
