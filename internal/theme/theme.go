package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette every style table is built from. Exactly two
// ship with the viewer; the active one is persisted under the "theme"
// preference key and restored at startup.
type Theme struct {
	Name string

	Primary    lipgloss.Color // titles, selected elements
	Accent     lipgloss.Color // active dot, highlighted caption
	Muted      lipgloss.Color // hints, separators, inactive dots
	Text       lipgloss.Color // default foreground
	Error      lipgloss.Color // load-failure caption
	Background lipgloss.Color // overlay fill behind the zoom view
	Surface    lipgloss.Color // boxes, dialogs
}

// Dark is the default theme: light text on a dark surface.
func Dark() Theme {
	return Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("99"),
		Accent:     lipgloss.Color("212"),
		Muted:      lipgloss.Color("245"),
		Text:       lipgloss.Color("252"),
		Error:      lipgloss.Color("196"),
		Background: lipgloss.Color("235"),
		Surface:    lipgloss.Color("237"),
	}
}

// Light is the inverse palette for light terminals.
func Light() Theme {
	return Theme{
		Name:       "light",
		Primary:    lipgloss.Color("55"),
		Accent:     lipgloss.Color("161"),
		Muted:      lipgloss.Color("243"),
		Text:       lipgloss.Color("235"),
		Error:      lipgloss.Color("124"),
		Background: lipgloss.Color("254"),
		Surface:    lipgloss.Color("252"),
	}
}

// ByName resolves a persisted theme name. Unknown names fall back to
// dark so a stale preference can never break startup.
func ByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}
