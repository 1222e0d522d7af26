package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/theme"
)

// Styles is the style table for every viewer screen, derived from the
// active theme so a toggle swaps the whole table at once.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Caption      lipgloss.Style
	CaptionError lipgloss.Style
	Hint         lipgloss.Style
	ActiveDot    lipgloss.Style
	InactiveDot  lipgloss.Style
	ErrorBanner  lipgloss.Style
	EmptyState   lipgloss.Style
	SearchPrompt lipgloss.Style
	Placeholder  lipgloss.Style
	ZoomCaption  lipgloss.Style
	ZoomHint     lipgloss.Style
	Backdrop     lipgloss.Style
	HelpBox      lipgloss.Style
}

// NewStyles builds the style table for a theme.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		Header: lipgloss.NewStyle().
			Foreground(t.Muted),

		Caption: lipgloss.NewStyle().
			Foreground(t.Text).
			Italic(true),

		CaptionError: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(t.Muted),

		ActiveDot: lipgloss.NewStyle().
			Foreground(t.Accent),

		InactiveDot: lipgloss.NewStyle().
			Foreground(t.Muted),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(t.Accent),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 4),

		ZoomCaption: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true).
			Align(lipgloss.Center),

		ZoomHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Align(lipgloss.Center),

		Backdrop: lipgloss.NewStyle().
			Background(t.Background),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Background(t.Surface).
			Padding(1, 2),
	}
}
