package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/gallery"
	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewBrowse:
		return m.renderBrowseView()
	case ViewZoom:
		return m.renderZoomView()
	case ViewHelp:
		return m.renderHelpView()
	case ViewInfo:
		return m.renderInfoView()
	default:
		return m.renderBrowseView()
	}
}

// renderBrowseView renders the slideshow screen.
func (m Model) renderBrowseView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n\n")

	if m.showError {
		content.WriteString(m.styles.ErrorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if !m.Active() {
		// Empty or inert slideshow: no image, no dots, no navigation.
		// Only the fallback caption remains visible.
		content.WriteString(m.styles.EmptyState.Render(gallery.DisabledCaption))
		content.WriteString("\n\n")
		content.WriteString(m.renderFooter())
		return content.String()
	}

	content.WriteString(m.renderImagePane())
	content.WriteString("\n")
	content.WriteString(m.renderCaption())
	content.WriteString("\n")
	content.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.paginator.View()))
	content.WriteString("\n")

	if m.searching {
		content.WriteString(m.renderSearchPrompt())
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())
	return content.String()
}

// renderHeader renders the title line with the slide counter.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render(m.name)
	if !m.Active() {
		return title
	}

	counter := m.styles.Header.Render(
		fmt.Sprintf("%d/%d", m.show.Index()+1, m.show.Len()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", counter)
}

// renderImagePane renders the committed image, a loading placeholder,
// or the failure placeholder.
func (m Model) renderImagePane() string {
	rows := m.browseImageRows()

	if m.img == nil {
		var placeholder string
		if m.failed {
			placeholder = m.styles.Placeholder.Render(m.styles.CaptionError.Render(m.frame.Alt))
		} else {
			placeholder = m.styles.Placeholder.Render(m.spinner.View() + " Loading…")
		}
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, placeholder)
	}

	// A pending load dims the still-visible previous image.
	rendered := imaging.Render(m.img, m.width, rows, m.loading)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, rendered)
}

// renderCaption renders the caption bar beneath the image.
func (m Model) renderCaption() string {
	caption := m.frame.Caption
	style := m.styles.Caption
	if m.failed {
		style = m.styles.CaptionError
	}
	if caption == "" && m.loading {
		caption = " "
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(caption))
}

// renderSearchPrompt renders the live caption filter line.
func (m Model) renderSearchPrompt() string {
	prompt := m.styles.SearchPrompt.Render("/" + m.query)
	count := m.styles.Hint.Render(fmt.Sprintf("  %d match(es)", len(m.matches)))
	return prompt + count
}

// renderFooter renders the key hints.
func (m Model) renderFooter() string {
	return m.styles.Hint.Render(m.help.View(m.keys))
}

// renderZoomView renders the fullscreen image with its caption and the
// close hint. Everything else on screen is backdrop.
func (m Model) renderZoomView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	imageArea := m.styles.Backdrop.
		Width(m.width).
		Height(m.height - zoomChromeRows).
		Align(lipgloss.Center, lipgloss.Center)

	var body string
	if m.zoomImage != nil {
		body = imaging.Render(m.zoomImage, m.width, m.height-zoomChromeRows, false)
	}

	caption := m.styles.ZoomCaption.Width(m.width).Render(m.zoomCaption)
	hint := m.styles.ZoomHint.Width(m.width).Render("esc/x: close  •  click outside the image to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		imageArea.Render(body),
		caption,
		"",
		hint,
	)
}

// renderHelpView renders the key binding overlay.
func (m Model) renderHelpView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := m.styles.Title.Render("Vitrine Help")

	helpContent := `
Browse:
  ←/h/p, →/l/n  Previous / next slide (wraps around)
  1-9           Jump to slide by number
  Enter, click  Open the fullscreen view
  t             Toggle light/dark theme
  /             Filter slides by caption
  i             Gallery description
  ?             Toggle this help
  q, Ctrl+C     Quit

Fullscreen:
  Esc, x        Close
  click         Outside the image closes; on the image stays open
`

	box := m.styles.HelpBox.Render(helpContent)
	footer := m.styles.Hint.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(lipgloss.Left, title, box, footer)
}

// renderInfoView renders the gallery description as markdown.
func (m Model) renderInfoView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := m.infoCache
	if body == "" {
		body = m.renderDescription()
	}

	title := m.styles.Title.Render(m.name)
	footer := m.styles.Hint.Render("Press i or Esc to go back")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

// renderDescription converts the gallery description to styled terminal
// markdown, matching the active theme.
func (m Model) renderDescription() string {
	rendered, err := glamour.Render(m.description, m.thm.Name)
	if err != nil {
		return m.description
	}
	return rendered
}
