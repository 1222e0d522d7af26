package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/gallery"
	"github.com/alexisbeaulieu97/vitrine/internal/search"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.infoCache = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ImageLoadedMsg:
		if msg.Seq != m.loadSeq {
			// A newer request superseded this one; drop the commit.
			return m, nil
		}
		entry, ok := m.show.Entry(msg.Index)
		if !ok {
			return m, nil
		}
		m.frame = gallery.FrameFor(entry)
		m.img = msg.Image
		m.frameIndex = msg.Index
		m.failed = false
		m.loading = false
		m.log.WithFields(map[string]any{"source": msg.Source}).Debug("image committed")
		return m, nil

	case ImageLoadErrorMsg:
		if msg.Seq != m.loadSeq {
			return m, nil
		}
		m.frame = gallery.ErrorFrame()
		m.img = nil
		m.frameIndex = msg.Index
		m.failed = true
		m.loading = false
		m.log.WithFields(map[string]any{"source": msg.Source}).Error(msg.Err, "image load failed")
		return m, nil

	case ThemeSavedMsg:
		return m, nil

	case ThemeSaveErrorMsg:
		m.showError = true
		m.errorMsg = fmt.Sprintf("Failed to save theme preference: %s", msg.Err.Error())
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keyboard input based on the current view mode.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewBrowse:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	case ViewZoom:
		return m.handleZoomKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	case ViewInfo:
		return m.handleInfoKeys(msg)
	default:
		return m, nil
	}
}

// handleBrowseKeys handles keys in the browse view.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Previous):
		if !m.Active() {
			return m, nil
		}
		index := m.show.Previous()
		m.syncPaginator()
		return m, m.requestRender(index)

	case key.Matches(msg, m.keys.Next):
		if !m.Active() {
			return m, nil
		}
		index := m.show.Next()
		m.syncPaginator()
		return m, m.requestRender(index)

	case key.Matches(msg, m.keys.Zoom):
		return m.openZoom()

	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(m.thm.Toggle())
		return m, saveThemeCmd(m.store, m.thm.Name)

	case key.Matches(msg, m.keys.Search):
		if !m.Active() {
			return m, nil
		}
		m.searching = true
		m.query = ""
		m.matches = search.Filter("", m.show.Entries())
		return m, nil

	case key.Matches(msg, m.keys.Info):
		if m.description == "" {
			return m, nil
		}
		if m.infoCache == "" {
			m.infoCache = m.renderDescription()
		}
		m.viewMode = ViewInfo
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.returnMode = ViewBrowse
		m.viewMode = ViewHelp
		return m, nil
	}

	// Direct slide selection with number keys.
	switch msg.String() {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if !m.Active() {
			return m, nil
		}
		index := int(msg.String()[0] - '1')
		if m.show.Jump(index) {
			m.syncPaginator()
			return m, m.requestRender(index)
		}
		return m, nil

	case "esc":
		// No zoom is open here: Escape only dismisses the banner.
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// openZoom shows the fullscreen view for whatever the image pane
// currently displays. While a navigation load is pending the cursor
// has already moved, so the committed frameIndex is the truth here:
// image, caption and whitelist all resolve against the displayed
// slide. Only whitelisted entries participate; opening while already
// open simply overwrites the displayed image and caption.
func (m Model) openZoom() (tea.Model, tea.Cmd) {
	if !m.Active() || m.img == nil {
		return m, nil
	}
	if !m.zoomable[m.frameIndex] {
		return m, nil
	}

	entry, ok := m.show.Entry(m.frameIndex)
	if !ok {
		return m, nil
	}

	m.zoomImage = m.img
	m.zoomSource = m.frame.Source
	m.zoomCaption = gallery.ZoomCaption(entry)
	m.viewMode = ViewZoom
	return m, nil
}

// closeZoom returns to browsing. Browse input was suppressed while the
// zoom was visible; it resumes here.
func (m Model) closeZoom() (tea.Model, tea.Cmd) {
	m.viewMode = ViewBrowse
	return m, nil
}

// handleZoomKeys handles keys while the fullscreen view is open.
// Navigation and search stay suppressed until it closes.
func (m Model) handleZoomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		return m.closeZoom()

	case key.Matches(msg, m.keys.Help):
		m.returnMode = ViewZoom
		m.viewMode = ViewHelp
		return m, nil
	}
	return m, nil
}

// handleHelpKeys handles keys in the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = m.returnMode
		return m, nil
	}
	return m, nil
}

// handleInfoKeys handles keys in the gallery description overlay.
func (m Model) handleInfoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i", "esc", "q":
		m.viewMode = ViewBrowse
		return m, nil
	}
	return m, nil
}

// handleSearchKeys handles the caption filter prompt.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
		m.matches = nil
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		if len(m.matches) == 0 {
			m.query = ""
			return m, nil
		}
		target := m.matches[0]
		m.query = ""
		m.matches = nil
		if m.show.Jump(target) {
			m.syncPaginator()
			return m, m.requestRender(target)
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.query) > 0 {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.matches = search.Filter(m.query, m.show.Entries())
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.query += msg.String()
		m.matches = search.Filter(m.query, m.show.Entries())
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse implements the click contracts: clicking the slide opens
// the zoom, clicking the zoom backdrop closes it, clicking the zoomed
// image does not.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.viewMode {
	case ViewBrowse:
		if m.searching {
			return m, nil
		}
		if m.browseImageRect().Contains(msg.X, msg.Y) {
			return m.openZoom()
		}
		return m, nil

	case ViewZoom:
		if m.zoomImageRect().Contains(msg.X, msg.Y) {
			return m, nil
		}
		return m.closeZoom()
	}

	return m, nil
}
