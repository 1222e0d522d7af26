package viewer

import (
	"image"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/config"
	"github.com/alexisbeaulieu97/vitrine/internal/gallery"
	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/prefs"
	"github.com/alexisbeaulieu97/vitrine/internal/theme"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// Model is the main viewer model.
type Model struct {
	// Core data
	name        string
	description string
	show        *gallery.Slideshow
	loader      *imaging.Loader
	store       *prefs.Store
	log         *logger.Logger

	// Slideshow display state. frame, img, frameIndex and failed
	// always change together: a commit replaces them all, nothing else
	// touches them. frameIndex is the entry the committed frame came
	// from — while a load is pending it trails the cursor, and the
	// zoom view must read the displayed entry, not the pending one.
	frame      gallery.Frame
	img        image.Image
	frameIndex int
	failed     bool
	loading    bool
	loadSeq    uint64
	disabled   bool

	// Zoom state. Populated from what is on screen at open time and
	// left alone until the next open.
	zoomSource  string
	zoomCaption string
	zoomImage   image.Image

	// Zoomable registration: decided once at construction, entries
	// appearing later are deliberately not picked up.
	zoomable map[int]bool

	// Search state
	searching bool
	query     string
	matches   []int

	// UI state
	viewMode   ViewMode
	returnMode ViewMode
	thm        theme.Theme
	styles     Styles
	infoCache  string

	// Component state
	spinner   spinner.Model
	paginator paginator.Model
	keys      KeyMap
	help      help.Model

	// Error banner
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

// NewModel constructs the viewer for a parsed gallery document.
func NewModel(gal *config.Gallery, loader *imaging.Loader, store *prefs.Store, log *logger.Logger) Model {
	entries := make([]gallery.Entry, 0, len(gal.Entries))
	for _, e := range gal.Entries {
		entries = append(entries, gallery.Entry{Source: e.Source, Caption: e.Caption, Alt: e.Alt})
	}
	show := gallery.New(entries)

	thm := resolveTheme(gal, store, log)
	styles := NewStyles(thm)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SearchPrompt

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.ActiveDot.Render("●")
	p.InactiveDot = styles.InactiveDot.Render("○")
	p.SetTotalPages(maxInt(show.Len(), 1))

	m := Model{
		name:        gal.Name,
		description: gal.Description,
		show:        show,
		loader:      loader,
		store:       store,
		log:         log,
		zoomable:    registerZoomable(entries, gal.Zoomable, log),
		viewMode:    ViewBrowse,
		returnMode:  ViewBrowse,
		thm:         thm,
		styles:      styles,
		spinner:     s,
		paginator:   p,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
	}

	// A layout that names its slots but leaves a required one empty
	// disables the slideshow. Logged, never surfaced as an error.
	if missing := gal.Layout.MissingSlots(); len(missing) > 0 {
		m.disabled = true
		for _, slot := range missing {
			log.Error(vitrineerrors.NewMissingSlotError(slot), "slideshow disabled")
		}
	}

	return m
}

// resolveTheme picks the startup theme: the persisted preference wins
// over the document's choice, which wins over the dark default.
func resolveTheme(gal *config.Gallery, store *prefs.Store, log *logger.Logger) theme.Theme {
	name := gal.Theme
	if store != nil {
		stored, ok, err := store.Get(prefs.KeyTheme)
		if err != nil {
			log.Error(err, "failed to read theme preference")
		} else if ok {
			name = stored
		}
	}
	return theme.ByName(name)
}

// registerZoomable matches the whitelist patterns against entry
// sources exactly once. This mirrors the original's static
// registration: it is a deliberate simplification, not an oversight,
// and entries are fixed after construction anyway.
func registerZoomable(entries []gallery.Entry, patterns []string, log *logger.Logger) map[int]bool {
	zoomable := make(map[int]bool, len(entries))
	if len(patterns) == 0 {
		// No whitelist means every image participates.
		for i := range entries {
			zoomable[i] = true
		}
		return zoomable
	}

	for i, entry := range entries {
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, entry.Source)
			if err != nil {
				// Patterns are validated at parse time; a failure here
				// means the validator and matcher disagree.
				log.WithFields(map[string]any{"pattern": pattern}).
					Error(err, "zoomable pattern rejected at match time")
				continue
			}
			if ok {
				zoomable[i] = true
				break
			}
		}
	}
	return zoomable
}

// Init requests the first slide; the spinner starts with the load.
func (m Model) Init() tea.Cmd {
	return m.requestRender(m.show.Index())
}

// Active reports whether navigation can do anything at all.
func (m Model) Active() bool {
	return m.show.Enabled() && !m.disabled
}

// Frame returns the last committed frame.
func (m Model) Frame() gallery.Frame {
	return m.frame
}

// ZoomVisible reports whether the fullscreen view is open.
func (m Model) ZoomVisible() bool {
	return m.viewMode == ViewZoom
}

// ZoomCaption returns the caption the fullscreen view shows.
func (m Model) ZoomCaption() string {
	return m.zoomCaption
}

// ThemeName returns the active theme's name.
func (m Model) ThemeName() string {
	return m.thm.Name
}

// requestRender issues a new load for the entry at index and bumps the
// request token. The pointer receiver matters: callers inside Update
// mutate the model they are about to return. The spinner tick rides
// along because the previous tick chain ended when the last load
// committed; the spinner dedupes overlapping chains itself.
func (m *Model) requestRender(index int) tea.Cmd {
	if !m.Active() {
		return nil
	}
	entry, ok := m.show.Entry(index)
	if !ok {
		return nil
	}

	m.loadSeq++
	m.loading = true
	return tea.Batch(
		loadImageCmd(m.loader, m.loadSeq, index, entry.Source),
		m.spinner.Tick,
	)
}

// syncPaginator keeps the dots on the cursor.
func (m *Model) syncPaginator() {
	m.paginator.Page = m.show.Index()
}

// applyTheme swaps the palette and every style derived from it.
func (m *Model) applyTheme(t theme.Theme) {
	m.thm = t
	m.styles = NewStyles(t)
	m.spinner.Style = m.styles.SearchPrompt
	m.paginator.ActiveDot = m.styles.ActiveDot.Render("●")
	m.paginator.InactiveDot = m.styles.InactiveDot.Render("○")
	m.infoCache = ""
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
