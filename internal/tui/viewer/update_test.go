package viewer

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/gallery"
	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
	"github.com/alexisbeaulieu97/vitrine/internal/prefs"
)

func TestNavigationWrapsAround(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	// Forward past the end lands on the first slide again.
	m, _ = press(t, m, "right", "right", "right")
	assert.Equal(t, 0, m.show.Index())

	// Backward from the first slide lands on the last.
	m, _ = press(t, m, "left")
	assert.Equal(t, 2, m.show.Index())
}

func TestNavigationRequestsLoad(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	before := m.loadSeq

	m, cmd := press(t, m, "right")
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, before+1, m.loadSeq)

	m = deliverLoads(t, m, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, "City at night", m.Frame().Caption)
}

func TestNavigationRestartsSpinner(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	require.False(t, m.loading)

	// Each new load carries its own spinner tick; without it the
	// spinner would freeze after the first commit ended the chain.
	m, cmd := press(t, m, "right")
	require.NotNil(t, cmd)

	var sawTick, sawLoad bool
	for _, msg := range collectMsgs(cmd) {
		switch msg.(type) {
		case spinner.TickMsg:
			sawTick = true
		case ImageLoadedMsg:
			sawLoad = true
		}
	}
	assert.True(t, sawTick)
	assert.True(t, sawLoad)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Two rapid requests: the first completion arrives after the
	// second request was issued and must not overwrite anything.
	first := (&m).requestRender(0)
	firstMsgs := collectMsgs(first)
	second := (&m).requestRender(1)

	for _, msg := range firstMsgs {
		if loaded, ok := msg.(ImageLoadedMsg); ok {
			next, _ := m.Update(loaded)
			m = next.(Model)
		}
	}
	assert.Nil(t, m.img)
	assert.True(t, m.loading)
	assert.Equal(t, gallery.Frame{}, m.Frame())

	m = deliverLoads(t, m, second)
	assert.NotNil(t, m.img)
	assert.Equal(t, "City at night", m.Frame().Caption)
}

func TestStaleErrorIsDiscarded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	next, _ := m.Update(ImageLoadErrorMsg{Seq: m.loadSeq - 1, Index: 0, Source: "old.png"})
	m = next.(Model)
	assert.NotNil(t, m.img)
	assert.Equal(t, "Alpine lake", m.Frame().Caption)
}

func TestLoadFailureCommitsErrorFrame(t *testing.T) {
	t.Parallel()

	gal, dir := newTestGallery(t)
	gal.Entries[0].Source = "does-not-exist.png"
	m := NewModel(gal, imaging.NewLoader(dir), nil, discardLogger(t))

	cmd := (&m).requestRender(0)
	require.NotNil(t, cmd)
	m = deliverLoads(t, m, cmd)

	assert.Nil(t, m.img)
	assert.False(t, m.loading)
	assert.Equal(t, gallery.LoadFailedText, m.Frame().Caption)
	assert.Equal(t, gallery.LoadFailedText, m.Frame().Alt)
	assert.Empty(t, m.Frame().Source)
}

func TestCommittedFrameMatchesEntry(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	frame := m.Frame()
	assert.Equal(t, "alpine-lake.png", frame.Source)
	assert.Equal(t, "Alpine lake", frame.Caption)
	// The slide pane reuses the caption as accessible text.
	assert.Equal(t, "Alpine lake", frame.Alt)
}

func TestZoomOpensForCommittedImage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	m, _ = press(t, m, "enter")
	assert.True(t, m.ZoomVisible())
	assert.Equal(t, "Alpine lake", m.ZoomCaption())
}

func TestZoomRequiresImage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Nothing committed yet.
	m, _ = press(t, m, "enter")
	assert.False(t, m.ZoomVisible())
}

func TestZoomRespectsWhitelist(t *testing.T) {
	t.Parallel()

	gal, dir := newTestGallery(t)
	gal.Zoomable = []string{"city-*.png"}
	m := NewModel(gal, imaging.NewLoader(dir), nil, discardLogger(t))
	m = commitCurrent(t, m)

	m, _ = press(t, m, "enter")
	assert.False(t, m.ZoomVisible(), "non-whitelisted slide must not open")

	m, cmd := press(t, m, "right")
	m = deliverLoads(t, m, cmd)
	m, _ = press(t, m, "enter")
	assert.True(t, m.ZoomVisible())
}

func TestZoomCaptionFallsBackToAlt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := press(t, m, "left") // wraps to the caption-less third slide
	m = deliverLoads(t, m, cmd)

	m, _ = press(t, m, "enter")
	require.True(t, m.ZoomVisible())
	assert.Equal(t, "Dunes at dusk", m.ZoomCaption())
}

func TestZoomDuringPendingLoadShowsDisplayedSlide(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	// Navigate without letting the new load resolve: the cursor is on
	// slide 1 but slide 0 is still on screen. Zoom must show slide 0's
	// image with slide 0's caption, never a mix.
	m, _ = press(t, m, "right")
	require.True(t, m.loading)
	require.Equal(t, 1, m.show.Index())

	m, _ = press(t, m, "enter")
	require.True(t, m.ZoomVisible())
	assert.Equal(t, "alpine-lake.png", m.zoomSource)
	assert.Equal(t, "Alpine lake", m.ZoomCaption())
}

func TestZoomDuringPendingLoadUsesDisplayedWhitelist(t *testing.T) {
	t.Parallel()

	gal, dir := newTestGallery(t)
	gal.Zoomable = []string{"city-*.png"}
	m := NewModel(gal, imaging.NewLoader(dir), nil, discardLogger(t))
	m = commitCurrent(t, m)

	// The cursor sits on the whitelisted slide 1, but the displayed
	// slide 0 is not whitelisted: the zoom must stay closed.
	m, _ = press(t, m, "right")
	require.True(t, m.loading)

	m, _ = press(t, m, "enter")
	assert.False(t, m.ZoomVisible())
}

func TestZoomSuppressesNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	m, _ = press(t, m, "enter")
	require.True(t, m.ZoomVisible())

	m, _ = press(t, m, "right", "left", "n", "p", "3")
	assert.Equal(t, 0, m.show.Index())
	assert.True(t, m.ZoomVisible())
}

func TestZoomCloseKeys(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"esc", "x"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t)
			m = commitCurrent(t, m)
			m, _ = press(t, m, "enter")
			require.True(t, m.ZoomVisible())

			m, _ = press(t, m, k)
			assert.False(t, m.ZoomVisible())
		})
	}
}

func TestEscapeWithoutZoomIsNoOp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	m2, cmd := press(t, m, "esc")
	assert.Nil(t, cmd)
	assert.Equal(t, ViewBrowse, m2.viewMode)
	assert.Equal(t, m.show.Index(), m2.show.Index())
}

func TestEscapeDismissesErrorBanner(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(ErrorMsg{Message: "boom"})
	m = next.(Model)
	require.True(t, m.showError)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
}

func TestNumberKeysJump(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := press(t, m, "3")
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.show.Index())

	// Out-of-range digits are ignored.
	m, cmd = press(t, m, "9")
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.show.Index())
}

func TestEmptyGalleryIgnoresInput(t *testing.T) {
	t.Parallel()

	gal, dir := newTestGallery(t)
	gal.Layout = nil
	gal.Entries = nil
	m := NewModel(gal, imaging.NewLoader(dir), nil, discardLogger(t))

	m, cmd := press(t, m, "right", "left", "enter", "/", "2")
	assert.Nil(t, cmd)
	assert.False(t, m.ZoomVisible())
	assert.False(t, m.searching)
	assert.Equal(t, 0, m.show.Index())
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, "dark", m.ThemeName())

	m, cmd := press(t, m, "t")
	assert.Equal(t, "light", m.ThemeName())
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, ThemeSavedMsg{}, msg)
}

func TestThemeTogglePersists(t *testing.T) {
	t.Parallel()

	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	gal, dir := newTestGallery(t)
	m := NewModel(gal, imaging.NewLoader(dir), store, discardLogger(t))

	m, cmd := press(t, m, "t")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ThemeSavedMsg{}, msg)

	stored, ok, err := store.Get(prefs.KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", stored)
	assert.Equal(t, "light", m.ThemeName())
}

func TestSearchJumpsToBestMatch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	m, _ = press(t, m, "/")
	require.True(t, m.searching)

	m, _ = press(t, m, "c", "i", "t", "y")
	require.NotEmpty(t, m.matches)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	assert.False(t, m.searching)
	assert.Equal(t, 1, m.show.Index())
}

func TestSearchEscapeCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = press(t, m, "/", "c", "i")
	require.True(t, m.searching)

	m, _ = press(t, m, "esc")
	assert.False(t, m.searching)
	assert.Empty(t, m.query)
	assert.Equal(t, 0, m.show.Index())
}

func TestSearchBackspace(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = press(t, m, "/", "c", "i")
	assert.Equal(t, "ci", m.query)

	m, _ = press(t, m, "backspace")
	assert.Equal(t, "c", m.query)
}

func TestMouseClickOnSlideOpensZoom(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	rect := m.browseImageRect()
	require.False(t, rect.Empty())

	next, _ := m.Update(tea.MouseMsg{
		X: rect.X, Y: rect.Y,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	assert.True(t, m.ZoomVisible())
}

func TestMouseClickOutsideSlideDoesNothing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	next, _ := m.Update(tea.MouseMsg{
		X: 0, Y: 0,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	assert.False(t, m.ZoomVisible())
}

func TestMouseBackdropClickClosesZoom(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	m, _ = press(t, m, "enter")
	require.True(t, m.ZoomVisible())

	rect := m.zoomImageRect()
	require.False(t, rect.Empty())

	// On the image: stays open.
	next, _ := m.Update(tea.MouseMsg{
		X: rect.X, Y: rect.Y,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	assert.True(t, m.ZoomVisible())

	// Outside the image: closes.
	next, _ = m.Update(tea.MouseMsg{
		X: 0, Y: 0,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	assert.False(t, m.ZoomVisible())
}

func TestMouseNonLeftPressIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)
	rect := m.browseImageRect()

	next, _ := m.Update(tea.MouseMsg{
		X: rect.X, Y: rect.Y,
		Action: tea.MouseActionPress, Button: tea.MouseButtonRight,
	})
	m = next.(Model)
	assert.False(t, m.ZoomVisible())
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestHelpOverlayReturnsToOrigin(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = commitCurrent(t, m)

	m, _ = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.viewMode)
	m, _ = press(t, m, "esc")
	assert.Equal(t, ViewBrowse, m.viewMode)

	// Opened from zoom, help returns to zoom.
	m, _ = press(t, m, "enter", "?")
	assert.Equal(t, ViewHelp, m.viewMode)
	m, _ = press(t, m, "?")
	assert.Equal(t, ViewZoom, m.viewMode)
}

func TestInfoOverlay(t *testing.T) {
	t.Parallel()

	gal, dir := newTestGallery(t)
	gal.Description = "A **test** gallery."
	m := NewModel(gal, imaging.NewLoader(dir), nil, discardLogger(t))

	m, _ = press(t, m, "i")
	assert.Equal(t, ViewInfo, m.viewMode)
	m, _ = press(t, m, "i")
	assert.Equal(t, ViewBrowse, m.viewMode)
}

func TestInfoOverlayRequiresDescription(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = press(t, m, "i")
	assert.Equal(t, ViewBrowse, m.viewMode)
}
