package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
	"github.com/alexisbeaulieu97/vitrine/internal/prefs"
)

// loadImageCmd decodes an image off the update loop. The returned
// message carries the request token so the model can discard stale
// completions; the command itself never cancels an earlier load.
func loadImageCmd(loader *imaging.Loader, seq uint64, index int, source string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(context.Background(), source)
		if err != nil {
			return ImageLoadErrorMsg{
				Seq:    seq,
				Index:  index,
				Source: source,
				Err:    err,
			}
		}
		return ImageLoadedMsg{
			Seq:    seq,
			Index:  index,
			Source: source,
			Image:  img,
		}
	}
}

// saveThemeCmd persists the theme preference. A nil store (no prefs
// database available) keeps the toggle session-only.
func saveThemeCmd(store *prefs.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return ThemeSavedMsg{Name: name}
		}
		if err := store.Set(prefs.KeyTheme, name); err != nil {
			return ThemeSaveErrorMsg{Err: err}
		}
		return ThemeSavedMsg{Name: name}
	}
}
