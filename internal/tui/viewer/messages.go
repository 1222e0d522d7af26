package viewer

import (
	"image"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewBrowse ViewMode = iota
	ViewZoom
	ViewHelp
	ViewInfo
)

// Load Messages
//
// Every render request carries a monotonically increasing sequence
// number. Loads resolve independently and may complete out of order;
// the model discards any completion whose Seq is not the most recent
// request, which makes the overlapping-load race deterministic.

// ImageLoadedMsg reports a successfully decoded image.
type ImageLoadedMsg struct {
	Seq    uint64
	Index  int
	Source string
	Image  image.Image
}

// ImageLoadErrorMsg reports a failed load. The viewer commits the
// fixed error frame instead of retrying.
type ImageLoadErrorMsg struct {
	Seq    uint64
	Index  int
	Source string
	Err    error
}

// Preference Messages

// ThemeSavedMsg confirms the theme preference was persisted.
type ThemeSavedMsg struct {
	Name string
}

// ThemeSaveErrorMsg reports a persistence failure. The in-memory
// toggle already happened; only durability was lost.
type ThemeSaveErrorMsg struct {
	Err error
}

// Error Messages

// ErrorMsg surfaces a general error in the banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
