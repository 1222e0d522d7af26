package gallery

// Entry is a single image in display order: where to load it from,
// the caption shown under it, and the alt text used when the caption
// is absent. Entries are immutable once the slideshow is built.
type Entry struct {
	Source  string
	Caption string
	Alt     string
}

// DisabledCaption is shown when a slideshow has no entries.
const DisabledCaption = "No images to display."

// LoadFailedText is committed as both alt and caption when an image
// fails to load. The failure is displayed, never retried.
const LoadFailedText = "Image failed to load"

// Slideshow owns the ordered entries and the cursor. The invariant
// 0 <= index < len(entries) holds whenever entries is non-empty; an
// empty slideshow is disabled and navigation never mutates it.
type Slideshow struct {
	entries []Entry
	index   int
}

// New builds a slideshow over the given entries. The slice is copied
// so later mutation by the caller cannot break the cursor invariant.
func New(entries []Entry) *Slideshow {
	return &Slideshow{entries: append([]Entry(nil), entries...)}
}

// Enabled reports whether the slideshow has anything to show.
func (s *Slideshow) Enabled() bool {
	return len(s.entries) > 0
}

// Len returns the number of entries.
func (s *Slideshow) Len() int {
	return len(s.entries)
}

// Index returns the cursor position. Meaningless while disabled.
func (s *Slideshow) Index() int {
	return s.index
}

// Current returns the entry under the cursor, or false when disabled.
func (s *Slideshow) Current() (Entry, bool) {
	if !s.Enabled() {
		return Entry{}, false
	}
	return s.entries[s.index], true
}

// Entry returns the entry at position i, or false when out of range.
func (s *Slideshow) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns a copy of the full ordered sequence.
func (s *Slideshow) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Next advances the cursor, wrapping from the last entry to the first,
// and returns the new index. Disabled slideshows are left untouched.
func (s *Slideshow) Next() int {
	if !s.Enabled() {
		return 0
	}
	if s.index < len(s.entries)-1 {
		s.index++
	} else {
		s.index = 0
	}
	return s.index
}

// Previous retreats the cursor, wrapping from the first entry to the
// last, and returns the new index.
func (s *Slideshow) Previous() int {
	if !s.Enabled() {
		return 0
	}
	if s.index > 0 {
		s.index--
	} else {
		s.index = len(s.entries) - 1
	}
	return s.index
}

// Jump moves the cursor to i. Out-of-range targets are ignored.
func (s *Slideshow) Jump(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.index = i
	return true
}

// Caption returns the caption for the current entry, or the disabled
// fallback when there is nothing to show.
func (s *Slideshow) Caption() string {
	entry, ok := s.Current()
	if !ok {
		return DisabledCaption
	}
	return entry.Caption
}

// Frame is the unit of commit for the image pane: source, alt text and
// caption always change together, never piecemeal.
type Frame struct {
	Source  string
	Alt     string
	Caption string
}

// FrameFor builds the commit for a successfully loaded entry.
func FrameFor(e Entry) Frame {
	return Frame{Source: e.Source, Alt: e.Caption, Caption: e.Caption}
}

// ErrorFrame is the fixed commit for a failed load: no source and the
// failure text in both alt and caption, regardless of which entry
// failed.
func ErrorFrame() Frame {
	return Frame{Source: "", Alt: LoadFailedText, Caption: LoadFailedText}
}

// ZoomCaption resolves the caption shown in the fullscreen view:
// the dedicated caption wins, alt text is the fallback, and an entry
// with neither yields an empty string.
func ZoomCaption(e Entry) string {
	if e.Caption != "" {
		return e.Caption
	}
	if e.Alt != "" {
		return e.Alt
	}
	return ""
}
