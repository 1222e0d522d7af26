package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Gallery represents the full gallery configuration document.
type Gallery struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Theme       string   `yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Layout      *Layout  `yaml:"layout,omitempty"`
	Zoomable    []string `yaml:"zoomable,omitempty" validate:"omitempty,dive,glob"`
	Entries     []Entry  `yaml:"entries" validate:"dive"`
}

// Entry describes a single image in display order. Entries are fixed
// once the document is parsed; the viewer never mutates them.
type Entry struct {
	Source  string `yaml:"source" validate:"required"`
	Caption string `yaml:"caption,omitempty" validate:"max=300"`
	Alt     string `yaml:"alt,omitempty" validate:"max=300"`
}

// Layout names the UI slots the gallery provides. The slideshow needs
// all three; a slot left empty disables it (logged, never fatal).
type Layout struct {
	Image    string `yaml:"image,omitempty"`
	Caption  string `yaml:"caption,omitempty"`
	Controls string `yaml:"controls,omitempty"`
}

// Slot names required by the slideshow.
const (
	SlotImage    = "image"
	SlotCaption  = "caption"
	SlotControls = "controls"
)

// DefaultLayout is applied when the document omits the layout section.
func DefaultLayout() *Layout {
	return &Layout{Image: "main", Caption: "statusbar", Controls: "footer"}
}

// MissingSlots reports which required slots the layout leaves empty.
// A nil receiver means the layout section was omitted entirely and
// defaults apply, so nothing is missing.
func (l *Layout) MissingSlots() []string {
	if l == nil {
		return nil
	}

	var missing []string
	if strings.TrimSpace(l.Image) == "" {
		missing = append(missing, SlotImage)
	}
	if strings.TrimSpace(l.Caption) == "" {
		missing = append(missing, SlotCaption)
	}
	if strings.TrimSpace(l.Controls) == "" {
		missing = append(missing, SlotControls)
	}
	return missing
}

// UnmarshalYAML applies entry defaults: an absent alt falls back to an
// empty string, never a placeholder, so caption resolution can reach "".
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type rawEntry Entry
	var temp rawEntry
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*e = Entry(temp)
	e.Source = strings.TrimSpace(e.Source)
	return nil
}
