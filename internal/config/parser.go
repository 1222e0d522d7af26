package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseGallery loads a gallery file from disk, validates it, and
// returns the resulting model.
func ParseGallery(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vitrineerrors.NewParseError(path, 0, err)
	}

	var gal Gallery
	if err := yaml.Unmarshal(data, &gal); err != nil {
		return nil, vitrineerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateGallery(&gal); err != nil {
		return nil, err
	}

	return &gal, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
