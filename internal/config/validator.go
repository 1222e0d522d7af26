package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
			return doublestar.ValidatePattern(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateGallery performs schema and cross-field validation on the document.
func ValidateGallery(gal *Gallery) error {
	if gal == nil {
		return vitrineerrors.NewValidationError("gallery", "gallery is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(gal); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(gal.Entries))
	for i, entry := range gal.Entries {
		if prior, exists := seen[entry.Source]; exists {
			return vitrineerrors.NewValidationError(
				fieldForEntry(i, "source"),
				fmt.Sprintf("duplicate source %q (already used by entries[%d])", entry.Source, prior),
				nil,
			)
		}
		seen[entry.Source] = i
	}

	return nil
}

func convertValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return vitrineerrors.NewValidationError("gallery", err.Error(), err)
	}

	first := validationErrors[0]
	field := normalizeFieldPath(first.Namespace())

	var message string
	switch first.Tag() {
	case "required":
		message = "field is required"
	case "semver":
		message = "must be a semantic version (e.g. \"1.0\")"
	case "glob":
		message = "must be a valid glob pattern"
	case "oneof":
		message = fmt.Sprintf("must be one of: %s", first.Param())
	case "min", "max":
		message = fmt.Sprintf("length constraint %s=%s violated", first.Tag(), first.Param())
	default:
		message = fmt.Sprintf("failed %q validation", first.Tag())
	}

	return vitrineerrors.NewValidationError(field, message, err)
}

// normalizeFieldPath converts validator namespaces like
// "Gallery.Entries[2].Source" into the document's own spelling.
func normalizeFieldPath(namespace string) string {
	path := strings.TrimPrefix(namespace, "Gallery.")
	path = strings.ReplaceAll(path, "Entries", "entries")
	path = strings.ReplaceAll(path, "Zoomable", "zoomable")
	path = strings.ReplaceAll(path, "Source", "source")
	path = strings.ReplaceAll(path, "Caption", "caption")
	path = strings.ReplaceAll(path, "Version", "version")
	path = strings.ReplaceAll(path, "Theme", "theme")
	path = strings.ReplaceAll(path, "Name", "name")
	path = strings.ReplaceAll(path, "Alt", "alt")
	return path
}

func fieldForEntry(index int, field string) string {
	return fmt.Sprintf("entries[%d].%s", index, field)
}
