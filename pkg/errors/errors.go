package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures gallery configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError represents a failure to read or decode an image resource.
type LoadError struct {
	Source string
	Err    error
}

// NewLoadError constructs a LoadError.
func NewLoadError(source string, err error) error {
	return &LoadError{Source: source, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("load error: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("load error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingSlotError indicates a required UI slot was absent at
// initialization. The affected component is disabled, never the program.
type MissingSlotError struct {
	Slot    string
	Message string
}

// NewMissingSlotError constructs a MissingSlotError for the given slot name.
func NewMissingSlotError(slot string) error {
	return &MissingSlotError{Slot: slot, Message: "required slot is not configured"}
}

func (e *MissingSlotError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slot != "" {
		return fmt.Sprintf("missing slot [%s]: %s", e.Slot, e.Message)
	}
	return fmt.Sprintf("missing slot: %s", e.Message)
}
