package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField matches any *MissingFieldError via errors.Is.
	ErrMissingField = errors.New("missing required field")

	// ErrNoMatch is returned when the catalog has no usable result even
	// after the search terms were simplified as far as possible.
	ErrNoMatch = errors.New("no matching metadata found")

	// ErrEmptyCandidates is returned when selection is asked to pick from nothing.
	ErrEmptyCandidates = errors.New("no candidates to select from")

	ErrFileNotFound = errors.New("file not found")
	ErrUnreadable   = errors.New("file is not readable")
	ErrNoTags       = errors.New("no tags found")
	ErrWriteFailed  = errors.New("failed to write tags")
)

// MissingFieldError is returned when a field needed for searching or
// scoring is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// DateParseError is returned when a catalog release date cannot be parsed.
// It only disqualifies the item that carried the date.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid release date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
