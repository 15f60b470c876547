package index

import (
	"errors"
	"fmt"
)

// ErrContentUnavailable is matched by every content index load failure.
var ErrContentUnavailable = errors.New("content unavailable")

// ErrSkippableRecord marks a record excluded from search for lacking a label or slug.
var ErrSkippableRecord = errors.New("skippable record")

// LoadError describes why the content index at Source could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load content index %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrContentUnavailable, e.Err}
}

// RecordError identifies a skipped record by kind and list position.
type RecordError struct {
	Kind     Kind
	Position int
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s #%d: missing label or slug", e.Kind, e.Position)
}

func (e *RecordError) Unwrap() error { return ErrSkippableRecord }
