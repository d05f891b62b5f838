package dataset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates an input format with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrMissingColumn indicates a sheet without a required column.
var ErrMissingColumn = errors.New("missing column")

// ErrInvalidRecord indicates a record whose date or value cannot be parsed.
var ErrInvalidRecord = errors.New("invalid record")

// LoadError represents an error while loading a data file.
type LoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, format Format, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}

func recordError(index int, format string, args ...interface{}) error {
	return fmt.Errorf("record %d: %w: %s", index, ErrInvalidRecord, fmt.Sprintf(format, args...))
}
