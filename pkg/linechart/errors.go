package linechart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// ErrInvalidSurface indicates a missing surface or a host too small to
// hold the plot area.
var ErrInvalidSurface = errors.New("invalid surface")

// ErrInvalidSample indicates a sample that cannot be plotted.
var ErrInvalidSample = errors.New("invalid sample")

// PreconditionError reports the first sample rejected by Update.
type PreconditionError struct {
	Index  int
	Sample models.Sample
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sample %d: %s", e.Index, e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrInvalidSample
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(index int, sample models.Sample, reason string) *PreconditionError {
	return &PreconditionError{
		Index:  index,
		Sample: sample,
		Reason: reason,
	}
}
