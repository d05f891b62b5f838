// Package export writes chart views to files: tables as .xlsx, images as
// PNG or SVG.
package export

import "errors"

// ErrUnknownField indicates a column mapping naming a field samples do
// not have.
var ErrUnknownField = errors.New("unknown field")

// ErrUnsupportedSurface indicates a surface that cannot serialise itself.
var ErrUnsupportedSurface = errors.New("unsupported surface")
