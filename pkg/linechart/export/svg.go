package export

import (
	"fmt"
	"io"

	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

// WriteSVG serialises surface, which must be able to write itself out
// such as *render.SVGSurface.
func WriteSVG(w io.Writer, surface render.Surface) error {
	wt, ok := surface.(io.WriterTo)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedSurface, surface)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
