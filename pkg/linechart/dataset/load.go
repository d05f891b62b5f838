package dataset

import (
	"github.com/spf13/afero"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// LoadFile reads samples from path on fs. The decoder is chosen from
// opts.Format, or from the file extension when that is empty.
func LoadFile(fs afero.Fs, path string, opts Options) ([]models.Sample, error) {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, NewLoadError(path, format, err)
		}
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	defer f.Close()

	var samples []models.Sample
	if format == FormatXLSX {
		samples, err = FromXLSX(f, opts)
	} else {
		samples, err = Decode(f, format)
	}
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	return samples, nil
}
