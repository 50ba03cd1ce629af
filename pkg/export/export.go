// Package export converts a source image or a generated icon set into
// single-file formats: macOS .icns, Windows .ico and compressed archives.
package export

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/pkg/iconset"
)

// renderSizes resamples src once per size, in order.
func renderSizes(src image.Image, sizes []int, r iconset.Resampler, logger hclog.Logger) ([]image.Image, error) {
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := r.Resample(src, size, size)
		if err != nil {
			return nil, fmt.Errorf("resample %dx%d: %w", size, size, err)
		}
		logger.Trace("Rendered export size", "size", size)
		images = append(images, img)
	}
	return images, nil
}

func orNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}

func orDefault(r iconset.Resampler) (iconset.Resampler, error) {
	if r != nil {
		return r, nil
	}
	return iconset.NewResampler(iconset.DefaultFilter)
}
