package iconset

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/provide-io/iconmaker/pkg/utils/atomicfile"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// AssetWriter persists one rendered raster.
type AssetWriter interface {
	Write(img image.Image, path string) error
}

// PNGWriter encodes assets as PNG at maximum compression and writes them
// with atomic-replace semantics.
type PNGWriter struct {
	Perm   os.FileMode
	Logger hclog.Logger
}

// NewPNGWriter returns a PNGWriter using the default file mode.
func NewPNGWriter(logger hclog.Logger) *PNGWriter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PNGWriter{Perm: permissions.DefaultFilePerms, Logger: logger}
}

func (w *PNGWriter) Write(img image.Image, path string) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: nothing to encode for %s", iconerrors.ErrInvalidCanvas, path)
	}

	perm := w.Perm
	if perm == 0 {
		perm = permissions.DefaultFilePerms
	}

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	err := atomicfile.Write(path, perm, w.Logger, func(out io.Writer) error {
		if err := enc.Encode(out, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.Logger.Trace("Asset written", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
