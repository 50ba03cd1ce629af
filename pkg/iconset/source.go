package iconset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SourceImage is the decoded input raster. It is read-only once loaded.
type SourceImage struct {
	Path   string
	Format string
	Image  image.Image
}

// Width of the decoded raster in pixels.
func (s *SourceImage) Width() int { return s.Image.Bounds().Dx() }

// Height of the decoded raster in pixels.
func (s *SourceImage) Height() int { return s.Image.Bounds().Dy() }

// LoadSource decodes the image at path. The format is sniffed from content,
// not from the extension.
func LoadSource(path string) (*SourceImage, error) {
	if strings.Contains(path, "file://") {
		return nil, fmt.Errorf("%w: %s", iconerrors.ErrSourceURL, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", iconerrors.ErrSourceUnreadable, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", iconerrors.ErrSourceDecode, path, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", iconerrors.ErrSourceDecode, path)
	}

	return &SourceImage{Path: path, Format: format, Image: img}, nil
}
