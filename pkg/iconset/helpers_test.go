package iconset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sourceImage builds a square gradient whose left half is fully transparent.
func sourceImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := uint8(255)
			if x < size/2 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / size), G: uint8(y * 255 / size), B: 128, A: a})
		}
	}
	return img
}

func writeSourcePNG(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, sourceImage(size)))
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func okAssets(p Platform) []GeneratedAsset {
	entries := EntriesFor(p)
	assets := make([]GeneratedAsset, len(entries))
	for i, e := range entries {
		assets[i] = GeneratedAsset{Entry: e, Filename: e.Filename(), Width: e.PixelSize(), Height: e.PixelSize()}
	}
	return assets
}
