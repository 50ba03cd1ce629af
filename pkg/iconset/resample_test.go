package iconset

import (
	"image"
	"image/color"
	"testing"

	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResamplers_ExactSizeAndAlpha(t *testing.T) {
	src := sourceImage(64)

	for _, name := range FilterNames() {
		t.Run(name, func(t *testing.T) {
			r, err := NewResampler(name)
			require.NoError(t, err)
			assert.Equal(t, name, r.Name())

			for _, size := range []int{16, 55, 87, 128} {
				out, err := r.Resample(src, size, size)
				require.NoError(t, err)
				assert.Equal(t, image.Rect(0, 0, size, size), out.Bounds())

				// Far left column stays transparent, far right opaque.
				left := out.NRGBAAt(0, size/2)
				right := out.NRGBAAt(size-1, size/2)
				assert.Less(t, left.A, uint8(32), "left alpha at %d", size)
				assert.Greater(t, right.A, uint8(224), "right alpha at %d", size)
			}
		})
	}
}

func TestNewResampler_DefaultAndUnknown(t *testing.T) {
	r, err := NewResampler("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFilter, r.Name())

	r, err = NewResampler("  CatmullRom ")
	require.NoError(t, err)
	assert.Equal(t, "catmullrom", r.Name())

	_, err = NewResampler("nearest")
	assert.ErrorIs(t, err, iconerrors.ErrUnknownFilter)
}

func TestResample_InvalidCanvas(t *testing.T) {
	r, err := NewResampler("bilinear")
	require.NoError(t, err)
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	_, err = r.Resample(src, 0, 10)
	assert.ErrorIs(t, err, iconerrors.ErrInvalidCanvas)

	_, err = r.Resample(src, MaxCanvasEdge+1, 10)
	assert.ErrorIs(t, err, iconerrors.ErrCanvasTooLarge)
}

func TestResample_UniformColorPreserved(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill := color.NRGBA{R: 200, G: 10, B: 40, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, fill)
		}
	}

	r, err := NewResampler("bilinear")
	require.NoError(t, err)
	out, err := r.Resample(src, 40, 40)
	require.NoError(t, err)
	got := out.NRGBAAt(20, 20)
	assert.InDelta(t, fill.R, got.R, 1)
	assert.InDelta(t, fill.G, got.G, 1)
	assert.InDelta(t, fill.B, got.B, 1)
	assert.Equal(t, fill.A, got.A)
}
