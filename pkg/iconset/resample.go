package iconset

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"golang.org/x/image/draw"
)

// MaxCanvasEdge bounds the canvas a resampler will allocate.
const MaxCanvasEdge = 16384

// DefaultFilter is used when no filter is configured.
const DefaultFilter = "bilinear"

// Resampler renders src into a new canvas of exactly width x height pixels
// with an alpha channel.
type Resampler interface {
	Name() string
	Resample(src image.Image, width, height int) (*image.NRGBA, error)
}

// NewResampler returns the resampler registered under filter. An empty name
// selects DefaultFilter.
func NewResampler(filter string) (Resampler, error) {
	name := strings.ToLower(strings.TrimSpace(filter))
	if name == "" {
		name = DefaultFilter
	}
	ctor, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", iconerrors.ErrUnknownFilter, filter, strings.Join(FilterNames(), ", "))
	}
	return ctor(), nil
}

// FilterNames lists the registered filter names, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var filters = map[string]func() Resampler{
	"bilinear":   func() Resampler { return &DrawResampler{FilterName: "bilinear", Interpolator: draw.BiLinear} },
	"catmullrom": func() Resampler { return &DrawResampler{FilterName: "catmullrom", Interpolator: draw.CatmullRom} },
	"lanczos":    func() Resampler { return &NfntResampler{Interp: resize.Lanczos3} },
	"box":        func() Resampler { return &ImagingResampler{Filter: imaging.Box} },
}

// newCanvas allocates the destination raster. Allocation failures from the
// image package surface as panics, so they are recovered here.
func newCanvas(width, height int) (canvas *image.NRGBA, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", iconerrors.ErrInvalidCanvas, width, height)
	}
	if width > MaxCanvasEdge || height > MaxCanvasEdge {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", iconerrors.ErrCanvasTooLarge, width, height, MaxCanvasEdge)
	}
	defer func() {
		if r := recover(); r != nil {
			canvas, err = nil, fmt.Errorf("%w: %dx%d: %v", iconerrors.ErrInvalidCanvas, width, height, r)
		}
	}()
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// guard converts a panic inside a backend into an error.
func guard(name string, fn func() (*image.NRGBA, error)) (out *image.NRGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%s resample panicked: %v", name, r)
		}
	}()
	return fn()
}

// DrawResampler scales with a golang.org/x/image/draw interpolator.
type DrawResampler struct {
	FilterName   string
	Interpolator draw.Interpolator
}

func (r *DrawResampler) Name() string { return r.FilterName }

func (r *DrawResampler) Resample(src image.Image, width, height int) (*image.NRGBA, error) {
	return guard(r.FilterName, func() (*image.NRGBA, error) {
		dst, err := newCanvas(width, height)
		if err != nil {
			return nil, err
		}
		r.Interpolator.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst, nil
	})
}

// NfntResampler scales with github.com/nfnt/resize.
type NfntResampler struct {
	Interp resize.InterpolationFunction
}

func (r *NfntResampler) Name() string { return "lanczos" }

func (r *NfntResampler) Resample(src image.Image, width, height int) (*image.NRGBA, error) {
	return guard(r.Name(), func() (*image.NRGBA, error) {
		dst, err := newCanvas(width, height)
		if err != nil {
			return nil, err
		}
		scaled := resize.Resize(uint(width), uint(height), src, r.Interp)
		draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
		return dst, nil
	})
}

// ImagingResampler scales with github.com/disintegration/imaging. The box
// filter gives area-averaged downscaling.
type ImagingResampler struct {
	Filter imaging.ResampleFilter
}

func (r *ImagingResampler) Name() string { return "box" }

func (r *ImagingResampler) Resample(src image.Image, width, height int) (*image.NRGBA, error) {
	return guard(r.Name(), func() (*image.NRGBA, error) {
		dst, err := newCanvas(width, height)
		if err != nil {
			return nil, err
		}
		scaled := imaging.Resize(src, width, height, r.Filter)
		draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
		return dst, nil
	})
}
