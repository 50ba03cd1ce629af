// Package iconset generates Xcode app-icon sets: resized PNG assets for every
// slot of a platform's icon catalog plus the Contents.json manifest.
package iconset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
)

// Platform selects one resolution table. The numeric values are part of the
// public entry point (0=iOS, 1=macOS, 2=watchOS).
type Platform int

const (
	PlatformIOS Platform = iota
	PlatformMacOS
	PlatformWatchOS
)

// Platforms lists every supported platform in selector order.
var Platforms = []Platform{PlatformIOS, PlatformMacOS, PlatformWatchOS}

// String returns the display name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformMacOS:
		return "macOS"
	case PlatformWatchOS:
		return "watchOS"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Valid reports whether p is one of the fixed platforms.
func (p Platform) Valid() bool {
	return p >= PlatformIOS && p <= PlatformWatchOS
}

// PlatformFromIndex converts the numeric selector used by callers.
func PlatformFromIndex(i int) (Platform, error) {
	p := Platform(i)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: index %d", iconerrors.ErrUnknownPlatform, i)
	}
	return p, nil
}

// platformNames maps accepted spellings to platforms.
var platformNames = map[string]Platform{
	"ios":     PlatformIOS,
	"iphone":  PlatformIOS,
	"macos":   PlatformMacOS,
	"mac":     PlatformMacOS,
	"osx":     PlatformMacOS,
	"watchos": PlatformWatchOS,
	"watch":   PlatformWatchOS,
}

// ParsePlatform accepts a platform name (case-insensitive) or its index.
// Unknown names that are close to a known one get a suggestion in the error.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := platformNames[name]; ok {
		return p, nil
	}
	if i, err := strconv.Atoi(name); err == nil {
		return PlatformFromIndex(i)
	}

	best, bestDist := "", math.MaxInt
	for candidate := range platformNames {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}
	if best != "" && bestDist <= 2 {
		return 0, fmt.Errorf("%w: %q (did you mean %q?)", iconerrors.ErrUnknownPlatform, s, best)
	}
	return 0, fmt.Errorf("%w: %q", iconerrors.ErrUnknownPlatform, s)
}

// ResolutionEntry is one slot of an icon catalog.
type ResolutionEntry struct {
	// Nominal is the catalog edge length in pixels before any override.
	Nominal float64
	Scale   int
	// Idiom is the manifest idiom ("universal" or "mac").
	Idiom string
	// PlatformTag is the manifest platform value; empty means the key is omitted.
	PlatformTag string
	// Override is non-nil for the sizes listed in sizeOverrides.
	Override *SizeOverride
}

// SizeOverride replaces the edge length used for rendering and for the
// manifest "size" field. The two differ for iOS 166: the image is rendered
// at 166px while the size label is derived from 167, which integer division
// by the scale still turns into "83x83".
type SizeOverride struct {
	Render  int
	Display int
}

// sizeOverrides is keyed by nominal size. These are icon-catalog quirks and
// must stay a lookup, not a formula.
var sizeOverrides = map[Platform]map[int]SizeOverride{
	PlatformIOS: {
		166: {Render: 166, Display: 167},
	},
	PlatformWatchOS: {
		54: {Render: 55, Display: 55},
		86: {Render: 87, Display: 87},
	},
}

func (e ResolutionEntry) nominal() int {
	return int(math.Round(e.Nominal))
}

// PixelSize is the edge length of the rendered canvas.
func (e ResolutionEntry) PixelSize() int {
	if e.Override != nil {
		return e.Override.Render
	}
	return e.nominal()
}

// Points is the per-scale size encoded in the filename.
func (e ResolutionEntry) Points() int {
	return e.PixelSize() / e.Scale
}

// ManifestSize is the per-scale size written to the manifest "size" field.
func (e ResolutionEntry) ManifestSize() int {
	if e.Override != nil {
		return e.Override.Display / e.Scale
	}
	return e.nominal() / e.Scale
}

// Filename is the deterministic asset name, e.g. Icon-App-30x30@2x.png.
func (e ResolutionEntry) Filename() string {
	px := e.Points()
	return fmt.Sprintf("Icon-App-%dx%d@%dx.png", px, px, e.Scale)
}

// ScaleLabel formats the scale the way the manifest does ("2x").
func (e ResolutionEntry) ScaleLabel() string {
	return fmt.Sprintf("%dx", e.Scale)
}

// SizeLabel formats the manifest size field ("30x30").
func (e ResolutionEntry) SizeLabel() string {
	s := e.ManifestSize()
	return fmt.Sprintf("%dx%d", s, s)
}

type slot struct {
	size  float64
	scale int
}

type profile struct {
	idiom       string
	platformTag string
	slots       []slot
}

// Slot order follows the canonical Xcode icon-set ordering for each platform.
var profiles = map[Platform]profile{
	PlatformIOS: {
		idiom:       "universal",
		platformTag: "ios",
		slots: []slot{
			{40, 2}, {60, 3}, {58, 2}, {87, 3}, {76, 2}, {114, 3}, {80, 2}, {120, 3},
			{120, 2}, {180, 3}, {128, 2}, {192, 3}, {136, 2}, {152, 2}, {166, 2}, {1024, 1},
		},
	},
	PlatformMacOS: {
		idiom: "mac",
		slots: []slot{
			{16, 1}, {32, 2}, {32, 1}, {64, 2}, {128, 1},
			{256, 2}, {256, 1}, {512, 2}, {512, 1}, {1024, 2},
		},
	},
	PlatformWatchOS: {
		idiom:       "universal",
		platformTag: "watchos",
		slots: []slot{
			{44, 2}, {48, 2}, {54, 2}, {58, 2}, {60, 2}, {64, 2}, {66, 2}, {80, 2}, {86, 2}, {88, 2},
			{92, 2}, {100, 2}, {102, 2}, {108, 2}, {172, 2}, {196, 2}, {216, 2}, {234, 2}, {258, 2}, {1024, 1},
		},
	},
}

// EntriesFor returns the ordered resolution table for a platform. The
// returned slice is a fresh copy; an unknown platform yields nil.
func EntriesFor(p Platform) []ResolutionEntry {
	prof, ok := profiles[p]
	if !ok {
		return nil
	}

	overrides := sizeOverrides[p]
	entries := make([]ResolutionEntry, 0, len(prof.slots))
	for _, s := range prof.slots {
		entry := ResolutionEntry{
			Nominal:     s.size,
			Scale:       s.scale,
			Idiom:       prof.idiom,
			PlatformTag: prof.platformTag,
		}
		if o, ok := overrides[entry.nominal()]; ok {
			o := o
			entry.Override = &o
		}
		entries = append(entries, entry)
	}
	return entries
}
