package iconset

import (
	"encoding/json"
	"errors"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter fails for one filename and delegates the rest.
type failingWriter struct {
	next     AssetWriter
	failName string
}

func (w *failingWriter) Write(img image.Image, path string) error {
	if filepath.Base(path) == w.failName {
		return errors.New("simulated disk full")
	}
	return w.next.Write(img, path)
}

func testLogger(t *testing.T) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
}

func TestGenerator_RoundTrip(t *testing.T) {
	for _, p := range Platforms {
		t.Run(p.String(), func(t *testing.T) {
			dir := t.TempDir()
			src := writeSourcePNG(t, dir, "logo.png", 48)

			g := NewGenerator(WithLogger(testLogger(t)))
			result, err := g.Run(src, dir, p)
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(dir, "AppIcon_logo.appiconset"), result.OutputDir)
			assert.Equal(t, 0, result.FailedCount())

			entries := EntriesFor(p)
			require.Len(t, result.Assets, len(entries))
			for i, asset := range result.Assets {
				want := entries[i].PixelSize()
				assert.Equal(t, entries[i].Filename(), asset.Filename)
				img := decodePNG(t, filepath.Join(result.OutputDir, asset.Filename))
				assert.Equal(t, want, img.Bounds().Dx(), asset.Filename)
				assert.Equal(t, want, img.Bounds().Dy(), asset.Filename)
			}

			files, err := os.ReadDir(result.OutputDir)
			require.NoError(t, err)
			assert.Len(t, files, len(entries)+1)

			data, err := os.ReadFile(result.ManifestPath)
			require.NoError(t, err)
			var m Manifest
			require.NoError(t, json.Unmarshal(data, &m))
			assert.Len(t, m.Images, len(entries))
		})
	}
}

func TestGenerator_PerEntryFailureKeepsSlot(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 32)

	entries := EntriesFor(PlatformWatchOS)
	writer := &failingWriter{next: NewPNGWriter(nil), failName: entries[3].Filename()}
	g := NewGenerator(WithWriter(writer))

	assert.True(t, g.Generate(src, dir, PlatformWatchOS))

	outDir := filepath.Join(dir, "AppIcon_logo.appiconset")
	data, err := os.ReadFile(filepath.Join(outDir, ManifestFileName))
	require.NoError(t, err)

	var doc struct {
		Images []map[string]string `json:"images"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Images, len(entries))
	assert.NotContains(t, doc.Images[3], "filename")
	assert.Equal(t, map[string]string{
		"idiom":    "universal",
		"platform": "watchos",
		"scale":    "2x",
		"size":     "29x29",
	}, doc.Images[3])

	_, err = os.Stat(filepath.Join(outDir, entries[3].Filename()))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outDir, entries[4].Filename()))
	assert.NoError(t, err)
}

func TestGenerator_ResampleFailureRecorded(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	g := NewGenerator(WithResampler(&limitResampler{max: 100}))
	result, err := g.Run(src, dir, PlatformMacOS)
	require.NoError(t, err)

	require.Len(t, result.Assets, 10)
	for _, a := range result.Assets {
		if a.Entry.PixelSize() > 100 {
			assert.True(t, a.Failed())
			assert.ErrorIs(t, a.Err, iconerrors.ErrCanvasTooLarge)
		} else {
			assert.False(t, a.Failed(), a.Entry.Filename())
		}
	}
	assert.Equal(t, 6, result.FailedCount())
}

func TestGenerator_UndecodableSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o644))

	g := NewGenerator()
	assert.False(t, g.Generate(src, dir, PlatformIOS))

	_, err := g.Run(src, dir, PlatformIOS)
	assert.ErrorIs(t, err, iconerrors.ErrSourceDecode)

	matches, err := filepath.Glob(filepath.Join(dir, "AppIcon_*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGenerator_RejectsFileURL(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	_, err := NewGenerator().Run("file://"+src, dir, PlatformIOS)
	assert.ErrorIs(t, err, iconerrors.ErrSourceURL)
}

func TestGenerator_UnknownPlatform(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	assert.False(t, NewGenerator().Generate(src, dir, Platform(3)))
}

func TestGenerator_RunsNeverReuseDirectory(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)
	g := NewGenerator()

	first, err := g.Run(src, dir, PlatformMacOS)
	require.NoError(t, err)
	second, err := g.Run(src, dir, PlatformMacOS)
	require.NoError(t, err)

	assert.NotEqual(t, first.OutputDir, second.OutputDir)
	assert.True(t, strings.HasSuffix(second.OutputDir, "AppIcon_logo_1.appiconset"))
}

// blockingResampler parks the first call until released.
type blockingResampler struct {
	Resampler
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingResampler) Resample(src image.Image, w, h int) (*image.NRGBA, error) {
	r.once.Do(func() {
		close(r.started)
		<-r.release
	})
	return r.Resampler.Resample(src, w, h)
}

// limitResampler refuses canvases larger than max.
type limitResampler struct {
	max int
}

func (r *limitResampler) Name() string { return "limit" }

func (r *limitResampler) Resample(src image.Image, w, h int) (*image.NRGBA, error) {
	if w > r.max || h > r.max {
		return nil, iconerrors.ErrCanvasTooLarge
	}
	inner, _ := NewResampler("bilinear")
	return inner.Resample(src, w, h)
}

func TestGenerator_TryRunRejectsConcurrentRun(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	inner, err := NewResampler("bilinear")
	require.NoError(t, err)
	blocking := &blockingResampler{
		Resampler: inner,
		started:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	g := NewGenerator(WithResampler(blocking))

	done := make(chan bool)
	go func() {
		done <- g.Generate(src, dir, PlatformMacOS)
	}()

	<-blocking.started
	_, err = g.TryRun(src, dir, PlatformMacOS)
	assert.ErrorIs(t, err, iconerrors.ErrGeneratorBusy)

	close(blocking.release)
	assert.True(t, <-done)

	_, err = g.TryRun(src, dir, PlatformMacOS)
	assert.NoError(t, err)
}

func TestGenerator_DeriveSharesRunLock(t *testing.T) {
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	inner, err := NewResampler("bilinear")
	require.NoError(t, err)
	blocking := &blockingResampler{
		Resampler: inner,
		started:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	base := NewGenerator()
	running := base.Derive(WithResampler(blocking))
	other := base.Derive(WithLogger(testLogger(t)))

	done := make(chan bool)
	go func() {
		done <- running.Generate(src, dir, PlatformMacOS)
	}()

	<-blocking.started
	_, err = other.TryRun(src, dir, PlatformMacOS)
	assert.ErrorIs(t, err, iconerrors.ErrGeneratorBusy)
	_, err = base.TryRun(src, dir, PlatformMacOS)
	assert.ErrorIs(t, err, iconerrors.ErrGeneratorBusy)

	close(blocking.release)
	assert.True(t, <-done)

	_, err = other.TryRun(src, dir, PlatformMacOS)
	assert.NoError(t, err)
}

func TestGenerator_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()
	src := writeSourcePNG(t, dir, "logo.png", 16)

	result, err := NewGenerator(WithFileMode(0o600)).Run(src, dir, PlatformMacOS)
	require.NoError(t, err)

	info, err := os.Stat(result.OutputDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	for _, name := range []string{result.Assets[0].Filename, ManifestFileName} {
		info, err := os.Stat(filepath.Join(result.OutputDir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), name)
	}
}
