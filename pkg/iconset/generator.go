package iconset

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// GeneratedAsset is the outcome for one resolution entry. A failed asset has
// an empty Filename and a non-nil Err.
type GeneratedAsset struct {
	Entry    ResolutionEntry
	Filename string
	Width    int
	Height   int
	Err      error
}

// Failed reports whether the entry has no usable file.
func (a GeneratedAsset) Failed() bool {
	return a.Err != nil || a.Filename == ""
}

// Result describes one generation run.
type Result struct {
	Platform     Platform
	SourcePath   string
	OutputDir    string
	ManifestPath string
	Assets       []GeneratedAsset
	Duration     time.Duration
}

// FailedCount returns the number of entries without a file.
func (r *Result) FailedCount() int {
	n := 0
	for _, a := range r.Assets {
		if a.Failed() {
			n++
		}
	}
	return n
}

// Generator runs the icon-set pipeline. Runs are serialized per run lock:
// Run waits for an in-progress run, TryRun rejects instead. Generators made
// with Derive share their parent's lock.
type Generator struct {
	logger    hclog.Logger
	resampler Resampler
	writer    AssetWriter
	fileMode  os.FileMode
	opts      []Option
	mu        *sync.Mutex
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithResampler sets the resampler.
func WithResampler(r Resampler) Option {
	return func(g *Generator) { g.resampler = r }
}

// WithWriter sets the asset writer.
func WithWriter(w AssetWriter) Option {
	return func(g *Generator) { g.writer = w }
}

// WithFileMode sets the mode of written assets and the manifest. The icon
// set directory gets the matching directory mode.
func WithFileMode(perm os.FileMode) Option {
	return func(g *Generator) { g.fileMode = perm.Perm() }
}

// NewGenerator returns a Generator with the default bilinear resampler and
// PNG writer unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		opts: opts,
		mu:   &sync.Mutex{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	if g.resampler == nil {
		g.resampler, _ = NewResampler(DefaultFilter)
	}
	if g.fileMode == 0 {
		g.fileMode = permissions.DefaultFilePerms
	}
	if g.writer == nil {
		w := NewPNGWriter(g.logger.Named("writer"))
		w.Perm = g.fileMode
		g.writer = w
	}
	return g
}

// Derive returns a Generator configured with g's options followed by opts.
// It shares g's run lock, so runs of both are serialized together.
func (g *Generator) Derive(opts ...Option) *Generator {
	all := make([]Option, 0, len(g.opts)+len(opts))
	all = append(all, g.opts...)
	all = append(all, opts...)
	d := NewGenerator(all...)
	d.mu = g.mu
	return d
}

// Generate runs the pipeline and reports success. It returns false only
// when the run could not start (undecodable source, unknown platform);
// per-entry failures show up as manifest entries without a filename.
func (g *Generator) Generate(sourcePath, outputBaseDir string, p Platform) bool {
	_, err := g.Run(sourcePath, outputBaseDir, p)
	return err == nil
}

// Run executes the pipeline, waiting for any run already in progress.
func (g *Generator) Run(sourcePath, outputBaseDir string, p Platform) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.run(sourcePath, outputBaseDir, p)
}

// TryRun executes the pipeline unless another run is in progress.
func (g *Generator) TryRun(sourcePath, outputBaseDir string, p Platform) (*Result, error) {
	if !g.mu.TryLock() {
		return nil, iconerrors.ErrGeneratorBusy
	}
	defer g.mu.Unlock()
	return g.run(sourcePath, outputBaseDir, p)
}

func (g *Generator) run(sourcePath, outputBaseDir string, p Platform) (*Result, error) {
	start := time.Now()

	entries := EntriesFor(p)
	if entries == nil {
		g.logger.Error("❌ Unknown platform", "platform", int(p))
		return nil, fmt.Errorf("%w: %d", iconerrors.ErrUnknownPlatform, int(p))
	}

	g.logger.Info("🎨 Generating icon set",
		"source", sourcePath,
		"platform", p.String(),
		"entries", len(entries),
		"filter", g.resampler.Name(),
		"mode", permissions.FormatOctal(g.fileMode))

	src, err := LoadSource(sourcePath)
	if err != nil {
		g.logger.Error("❌ Failed to load source image", "source", sourcePath, "error", err)
		return nil, err
	}
	g.logger.Debug("🔍 Source decoded",
		"format", src.Format,
		"width", src.Width(),
		"height", src.Height())

	outputDir := AllocateOutputDir(outputBaseDir, filepath.Base(sourcePath), permissions.DirFor(g.fileMode), g.logger)

	result := &Result{
		Platform:   p,
		SourcePath: sourcePath,
		OutputDir:  outputDir,
		Assets:     make([]GeneratedAsset, 0, len(entries)),
	}
	for i, entry := range entries {
		asset := g.renderEntry(src, outputDir, entry)
		if asset.Failed() {
			g.logger.Warn("⚠️ Entry failed",
				"entry", i,
				"size", entry.PixelSize(),
				"scale", entry.Scale,
				"error", asset.Err)
		}
		result.Assets = append(result.Assets, asset)
	}

	manifestPath, err := WriteManifest(outputDir, p, result.Assets, g.fileMode, g.logger)
	if err != nil {
		g.logger.Error("❌ Failed to write manifest", "dir", outputDir, "error", err)
	}
	result.ManifestPath = manifestPath
	result.Duration = time.Since(start)

	g.logger.Info("✅ Icon set generated",
		"dir", outputDir,
		"assets", len(result.Assets)-result.FailedCount(),
		"failed", result.FailedCount(),
		"duration", result.Duration)

	return result, nil
}

func (g *Generator) renderEntry(src *SourceImage, dir string, entry ResolutionEntry) GeneratedAsset {
	asset := GeneratedAsset{Entry: entry}
	size := entry.PixelSize()

	img, err := g.resampler.Resample(src.Image, size, size)
	if err != nil {
		asset.Err = fmt.Errorf("resample %dx%d: %w", size, size, err)
		return asset
	}

	filename := entry.Filename()
	path := filepath.Join(dir, filename)
	if err := g.writer.Write(img, path); err != nil {
		asset.Err = fmt.Errorf("write %s: %w", filename, err)
		return asset
	}

	asset.Filename = filename
	asset.Width = img.Bounds().Dx()
	asset.Height = img.Bounds().Dy()
	g.logger.Debug("🖼️ Asset generated", "file", filename, "pixels", size)
	return asset
}
