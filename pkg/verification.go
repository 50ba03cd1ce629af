package pkg

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/pkg/iconset"
)

// Verification is the outcome of checking an icon-set directory against
// its platform's resolution table.
type Verification struct {
	Dir      string
	Platform iconset.Platform
	Images   int
	Missing  int
	Problems []string
}

// OK reports whether the icon set is complete and consistent.
func (v *Verification) OK() bool {
	return len(v.Problems) == 0
}

// VerifyIconSet reads dir/Contents.json, infers the platform from the
// manifest tags and checks every slot: the manifest keys match the table,
// each listed file exists, and its pixel size matches the rendered size.
func VerifyIconSet(dir string, logger hclog.Logger) (*Verification, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	data, err := os.ReadFile(filepath.Join(dir, iconset.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest iconset.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	platform, err := inferPlatform(&manifest)
	if err != nil {
		return nil, err
	}

	v := &Verification{Dir: dir, Platform: platform, Images: len(manifest.Images)}
	problem := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		logger.Warn("⚠️ Verification problem", "dir", dir, "problem", msg)
		v.Problems = append(v.Problems, msg)
	}

	entries := iconset.EntriesFor(platform)
	if len(entries) != len(manifest.Images) {
		problem("manifest has %d images, %s expects %d", len(manifest.Images), platform, len(entries))
	}
	if manifest.Info.Author != iconset.ManifestAuthor || manifest.Info.Version != iconset.ManifestVersion {
		problem("unexpected info block %+v", manifest.Info)
	}

	for i, img := range manifest.Images {
		if i >= len(entries) {
			break
		}
		entry := entries[i]

		if img.Size != entry.SizeLabel() || img.Idiom != entry.Idiom || img.Platform != entry.PlatformTag {
			problem("slot %d: got size=%s idiom=%s platform=%s", i, img.Size, img.Idiom, img.Platform)
		}
		if img.Filename == "" {
			v.Missing++
			problem("slot %d (%s): no file", i, entry.Filename())
			continue
		}

		w, h, err := imageSize(filepath.Join(dir, img.Filename))
		if err != nil {
			problem("slot %d: %s: %v", i, img.Filename, err)
			continue
		}
		if want := entry.PixelSize(); w != want || h != want {
			problem("slot %d: %s is %dx%d, want %dx%d", i, img.Filename, w, h, want, want)
		}
	}

	if v.OK() {
		logger.Info("✅ Icon set verified", "dir", dir, "platform", platform.String(), "images", v.Images)
	}
	return v, nil
}

func inferPlatform(m *iconset.Manifest) (iconset.Platform, error) {
	for _, img := range m.Images {
		switch {
		case img.Idiom == "mac":
			return iconset.PlatformMacOS, nil
		case img.Platform == "ios":
			return iconset.PlatformIOS, nil
		case img.Platform == "watchos":
			return iconset.PlatformWatchOS, nil
		}
	}
	return 0, fmt.Errorf("cannot infer platform from manifest with %d images", len(m.Images))
}

func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
