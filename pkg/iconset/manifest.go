package iconset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/provide-io/iconmaker/pkg/utils/atomicfile"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// ManifestFileName is the manifest Xcode expects inside an .appiconset.
const ManifestFileName = "Contents.json"

// Fixed info block values.
const (
	ManifestAuthor  = "xcode"
	ManifestVersion = 1
)

// ManifestImage is one entry of the "images" array. Field order is the key
// order Xcode writes.
type ManifestImage struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform,omitempty"`
	Scale    string `json:"scale,omitempty"`
	Size     string `json:"size"`
}

// ManifestInfo is the trailing info block.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Manifest is the Contents.json document.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// BuildManifest describes assets in table order. A failed asset keeps its
// slot with every key except filename. An empty asset list yields a nil
// manifest and no error.
func BuildManifest(p Platform, assets []GeneratedAsset) (*Manifest, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	entries := EntriesFor(p)
	if entries == nil {
		return nil, fmt.Errorf("%w: %d", iconerrors.ErrUnknownPlatform, int(p))
	}
	if len(entries) != len(assets) {
		return nil, fmt.Errorf("%w: %s has %d slots, got %d assets",
			iconerrors.ErrAssetCountMismatch, p, len(entries), len(assets))
	}

	m := &Manifest{
		Images: make([]ManifestImage, 0, len(entries)),
		Info:   ManifestInfo{Author: ManifestAuthor, Version: ManifestVersion},
	}
	for i, entry := range entries {
		img := ManifestImage{
			Idiom:    entry.Idiom,
			Platform: entry.PlatformTag,
			Size:     entry.SizeLabel(),
		}
		if !assets[i].Failed() {
			img.Filename = assets[i].Filename
		}
		if entry.Scale != 1 {
			img.Scale = entry.ScaleLabel()
		}
		m.Images = append(m.Images, img)
	}
	return m, nil
}

// Encode renders the manifest as indented UTF-8 JSON.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderManifest builds and encodes the manifest. It returns nil for an
// empty asset list.
func RenderManifest(p Platform, assets []GeneratedAsset) ([]byte, error) {
	m, err := BuildManifest(p, assets)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Encode()
}

// WriteManifest writes Contents.json into dir with mode perm (zero means
// the default file mode). Nothing is written for an empty asset list, in
// which case the returned path is empty.
func WriteManifest(dir string, p Platform, assets []GeneratedAsset, perm os.FileMode, logger hclog.Logger) (string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if perm == 0 {
		perm = permissions.DefaultFilePerms
	}

	data, err := RenderManifest(p, assets)
	if err != nil {
		return "", err
	}
	if data == nil {
		logger.Debug("No assets, skipping manifest", "dir", dir)
		return "", nil
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := atomicfile.WriteFile(path, data, perm, logger); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	logger.Debug("📝 Manifest written", "path", path, "images", len(assets))
	return path, nil
}
