package iconset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// strippedExtensions are removed from the source name, case-sensitively.
var strippedExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// IconSetName strips one known image extension from the base name of
// sourceFileName.
func IconSetName(sourceFileName string) string {
	name := filepath.Base(sourceFileName)
	for _, ext := range strippedExtensions {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// DirectoryName formats the n-th candidate directory name. n == 0 has no
// counter suffix.
func DirectoryName(name string, n int) string {
	if n == 0 {
		return fmt.Sprintf("AppIcon_%s.appiconset", name)
	}
	return fmt.Sprintf("AppIcon_%s_%d.appiconset", name, n)
}

// AllocateOutputDir creates a fresh AppIcon_<name>[_<n>].appiconset under
// baseOutputDir with mode perm and returns its path. Each candidate is
// claimed with a single Mkdir, so concurrent callers never share a
// directory. If creation fails the base directory is returned unchanged.
func AllocateOutputDir(baseOutputDir, sourceFileName string, perm os.FileMode, logger hclog.Logger) string {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if perm == 0 {
		perm = permissions.DefaultDirPerms
	}

	fallback := func(path string, err error) string {
		logger.Warn("⚠️ Failed to create output directory, using base directory",
			"path", path,
			"base", baseOutputDir,
			"error", err)
		return baseOutputDir
	}

	if baseOutputDir != "" {
		if err := os.MkdirAll(baseOutputDir, perm); err != nil {
			return fallback(baseOutputDir, err)
		}
	}

	name := IconSetName(sourceFileName)
	for n := 0; ; n++ {
		path := filepath.Join(baseOutputDir, DirectoryName(name, n))
		err := os.Mkdir(path, perm)
		if err == nil {
			logger.Debug("📂 Output directory allocated", "path", path)
			return path
		}
		if !errors.Is(err, fs.ErrExist) {
			return fallback(path, err)
		}
	}
}
