// Package validate performs the input checks a caller owes the generator:
// the source is a readable image file with a supported extension and the
// output base is a writable directory.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
)

// SourceExtensions are the accepted source file extensions, without dot.
var SourceExtensions = []string{"png", "jpg", "gif"}

// Source checks that path names an existing regular file whose extension is
// one of SourceExtensions.
func Source(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", iconerrors.ErrSourceUnreadable)
	}
	if strings.Contains(path, "file://") {
		return fmt.Errorf("%w: %s", iconerrors.ErrSourceURL, path)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !supported(ext) {
		return fmt.Errorf("%w: %q (want one of %s)",
			iconerrors.ErrUnsupportedExtension, ext, strings.Join(SourceExtensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", iconerrors.ErrSourceUnreadable, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", iconerrors.ErrSourceUnreadable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", iconerrors.ErrSourceUnreadable, err)
	}
	return f.Close()
}

// OutputBase checks that dir exists, is a directory and accepts new files.
func OutputBase(dir string, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if dir == "" {
		return fmt.Errorf("%w: empty path", iconerrors.ErrOutputNotWritable)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", iconerrors.ErrOutputNotWritable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", iconerrors.ErrOutputNotWritable, dir)
	}

	probe, err := os.CreateTemp(dir, ".iconmaker-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %w", iconerrors.ErrOutputNotWritable, err)
	}
	if err := probe.Close(); err != nil {
		logger.Debug("Failed to close write check file", "path", probe.Name(), "error", err)
	}
	if err := os.Remove(probe.Name()); err != nil {
		logger.Warn("⚠️ Failed to remove write check file", "path", probe.Name(), "error", err)
	}
	return nil
}

func supported(ext string) bool {
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
