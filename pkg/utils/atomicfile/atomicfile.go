// Package atomicfile writes files through a temporary sibling and an atomic
// rename, so readers never observe a partially written asset or manifest.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// WriteFile writes data to path with atomic-replace semantics.
func WriteFile(path string, data []byte, perm os.FileMode, logger hclog.Logger) error {
	return Write(path, perm, logger, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Write streams content produced by fill into a temporary file in the
// destination directory, then renames it over path.
func Write(path string, perm os.FileMode, logger hclog.Logger, fill func(w io.Writer) error) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Debug("Failed to remove temp file", "path", tmpPath, "error", rmErr)
		}
	}

	if err := fill(tmp); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := Replace(tmpPath, path, logger); err != nil {
		cleanup()
		return err
	}
	return nil
}
