//go:build !windows
// +build !windows

package atomicfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Replace atomically replaces destPath with sourcePath.
// On Unix, os.Rename is already atomic, so this is a simple wrapper.
func Replace(sourcePath, destPath string, logger hclog.Logger) error {
	logger.Trace("Performing atomic file replacement",
		"source", sourcePath,
		"dest", destPath)

	if err := os.Rename(sourcePath, destPath); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
