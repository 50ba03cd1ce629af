package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	iconerrors "github.com/provide-io/iconmaker/pkg/errors"
	"github.com/provide-io/iconmaker/pkg/operations"
	"github.com/provide-io/iconmaker/pkg/operations/bundle"
	_ "github.com/provide-io/iconmaker/pkg/operations/compress"
	"github.com/provide-io/iconmaker/pkg/utils/atomicfile"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// DefaultArchiveFormat is used when no format is given.
const DefaultArchiveFormat = "tar.gz"

// ArchiveName returns the default archive file name for an icon-set
// directory, e.g. AppIcon_logo.appiconset.tar.gz.
func ArchiveName(dir, format string) (string, error) {
	ops, err := parseArchiveFormat(format)
	if err != nil {
		return "", err
	}
	return filepath.Base(filepath.Clean(dir)) + "." + operations.ChainName(ops), nil
}

// WriteArchive packs the icon-set directory into dest. Entries live under
// the directory's own name and carry modTime.
func WriteArchive(dir, dest, format string, modTime time.Time, logger hclog.Logger) error {
	logger = orNull(logger)

	ops, err := parseArchiveFormat(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	prefix := filepath.Base(filepath.Clean(dir))
	if err := bundle.TarDir(&buf, dir, prefix, modTime); err != nil {
		return fmt.Errorf("failed to bundle %s: %w", dir, err)
	}

	data, err := operations.ApplyChain(buf.Bytes(), ops[1:])
	if err != nil {
		return fmt.Errorf("failed to compress archive: %w", err)
	}

	if err := atomicfile.WriteFile(dest, data, permissions.DefaultFilePerms, logger); err != nil {
		return err
	}

	logger.Info("📦 Archive written",
		"path", dest,
		"format", operations.ChainName(ops),
		"tar_size", buf.Len(),
		"size", len(data))
	return nil
}

func parseArchiveFormat(format string) ([]uint8, error) {
	if format == "" {
		format = DefaultArchiveFormat
	}
	ops, err := operations.ParseChain(format)
	if err != nil || len(ops) == 0 || ops[0] != operations.OP_TAR {
		return nil, fmt.Errorf("%w: %q", iconerrors.ErrUnknownArchiveFormat, format)
	}
	return ops, nil
}
