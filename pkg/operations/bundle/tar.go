// Package bundle packs an icon-set directory into a tar stream.
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// TarDir writes the regular files directly inside dir to w as a tar
// archive. Entries are named <prefix>/<file>, sorted by name, and carry a
// fixed mode and modTime so the archive depends only on file contents.
func TarDir(w io.Writer, dir, prefix string, modTime time.Time) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	tw := tar.NewWriter(w)

	if prefix != "" {
		header := &tar.Header{
			Typeflag: tar.TypeDir,
			Name:     prefix + "/",
			Mode:     permissions.DefaultDirPerms,
			ModTime:  modTime,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header: %w", err)
		}
	}

	for _, name := range names {
		if err := addFile(tw, filepath.Join(dir, name), path.Join(prefix, name), modTime); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar writer: %w", err)
	}
	return nil
}

func addFile(tw *tar.Writer, src, name string, modTime time.Time) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     permissions.DefaultFilePerms,
		Size:     info.Size(),
		ModTime:  modTime,
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("writing tar header: %w", err)
	}

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("writing tar data: %w", err)
	}
	return nil
}
