package bundle

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("bbb"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Contents.json"), []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	var buf bytes.Buffer
	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, TarDir(&buf, dir, "AppIcon_logo.appiconset", mtime))

	tr := tar.NewReader(&buf)
	var names []string
	contents := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
		assert.True(t, hdr.ModTime.Equal(mtime))
		if hdr.Typeflag == tar.TypeReg {
			assert.Equal(t, int64(0o644), hdr.Mode)
			data, err := io.ReadAll(tr)
			require.NoError(t, err)
			contents[hdr.Name] = string(data)
		}
	}

	assert.Equal(t, []string{
		"AppIcon_logo.appiconset/",
		"AppIcon_logo.appiconset/Contents.json",
		"AppIcon_logo.appiconset/b.png",
	}, names)
	assert.Equal(t, "bbb", contents["AppIcon_logo.appiconset/b.png"])
}

func TestTarDir_Deterministic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o644))

	mtime := time.Unix(0, 0).UTC()
	var first, second bytes.Buffer
	require.NoError(t, TarDir(&first, dir, "set", mtime))
	require.NoError(t, TarDir(&second, dir, "set", mtime))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestTarDir_MissingDir(t *testing.T) {
	var buf bytes.Buffer
	err := TarDir(&buf, filepath.Join(t.TempDir(), "nope"), "", time.Now())
	assert.Error(t, err)
}
