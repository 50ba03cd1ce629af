package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("v0"), 0o644))

	var calls atomic.Int32
	changed := make(chan string, 4)
	w, err := New(src, 100*time.Millisecond, func(path string) {
		calls.Add(1)
		changed <- path
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(src, []byte{byte(i)}, 0o644))
	}

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(src)
		assert.Equal(t, abs, path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "gone", "logo.png"), 0, func(string) {}, nil)
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background()))
}
