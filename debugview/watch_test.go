package debugview_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tacgrid/debugview"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 1, height: 1}\n"), 0o644))

	w, err := debugview.NewFileWatcher(path, 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	// a sibling file is ignored
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 2, height: 1}\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	_, err := debugview.NewFileWatcher(filepath.Join(t.TempDir(), "nope", "level.yaml"), debugview.DefaultDebounce, nil)
	require.Error(t, err)
}
