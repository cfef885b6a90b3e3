package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unit.c")
	require.NoError(t, os.WriteFile(path, []byte("int a;"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, zerolog.Nop(), func() error {
			runs <- struct{}{}
			return nil
		})
	}()

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("initial run did not happen")
	}

	// Writes to siblings are ignored; writes to the file trigger a run.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.c"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("int b;"), 0o644))

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("change did not trigger a run")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestFileRunErrorsDoNotStopWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unit.c")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, zerolog.Nop(), func() error {
			calls.Add(1)
			return errors.New("boom")
		})
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestFileMissingDirectory(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "unit.c"), zerolog.Nop(), func() error {
		return nil
	})
	assert.ErrorContains(t, err, "watching")
}
