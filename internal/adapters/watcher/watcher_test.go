package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetag/internal/adapters/watcher"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/vitetag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testWindow = 100 * time.Millisecond

func collect(w *watcher.Watcher) <-chan ports.WatchEvent {
	ch := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(ch)
		for event := range w.Events() {
			ch <- event
		}
	}()
	return ch
}

func next(t *testing.T, ch <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "event stream closed")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for hot file event")
		return ports.WatchEvent{}
	}
}

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return watcher.NewWatcher(log, testWindow)
}

func TestWatcher_CreateAndRemove(t *testing.T) {
	dir := t.TempDir()
	hotFile := filepath.Join(dir, "hot")

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), hotFile))
	t.Cleanup(func() { _ = w.Stop() })

	events := collect(w)

	require.NoError(t, os.WriteFile(hotFile, []byte("http://localhost:5173"), domain.FilePerm))
	created := next(t, events)
	assert.Equal(t, hotFile, created.Path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, created.Operation)

	require.NoError(t, os.Remove(hotFile))
	removed := next(t, events)
	assert.Equal(t, hotFile, removed.Path)
	assert.Equal(t, ports.OpRemove, removed.Operation)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	hotFile := filepath.Join(dir, "hot")

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), hotFile))
	t.Cleanup(func() { _ = w.Stop() })

	events := collect(w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(hotFile, []byte("http://localhost:5173"), domain.FilePerm))

	event := next(t, events)
	assert.Equal(t, hotFile, event.Path)
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), filepath.Join(t.TempDir(), "hot")))

	events := collect(w)
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream was not closed")
	}
}

func TestWatcher_ContextCancelEndsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	w := newWatcher(t)
	require.NoError(t, w.Start(ctx, filepath.Join(t.TempDir(), "hot")))

	events := collect(w)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream was not closed")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newWatcher(t)

	err := w.Start(t.Context(), filepath.Join(t.TempDir(), "missing", "hot"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWatcherFailed.Error())
}

func TestWatcher_StartTwice(t *testing.T) {
	w := newWatcher(t)
	hotFile := filepath.Join(t.TempDir(), "hot")
	require.NoError(t, w.Start(t.Context(), hotFile))
	t.Cleanup(func() { _ = w.Stop() })

	err := w.Start(t.Context(), hotFile)
	require.ErrorIs(t, err, domain.ErrWatcherFailed)
}

func TestWatcher_NotStarted(t *testing.T) {
	w := newWatcher(t)

	require.NoError(t, w.Stop())
	for range w.Events() {
		t.Fatal("unexpected event")
	}
}
