package locator_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/adapters/locator"
	"go.trai.ch/gdmcp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsChangedExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe := fakeExecutable(t, "godot")
	sibling := filepath.Join(filepath.Dir(exe), "notes.txt")

	var mu sync.Mutex
	var changed []string
	w, err := locator.NewWatcher(log, func(key string) {
		mu.Lock()
		defer mu.Unlock()
		changed = append(changed, key)
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Watch(exe))

	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\necho 4.4\n"), 0o755)) //nolint:gosec // test executable

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, key := range changed {
		assert.Equal(t, exe, key, "only the watched executable is reported")
	}
}

func TestWatcher_RemoveIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe := fakeExecutable(t, "godot")
	got := make(chan string, 8)
	w, err := locator.NewWatcher(log, func(key string) { got <- key })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Watch(exe))
	require.NoError(t, os.Remove(exe))

	select {
	case key := <-got:
		assert.Equal(t, exe, key)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for removed executable")
	}
}
