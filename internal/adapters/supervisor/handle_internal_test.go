package supervisor

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLineWriter(t *testing.T) {
	events := make(chan event, 10)
	w := &lineWriter{stream: streamErrors, events: events}

	for _, chunk := range []string{"par", "tial\r\nnext\n", "tail"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	w.flush()
	w.flush()
	close(events)

	var lines []string
	for ev := range events {
		assert.Equal(t, streamErrors, ev.stream)
		lines = append(lines, ev.line)
	}
	assert.Equal(t, []string{"partial", "next", "tail"}, lines)
}

func TestHandle_AppendCapsBuffer(t *testing.T) {
	h := newHandle("godot", nil, 2)
	for _, l := range []string{"a", "b", "c"} {
		h.append(streamOutput, l)
	}
	h.append(streamErrors, "e")

	out := h.snapshot()
	assert.Equal(t, []string{"b", "c"}, out.Output)
	assert.Equal(t, []string{"e"}, out.Errors)

	out.Output[0] = "mutated"
	assert.Equal(t, []string{"b", "c"}, h.snapshot().Output)
}

func TestSupervisor_RestartKillsPrevious(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	s := New(log, 0)
	t.Cleanup(s.Shutdown)

	require.NoError(t, s.Start("sh", []string{"-c", "exec sleep 30"}))
	first := s.active

	require.NoError(t, s.Start("sh", []string{"-c", "exec sleep 30"}))
	second := s.active
	require.NotSame(t, first, second)

	select {
	case <-first.done:
	case <-time.After(5 * time.Second):
		t.Fatal("first process was not killed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Same(t, second, s.active, "a stale exit must not clear the current handle")
}
