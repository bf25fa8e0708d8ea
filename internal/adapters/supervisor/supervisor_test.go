package supervisor_test

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/adapters/supervisor"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newSupervisor(t *testing.T, maxLines int) *supervisor.Supervisor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	s := supervisor.New(log, maxLines)
	t.Cleanup(s.Shutdown)
	return s
}

func script(body string) []string {
	return []string{"-c", body}
}

func waitForOutput(t *testing.T, s *supervisor.Supervisor, want domain.ProcessOutput) {
	t.Helper()
	require.Eventually(t, func() bool {
		got, err := s.Snapshot()
		return err == nil && assert.ObjectsAreEqual(want, got)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSupervisor_IdleErrors(t *testing.T) {
	s := newSupervisor(t, 0)

	_, err := s.Snapshot()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)

	_, err = s.Stop()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)

	s.Shutdown()
}

func TestSupervisor_SplitsStreamsIntoLines(t *testing.T) {
	s := newSupervisor(t, 0)

	require.NoError(t, s.Start("sh", script(`printf 'one\ntw'; printf 'o\n'; echo oops >&2; exec sleep 30`)))

	waitForOutput(t, s, domain.ProcessOutput{Output: []string{"one", "two"}, Errors: []string{"oops"}})

	out, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, out.Output)
	assert.Equal(t, []string{"oops"}, out.Errors)

	_, err = s.Snapshot()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)
}

func TestSupervisor_SecondStartReplacesFirst(t *testing.T) {
	s := newSupervisor(t, 0)

	require.NoError(t, s.Start("sh", script(`echo first; exec sleep 30`)))
	waitForOutput(t, s, domain.ProcessOutput{Output: []string{"first"}, Errors: []string{}})

	require.NoError(t, s.Start("sh", script(`echo second; exec sleep 30`)))
	waitForOutput(t, s, domain.ProcessOutput{Output: []string{"second"}, Errors: []string{}})

	// The killed first process must not clear the second.
	time.Sleep(100 * time.Millisecond)
	out, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, out.Output)
}

func TestSupervisor_ExitReturnsToIdle(t *testing.T) {
	s := newSupervisor(t, 0)

	require.NoError(t, s.Start("sh", script(`echo bye`)))

	require.Eventually(t, func() bool {
		_, err := s.Snapshot()
		return err != nil
	}, 5*time.Second, 10*time.Millisecond)

	_, err := s.Stop()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)
}

func TestSupervisor_BufferKeepsNewestLines(t *testing.T) {
	s := newSupervisor(t, 3)

	require.NoError(t, s.Start("sh", script(`for i in 1 2 3 4 5; do echo $i; done; exec sleep 30`)))
	waitForOutput(t, s, domain.ProcessOutput{Output: []string{"3", "4", "5"}, Errors: []string{}})
}

func TestSupervisor_SpawnFailureLeavesIdle(t *testing.T) {
	s := newSupervisor(t, 0)
	missing := filepath.Join(t.TempDir(), "godot")

	require.NoError(t, s.Start("sh", script(`exec sleep 30`)))

	err := s.Start(missing, nil)
	require.ErrorIs(t, err, domain.ErrSpawnFailed)

	_, err = s.Snapshot()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)
}

func TestSupervisor_Launch(t *testing.T) {
	s := newSupervisor(t, 0)

	require.NoError(t, s.Launch("sh", script(`exit 0`)))

	_, err := s.Snapshot()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess, "launched processes are not tracked")

	err = s.Launch(filepath.Join(t.TempDir(), "godot"), []string{"-e"})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestSupervisor_Shutdown(t *testing.T) {
	s := newSupervisor(t, 0)

	require.NoError(t, s.Start("sh", script(`exec sleep 30`)))
	s.Shutdown()

	_, err := s.Snapshot()
	require.ErrorIs(t, err, domain.ErrNoActiveProcess)
}
