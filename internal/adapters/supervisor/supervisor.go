// Package supervisor tracks the single long-running engine process and buffers its output.
package supervisor

import (
	"os/exec"
	"sync"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Supervisor implements ports.Supervisor.
type Supervisor struct {
	logger   ports.Logger
	maxLines int

	mu     sync.Mutex
	active *handle
}

// New creates an idle Supervisor. maxLines caps each stream buffer; zero means unbounded.
func New(logger ports.Logger, maxLines int) *Supervisor {
	if maxLines < 0 {
		maxLines = 0
	}
	return &Supervisor{logger: logger, maxLines: maxLines}
}

// Start kills any tracked process, then spawns exe and tracks it.
func (s *Supervisor) Start(exe string, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.logger.Debug("killing existing godot process")
		s.active.kill()
		s.active = nil
	}

	h := newHandle(exe, args, s.maxLines)
	if err := h.start(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", exe)
	}
	s.active = h
	s.logger.Debug("started godot process " + exe)

	go h.pump(s.finish)
	return nil
}

// Launch spawns exe without tracking it. The process is reaped in the background.
func (s *Supervisor) Launch(exe string, args []string) error {
	cmd := exec.Command(exe, args...) //nolint:gosec,noctx // detached editor outlives the request
	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", exe)
	}
	s.logger.Debug("launched godot process " + exe)

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Snapshot returns copies of the tracked process's buffers.
func (s *Supervisor) Snapshot() (domain.ProcessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.ProcessOutput{}, domain.ErrNoActiveProcess
	}
	return s.active.snapshot(), nil
}

// Stop kills the tracked process and returns what it had written.
func (s *Supervisor) Stop() (domain.ProcessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.ProcessOutput{}, domain.ErrNoActiveProcess
	}
	s.logger.Debug("stopping active godot process")
	s.active.kill()
	out := s.active.snapshot()
	s.active = nil
	return out, nil
}

// Shutdown kills any tracked process.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.logger.Debug("killing godot process on shutdown")
		s.active.kill()
		s.active = nil
	}
}

// finish returns the supervisor to idle when h is still the tracked process.
func (s *Supervisor) finish(h *handle, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != h {
		return
	}
	if err != nil {
		s.logger.Debug("godot process exited: " + err.Error())
	} else {
		s.logger.Debug("godot process exited")
	}
	s.active = nil
}
