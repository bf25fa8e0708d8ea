package ports

import "go.trai.ch/gdmcp/internal/core/domain"

// Supervisor owns at most one long-running engine process.
//
//go:generate go run go.uber.org/mock/mockgen -source=supervisor.go -destination=mocks/mock_supervisor.go -package=mocks
type Supervisor interface {
	// Start kills any tracked process, then spawns and tracks a new one.
	Start(exe string, args []string) error

	// Launch spawns an untracked process and returns once it has started.
	Launch(exe string, args []string) error

	// Snapshot returns the buffered output of the tracked process.
	// It fails with domain.ErrNoActiveProcess when idle.
	Snapshot() (domain.ProcessOutput, error)

	// Stop kills the tracked process and returns its final buffered output.
	// It fails with domain.ErrNoActiveProcess when idle.
	Stop() (domain.ProcessOutput, error)

	// Shutdown kills any tracked process.
	Shutdown()
}
