// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/gdmcp/internal/core/domain"
)

// CommandRunner starts external processes and captures their output streams.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes commandLine through the platform shell.
	//
	// A process that ran and exited non-zero is returned as a Result, not an error.
	// An error is returned only when the process could not be started or ctx ended.
	Run(ctx context.Context, commandLine string) (domain.Result, error)

	// Exec executes name with args directly, without a shell, with the same error contract as Run.
	Exec(ctx context.Context, name string, args []string) (domain.Result, error)
}

// OperationExecutor invokes the engine's headless operations entry point.
type OperationExecutor interface {
	// Execute runs operation against the project with the given parameters.
	// A domain failure reported on stderr is returned in the Result, not as an error.
	Execute(ctx context.Context, operation string, params *domain.Params, projectPath string) (domain.Result, error)

	// Version returns the trimmed answer of the engine's version query.
	Version(ctx context.Context) (string, error)
}
