//go:build !windows

package shell

import (
	"context"
	"os/exec"
)

func shellCommand(ctx context.Context, commandLine string) *exec.Cmd {
	return exec.CommandContext(ctx, "sh", "-c", commandLine) //nolint:gosec // built from quoted arguments
}
