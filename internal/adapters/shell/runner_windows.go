//go:build windows

package shell

import (
	"context"
	"os/exec"
	"syscall"
)

// shellCommand hands commandLine to cmd.exe verbatim. The default argument
// escaping of os/exec would re-quote the already quoted parameter blob.
func shellCommand(ctx context.Context, commandLine string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd.exe /S /C "` + commandLine + `"`}
	return cmd
}
