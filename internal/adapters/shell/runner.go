package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner that echoes child output to logger at debug level.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes commandLine through the platform shell.
func (r *Runner) Run(ctx context.Context, commandLine string) (domain.Result, error) {
	r.logger.Debug("executing command: " + commandLine)
	return r.run(ctx, shellCommand(ctx, commandLine))
}

// Exec executes name with args without a shell.
func (r *Runner) Exec(ctx context.Context, name string, args []string) (domain.Result, error) {
	return r.run(ctx, exec.CommandContext(ctx, name, args...)) //nolint:gosec // engine executable
}

func (r *Runner) run(ctx context.Context, cmd *exec.Cmd) (domain.Result, error) {
	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger, prefix: "stdout: "}
	stderrLog := &logWriter{logger: r.logger, prefix: "stderr: "}
	cmd.Stdout = io.MultiWriter(&stdout, stdoutLog)
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	res := domain.Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, zerr.With(zerr.Wrap(domain.ErrSpawnFailed, ctxErr.Error()), "command", cmd.Path)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	return res, zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", cmd.Path)
}

// logWriter forwards complete lines to the logger at debug level.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(w.prefix + strings.TrimSuffix(string(line), "\r"))
}
