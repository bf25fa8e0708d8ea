// Package executor runs one-shot engine operations through the headless operations script.
package executor

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/gdmcp/internal/adapters/shell" //nolint:depguard // command line format lives with the runner
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/gdmcp/internal/engine/codec"
	"go.trai.ch/zerr"
)

// Options configures an Executor.
type Options struct {
	// ScriptPath is the operations entry point passed with --script.
	ScriptPath string
	// DebugGodot appends --debug-godot to every operation.
	DebugGodot bool
	// VersionTimeout bounds Version.
	VersionTimeout time.Duration
	// Quote is the platform quoting strategy.
	Quote shell.Quoter
}

// Executor implements ports.OperationExecutor.
type Executor struct {
	locator ports.Locator
	runner  ports.CommandRunner
	codec   *codec.Codec
	tracer  ports.Tracer
	metrics ports.Metrics
	logger  ports.Logger
	opts    Options
}

// New creates an Executor.
func New(
	locator ports.Locator,
	runner ports.CommandRunner,
	c *codec.Codec,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	opts Options,
) *Executor {
	if opts.VersionTimeout <= 0 {
		opts.VersionTimeout = domain.DefaultVersionTimeout
	}
	if opts.Quote == nil {
		opts.Quote = shell.QuotePOSIX
	}
	return &Executor{
		locator: locator,
		runner:  runner,
		codec:   c,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
	}
}

// Execute runs operation against projectPath. Parameters are sent in snake_case as one JSON argument.
// A failure reported by the script is returned in the Result; only resolution and spawn failures are errors.
func (e *Executor) Execute(
	ctx context.Context,
	operation string,
	params *domain.Params,
	projectPath string,
) (res domain.Result, err error) {
	ctx, span := e.tracer.Start(ctx, "godot."+operation,
		ports.WithAttribute("operation", operation),
		ports.WithAttribute("project", projectPath),
	)
	id := e.metrics.Start(operation)
	defer func() {
		if err == nil && res.Failed() {
			e.metrics.End(id, zerr.With(zerr.Wrap(domain.ErrOperationFailed, firstLine(res.Stderr)), "exit_code", res.ExitCode))
		} else {
			e.metrics.End(id, err)
		}
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	exe, err := e.locator.Resolve(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	blob, err := e.codec.ToSnake(params).MarshalJSON()
	if err != nil {
		return domain.Result{}, zerr.With(zerr.Wrap(domain.ErrInvalidArguments, err.Error()), "operation", operation)
	}

	line := shell.Invocation{
		Executable:  exe,
		ProjectPath: projectPath,
		ScriptPath:  e.opts.ScriptPath,
		Operation:   operation,
		Params:      string(blob),
		DebugGodot:  e.opts.DebugGodot,
	}.CommandLine(e.opts.Quote)

	res, err = e.runner.Run(ctx, line)
	if err != nil {
		return res, zerr.With(err, "operation", operation)
	}

	span.SetAttribute("exit_code", res.ExitCode)
	if res.Failed() {
		e.logger.Debug("operation " + operation + " reported failure: " + firstLine(res.Stderr))
	}
	return res, nil
}

// Version returns the engine's trimmed answer to --version.
func (e *Executor) Version(ctx context.Context) (version string, err error) {
	ctx, span := e.tracer.Start(ctx, "godot.version")
	id := e.metrics.Start("version")
	defer func() {
		e.metrics.End(id, err)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	exe, err := e.locator.Resolve(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.VersionTimeout)
	defer cancel()

	res, err := e.runner.Exec(ctx, exe, []string{domain.FlagVersion})
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrVersionQueryFailed, err.Error()), "path", exe)
	}
	if res.ExitCode != 0 {
		return "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrVersionQueryFailed, strings.TrimSpace(res.Stderr)), "path", exe),
			"exit_code", res.ExitCode,
		)
	}

	version = strings.TrimSpace(res.Stdout)
	span.SetAttribute("version", version)
	return version, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
