// Package app implements the application layer for gdmcp.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/gdmcp/internal/adapters/mcp" //nolint:depguard // transport is driven from the app layer
	"go.trai.ch/gdmcp/internal/build"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/gdmcp/internal/engine/codec"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// MetricsServer exposes collected operation metrics over HTTP.
type MetricsServer interface {
	Serve(ctx context.Context, addr string) error
}

type handler func(ctx context.Context, args *domain.Params) (domain.Response, error)

// App dispatches tool calls to the executor, the supervisor and the project scanner.
type App struct {
	codec      *codec.Codec
	executor   ports.OperationExecutor
	supervisor ports.Supervisor
	locator    ports.Locator
	scanner    ports.ProjectScanner
	tracer     ports.Tracer
	metrics    ports.Metrics
	logger     ports.Logger

	metricsServer MetricsServer
	metricsAddr   string

	handlers map[string]handler
}

// New creates a new App instance.
func New(
	c *codec.Codec,
	executor ports.OperationExecutor,
	supervisor ports.Supervisor,
	locator ports.Locator,
	scanner ports.ProjectScanner,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
) *App {
	a := &App{
		codec:      c,
		executor:   executor,
		supervisor: supervisor,
		locator:    locator,
		scanner:    scanner,
		tracer:     tracer,
		metrics:    metrics,
		logger:     logger,
	}
	a.handlers = map[string]handler{
		domain.ToolLaunchEditor:      a.launchEditor,
		domain.ToolRunProject:        a.runProject,
		domain.ToolGetDebugOutput:    a.getDebugOutput,
		domain.ToolStopProject:       a.stopProject,
		domain.ToolGetGodotVersion:   a.getGodotVersion,
		domain.ToolListProjects:      a.listProjects,
		domain.ToolGetProjectInfo:    a.getProjectInfo,
		domain.ToolCreateScene:       a.createScene,
		domain.ToolAddNode:           a.addNode,
		domain.ToolLoadSprite:        a.loadSprite,
		domain.ToolExportMeshLibrary: a.exportMeshLibrary,
		domain.ToolSaveScene:         a.saveScene,
		domain.ToolGetUID:            a.getUID,
		domain.ToolUpdateProjectUIDs: a.updateProjectUIDs,
	}
	return a
}

// WithMetricsServer serves metrics on addr while Serve runs. An empty addr disables it.
func (a *App) WithMetricsServer(srv MetricsServer, addr string) *App {
	a.metricsServer = srv
	a.metricsAddr = addr
	return a
}

// Call runs the named tool. Parameter names may use either naming convention.
//
// Validation and engine failures are reported in the returned envelope. The error is
// non-nil only for domain.ErrUnknownTool and for fatal executable configuration errors.
func (a *App) Call(ctx context.Context, name string, args *domain.Params) (domain.Response, error) {
	h, ok := a.handlers[name]
	if !ok {
		return domain.Response{}, zerr.With(zerr.Wrap(domain.ErrUnknownTool, "no handler registered"), "tool", name)
	}

	ctx, span := a.tracer.Start(ctx, "tool."+name,
		ports.WithAttribute("tool", name),
		ports.WithAttribute("args", args.Keys()),
	)
	defer span.End()

	res, err := h(ctx, a.codec.ToCamel(args))
	if err != nil {
		span.RecordError(err)
		return domain.Response{}, err
	}
	span.SetAttribute("is_error", res.IsError)
	return res, nil
}

// Tools returns the tool catalog.
func (a *App) Tools() []domain.Tool {
	return domain.Tools
}

// Locate resolves the engine executable and queries its version.
func (a *App) Locate(ctx context.Context) (path, version string, err error) {
	path, err = a.locator.Resolve(ctx)
	if err != nil {
		return "", "", err
	}
	version, err = a.executor.Version(ctx)
	if err != nil {
		return path, "", err
	}
	return path, version, nil
}

// SetGodotPath adopts path as the executable when it validates.
// An invalid path is logged and auto-detection runs on next use.
func (a *App) SetGodotPath(ctx context.Context, path string) bool {
	return a.locator.SetPath(ctx, path)
}

// Serve answers protocol requests on in and out until EOF, ctx ends, or a fatal error.
// The executable is resolved before the first request so a broken setup fails fast.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	defer a.Shutdown()

	exe, err := a.locator.Resolve(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Using Godot at: " + exe)

	g, gctx := errgroup.WithContext(ctx)
	serveCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return mcp.NewServer(a, a.logger, build.Version).Serve(serveCtx, in, out)
	})
	if a.metricsServer != nil && a.metricsAddr != "" {
		g.Go(func() error {
			return a.metricsServer.Serve(serveCtx, a.metricsAddr)
		})
	}

	return g.Wait()
}

// Shutdown kills any supervised process and releases the executable watcher.
func (a *App) Shutdown() {
	a.supervisor.Shutdown()
	a.logStats()
	if err := a.locator.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close executable watcher"))
	}
}

var statNames = []string{
	domain.OpCreateScene,
	domain.OpAddNode,
	domain.OpLoadSprite,
	domain.OpExportMeshLibrary,
	domain.OpSaveScene,
	domain.OpGetUID,
	domain.OpResaveResources,
	"version",
}

func (a *App) logStats() {
	for _, name := range statNames {
		s, ok := a.metrics.Stats(name)
		if !ok {
			continue
		}
		a.logger.Debug(formatStats(name, s))
	}
}

func formatStats(name string, s domain.OperationStats) string {
	return fmt.Sprintf("%s: %d runs, avg %s, min %s, max %s, %.0f%% ok",
		name, s.Count, s.AvgDuration, s.MinDuration, s.MaxDuration, s.SuccessRate)
}
