package executor

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/gdmcp/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gdmcp/internal/adapters/locator"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gdmcp/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gdmcp/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gdmcp/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/gdmcp/internal/engine/codec"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[ports.OperationExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locator.NodeID,
			shell.RunnerNodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.OperationExecutor, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loc, runner, codec.Default(), tracer, metrics, log, Options{
				ScriptPath:     cfg.ScriptPath,
				DebugGodot:     cfg.DebugGodot,
				VersionTimeout: cfg.VersionTimeout,
				Quote:          shell.QuoterFor(runtime.GOOS),
			}), nil
		},
	})
}
