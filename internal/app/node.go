package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gdmcp/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/adapters/locator"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/adapters/supervisor" //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/gdmcp/internal/engine/codec"
	"go.trai.ch/gdmcp/internal/engine/executor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			executor.NodeID,
			supervisor.NodeID,
			locator.NodeID,
			fs.ScannerNodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			telemetry.CollectorNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	exec, err := graft.Dep[ports.OperationExecutor](ctx)
	if err != nil {
		return nil, err
	}
	sup, err := graft.Dep[ports.Supervisor](ctx)
	if err != nil {
		return nil, err
	}
	loc, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[ports.ProjectScanner](ctx)
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
	collector, err := graft.Dep[*telemetry.Collector](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(codec.Default(), exec, sup, loc, scanner, tracer, metrics, log).
		WithMetricsServer(collector, cfg.MetricsAddr), nil
}
