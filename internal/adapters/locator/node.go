package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gdmcp/internal/adapters/config"
	"go.trai.ch/gdmcp/internal/adapters/logger"
	"go.trai.ch/gdmcp/internal/adapters/pathcache"
	"go.trai.ch/gdmcp/internal/adapters/shell"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, pathcache.NodeID, shell.RunnerNodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ValidationCache](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			loc := New(runner, cache, log, Options{
				Override:       cfg.GodotPath,
				VersionTimeout: cfg.VersionTimeout,
				CacheTTL:       cfg.CacheTTL,
			})
			if cfg.WatchExecutable {
				w, err := NewWatcher(log, loc.Invalidate)
				if err != nil {
					log.Warn("executable watcher disabled: " + err.Error())
				} else {
					loc.SetWatcher(w)
				}
			}
			return loc, nil
		},
	})
}
