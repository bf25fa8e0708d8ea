package pathcache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gdmcp/internal/adapters/config"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
)

// NodeID is the graft node for the validation cache.
const NodeID graft.ID = "adapter.pathcache"

func init() {
	graft.Register(graft.Node[ports.ValidationCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ValidationCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(clockwork.NewRealClock(), cfg.CacheTTL), nil
		},
	})
}
