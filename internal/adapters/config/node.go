package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
)

const (
	// LoaderNodeID is the graft node for the config loader.
	LoaderNodeID graft.ID = "adapter.config_loader"
	// NodeID is the graft node for the loaded configuration.
	NodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load("")
		},
	})
}
