package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gdmcp/internal/adapters/logger"
	"go.trai.ch/gdmcp/internal/core/ports"
)

// RunnerNodeID is the unique identifier for the command runner Graft node.
const RunnerNodeID graft.ID = "adapter.shell_runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
