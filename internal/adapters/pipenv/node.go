package pipenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/config"
	"go.trai.ch/nbreq/internal/adapters/logger"
	"go.trai.ch/nbreq/internal/adapters/shell"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the secondary resolver Graft node.
const NodeID graft.ID = "adapter.pipenv"

func init() {
	graft.Register(graft.Node[ports.SecondaryResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SecondaryResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLocker(cfg, runner, log), nil
		},
	})
}
