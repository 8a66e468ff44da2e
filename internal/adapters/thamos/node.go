package thamos

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/config"
	"go.trai.ch/nbreq/internal/adapters/logger"
	"go.trai.ch/nbreq/internal/adapters/shell"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the primary resolver Graft node.
	ResolverNodeID graft.ID = "adapter.thamos.resolver"
	// ConfigSourceNodeID is the unique identifier for the resolver configuration Graft node.
	ConfigSourceNodeID graft.ID = "adapter.thamos.config"
)

func init() {
	graft.Register(graft.Node[ports.PrimaryResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PrimaryResolver, error) {
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

			return NewResolver(cfg, runner, log), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigSource]{
		ID:        ConfigSourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewConfigSource(cfg, log), nil
		},
	})
}
