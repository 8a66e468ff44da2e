package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/logger"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// LoaderNodeID is the unique identifier for the config loader Graft node.
const LoaderNodeID graft.ID = "adapter.config_loader"

// NodeID is the unique identifier for the loaded configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
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

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			return loader.Load(cwd)
		},
	})
}
