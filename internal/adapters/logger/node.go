package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// RootNodeID is the unique identifier for the concrete logger Graft node.
const RootNodeID graft.ID = "adapter.logger.root"

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        RootNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RootNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
