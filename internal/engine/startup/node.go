package startup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/kernel" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the startup reconciler Graft node.
const NodeID graft.ID = "engine.startup"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			kernel.DiscovererNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			discoverer, err := graft.Dep[ports.PackageDiscoverer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewReconciler(discoverer, log), nil
		},
	})
}
