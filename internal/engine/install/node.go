package install

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/kernel" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the installation pipeline Graft node.
const NodeID graft.ID = "engine.install"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			kernel.InstallerNodeID,
			kernel.ProvisionerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}

			provisioner, err := graft.Dep[ports.KernelProvisioner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPipeline(installer, provisioner, log), nil
		},
	})
}
