package kernel

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
	// ManagerNodeID is the unique identifier for the kernel manager Graft node.
	ManagerNodeID graft.ID = "adapter.kernel"
	// DiscovererNodeID provides the manager as a ports.PackageDiscoverer.
	DiscovererNodeID graft.ID = "adapter.kernel.discoverer"
	// InstallerNodeID provides the manager as a ports.Installer.
	InstallerNodeID graft.ID = "adapter.kernel.installer"
	// ProvisionerNodeID provides the manager as a ports.KernelProvisioner.
	ProvisionerNodeID graft.ID = "adapter.kernel.provisioner"
)

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Manager, error) {
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

			return NewManager(cfg, runner, log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageDiscoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManagerNodeID},
		Run: func(ctx context.Context) (ports.PackageDiscoverer, error) {
			m, err := graft.Dep[*Manager](ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManagerNodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			m, err := graft.Dep[*Manager](ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	})

	graft.Register(graft.Node[ports.KernelProvisioner]{
		ID:        ProvisionerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManagerNodeID},
		Run: func(ctx context.Context) (ports.KernelProvisioner, error) {
			m, err := graft.Dep[*Manager](ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	})
}
