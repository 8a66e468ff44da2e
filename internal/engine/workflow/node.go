package workflow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/engine/install"
	"go.trai.ch/nbreq/internal/engine/locking"
	"go.trai.ch/nbreq/internal/engine/startup"
)

// NodeID is the unique identifier for the workflow factory Graft node.
const NodeID graft.ID = "engine.workflow"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			startup.NodeID,
			locking.NodeID,
			install.NodeID,
			progrock.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			reconciler, err := graft.Dep[*startup.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[*locking.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}

			pipeline, err := graft.Dep[*install.Pipeline](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(
				reconciler,
				locker,
				pipeline,
				telemetry,
				log,
				cfg.KernelName,
				cfg.RecommendationType,
			), nil
		},
	})
}
