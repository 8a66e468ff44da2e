package locking

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/journal" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/pipenv"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/adapters/thamos"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the lock orchestrator Graft node.
const NodeID graft.ID = "engine.locking"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			thamos.ResolverNodeID,
			thamos.ConfigSourceNodeID,
			pipenv.NodeID,
			journal.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			primary, err := graft.Dep[ports.PrimaryResolver](ctx)
			if err != nil {
				return nil, err
			}

			config, err := graft.Dep[ports.ConfigSource](ctx)
			if err != nil {
				return nil, err
			}

			secondary, err := graft.Dep[ports.SecondaryResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockJournal](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(primary, secondary, config, store, log), nil
		},
	})
}
