package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/journal"            //nolint:depguard // Wired in app layer
	"go.trai.ch/nbreq/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nbreq/internal/adapters/notebook"           //nolint:depguard // Wired in app layer
	"go.trai.ch/nbreq/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/engine/workflow"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			notebook.NodeID,
			workflow.NodeID,
			journal.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			opener, err := graft.Dep[ports.DocumentOpener](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*workflow.Factory](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockJournal](ctx)
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

			return New(opener, factory, store, telemetry, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			logger.RootNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	root, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, root), nil
}
