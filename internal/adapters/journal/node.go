package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/adapters/config"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the lock journal Graft node.
const NodeID graft.ID = "adapter.lock_journal"

func init() {
	graft.Register(graft.Node[ports.LockJournal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.LockJournal, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := NewStore(cfg.JournalPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
