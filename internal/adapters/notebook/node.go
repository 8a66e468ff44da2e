package notebook

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbreq/internal/core/ports"
)

// NodeID is the unique identifier for the notebook opener Graft node.
const NodeID graft.ID = "adapter.notebook"

func init() {
	graft.Register(graft.Node[ports.DocumentOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentOpener, error) {
			return Opener{}, nil
		},
	})
}
