package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgscout/pkgscout/internal/core/ports"
)

// NodeID is the unique identifier for the walker Graft node.
const NodeID graft.ID = "adapter.walker"

func init() {
	graft.Register(graft.Node[ports.Walker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Walker, error) {
			return NewWalker(), nil
		},
	})
}
