package swift

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgscout/pkgscout/internal/core/ports"
)

// NodeID is the unique identifier for the describer Graft node.
const NodeID graft.ID = "adapter.describer"

func init() {
	graft.Register(graft.Node[ports.Describer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Describer, error) {
			return NewDescriber(), nil
		},
	})
}
