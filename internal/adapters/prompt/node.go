package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/pkgscout/pkgscout/internal/core/ports"
)

// NodeID is the unique identifier for the prompter Graft node.
const NodeID graft.ID = "adapter.prompter"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Prompter, error) {
			return NewConsole(os.Stdin, os.Stderr), nil
		},
	})
}
