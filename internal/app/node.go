package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgscout/pkgscout/internal/adapters/cache"
	"github.com/pkgscout/pkgscout/internal/adapters/config"
	"github.com/pkgscout/pkgscout/internal/adapters/fs"
	"github.com/pkgscout/pkgscout/internal/adapters/logger"
	"github.com/pkgscout/pkgscout/internal/adapters/prompt"
	"github.com/pkgscout/pkgscout/internal/adapters/swift"
	"github.com/pkgscout/pkgscout/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the application Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components aggregate Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			swift.NodeID,
			cache.NodeID,
			fs.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			describer, err := graft.Dep[ports.Describer](ctx)
			if err != nil {
				return nil, err
			}
			packageCache, err := graft.Dep[ports.PackageCache](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, describer, packageCache, walker, prompter, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
