package cache

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/core/ports"
)

// NodeID is the unique identifier for the package cache Graft node.
const NodeID graft.ID = "adapter.package_cache"

func init() {
	graft.Register(graft.Node[ports.PackageCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PackageCache, error) {
			dir, err := domain.DefaultCacheDir()
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(dir, domain.CacheFileName)), nil
		},
	})
}
