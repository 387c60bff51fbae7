package ports

import "github.com/pkgscout/pkgscout/internal/core/domain"

// PackageCache persists described packages keyed by directory path so
// that unchanged manifests are not described again.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PackageCache interface {
	// Lookup returns the cached package for the directory if an entry
	// exists and its stored fingerprint still matches the manifest on
	// disk. A false return means cache miss.
	Lookup(dir string) (*domain.Package, bool)

	// Store inserts or overwrites the entry for pkg.Path and persists
	// the cache. A persistence failure leaves the in-memory entry in
	// place.
	Store(pkg *domain.Package) error

	// Clear empties the in-memory cache and removes the persisted file.
	Clear() error
}
