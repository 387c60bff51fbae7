// Package discovery locates package units in a workspace and runs the
// describe step over them, consulting the package cache first.
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Strategy discovers the packages under a workspace root. The root
// itself is excluded: callers discover packages other than the one
// they are operating in. Implementations never fail the whole run for
// a single bad candidate; result order is unspecified.
type Strategy interface {
	Discover(ctx context.Context, root string) ([]domain.Package, error)
}

// Deps bundles the collaborators both strategies need.
type Deps struct {
	Describer ports.Describer
	Cache     ports.PackageCache
	Walker    ports.Walker
	Logger    ports.Logger
}

// New picks the strategy for the given settings: the concurrent one by
// default, the sequential one when explicitly requested.
func New(deps Deps, settings domain.Settings) Strategy {
	if settings.Sequential {
		return NewSequential(deps, settings.DescribeTimeout)
	}
	return NewConcurrent(deps, settings.Concurrency, settings.DescribeTimeout)
}

// Concurrent fans candidates out to goroutines. Cache hits complete
// immediately; cache misses acquire a semaphore slot so that at most
// limit describe invocations are in flight at once.
type Concurrent struct {
	deps    Deps
	limit   int64
	timeout time.Duration
}

// NewConcurrent creates the concurrent strategy.
func NewConcurrent(deps Deps, limit int, timeout time.Duration) *Concurrent {
	if limit < 1 {
		limit = domain.DefaultConcurrency
	}
	return &Concurrent{deps: deps, limit: int64(limit), timeout: timeout}
}

// Discover implements Strategy.
func (d *Concurrent) Discover(ctx context.Context, root string) ([]domain.Package, error) {
	candidates, err := candidates(d.deps, root)
	if err != nil || len(candidates) == 0 {
		return nil, err
	}

	// Workers send into a buffered channel instead of appending to a
	// shared slice; the join below is the only synchronization point.
	results := make(chan domain.Package, len(candidates))
	sem := semaphore.NewWeighted(d.limit)

	var g errgroup.Group
	for _, dir := range candidates {
		g.Go(func() error {
			if pkg, ok := d.deps.Cache.Lookup(dir); ok {
				results <- *pkg
				return nil
			}

			if err := sem.Acquire(ctx, 1); err != nil {
				d.deps.Logger.Warn(fmt.Sprintf("skipping %s: %v", dir, err))
				return nil
			}
			pkg, ok := describeAndCache(ctx, d.deps, dir, d.timeout)
			sem.Release(1)

			if ok {
				results <- *pkg
			}
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	packages := make([]domain.Package, 0, len(candidates))
	for pkg := range results {
		packages = append(packages, pkg)
	}
	return packages, nil
}

// Sequential is the degraded mode: same cache semantics, one describe
// invocation at a time. Behaviorally indistinguishable from Concurrent
// except for wall-clock time.
type Sequential struct {
	deps    Deps
	timeout time.Duration
}

// NewSequential creates the sequential strategy.
func NewSequential(deps Deps, timeout time.Duration) *Sequential {
	return &Sequential{deps: deps, timeout: timeout}
}

// Discover implements Strategy.
func (d *Sequential) Discover(ctx context.Context, root string) ([]domain.Package, error) {
	candidates, err := candidates(d.deps, root)
	if err != nil {
		return nil, err
	}

	packages := make([]domain.Package, 0, len(candidates))
	for _, dir := range candidates {
		if pkg, ok := d.deps.Cache.Lookup(dir); ok {
			packages = append(packages, *pkg)
			continue
		}
		if pkg, ok := describeAndCache(ctx, d.deps, dir, d.timeout); ok {
			packages = append(packages, *pkg)
		}
	}
	return packages, nil
}

// candidates verifies the describe tool, walks the workspace and drops
// the root itself. A missing tool short-circuits the whole discovery
// with a warning and an empty result; it is the only whole-operation
// failure that is not an error.
func candidates(deps Deps, root string) ([]string, error) {
	if err := deps.Describer.Available(); err != nil {
		deps.Logger.Warn("swift tool not found in PATH; skipping package discovery")
		return nil, nil
	}

	dirs, err := deps.Walker.Candidates(root)
	if err != nil {
		return nil, err
	}

	cleanRoot := filepath.Clean(root)
	filtered := dirs[:0]
	for _, dir := range dirs {
		if filepath.Clean(dir) != cleanRoot {
			filtered = append(filtered, dir)
		}
	}
	return filtered, nil
}

// describeAndCache runs one describe invocation under its own timeout
// and writes the result back to the cache. Failures are warnings, not
// errors: the candidate is simply omitted.
func describeAndCache(ctx context.Context, deps Deps, dir string, timeout time.Duration) (*domain.Package, bool) {
	if timeout <= 0 {
		timeout = domain.DefaultDescribeTimeout
	}
	describeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pkg, err := deps.Describer.Describe(describeCtx, dir)
	if err != nil {
		deps.Logger.Warn(fmt.Sprintf("skipping %s: %v", dir, err))
		return nil, false
	}

	if err := deps.Cache.Store(pkg); err != nil {
		// Cache persistence is best effort; the entry stays in memory.
		deps.Logger.Warn(fmt.Sprintf("failed to persist package cache: %v", err))
	}
	return pkg, true
}
