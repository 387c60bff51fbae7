package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	describer *mocks.MockDescriber
	cache     *mocks.MockPackageCache
	walker    *mocks.MockWalker
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) (fixture, Deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		describer: mocks.NewMockDescriber(ctrl),
		cache:     mocks.NewMockPackageCache(ctrl),
		walker:    mocks.NewMockWalker(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	deps := Deps{
		Describer: f.describer,
		Cache:     f.cache,
		Walker:    f.walker,
		Logger:    f.logger,
	}
	return f, deps
}

func pkgFor(dir string) *domain.Package {
	return &domain.Package{
		Name: filepath.Base(dir),
		Path: dir,
		Products: []domain.Product{
			{Name: filepath.Base(dir), Targets: []string{filepath.Base(dir)}},
		},
		Targets: []domain.Target{{Name: filepath.Base(dir)}},
	}
}

func TestConcurrentCacheHitSkipsDescribe(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	hit := "/ws/Cached"
	miss := "/ws/Fresh"

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return([]string{hit, miss}, nil)
	f.cache.EXPECT().Lookup(hit).Return(pkgFor(hit), true)
	f.cache.EXPECT().Lookup(miss).Return(nil, false)
	f.describer.EXPECT().Describe(gomock.Any(), miss).Return(pkgFor(miss), nil)
	f.cache.EXPECT().Store(pkgFor(miss)).Return(nil)

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)

	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		names = append(names, pkg.Name)
	}
	assert.ElementsMatch(t, []string{"Cached", "Fresh"}, names)
}

func TestConcurrentPartialFailure(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	var dirs []string
	for i := 0; i < 10; i++ {
		dirs = append(dirs, fmt.Sprintf("/ws/Pkg%02d", i))
	}

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return(dirs, nil)
	for i, dir := range dirs {
		f.cache.EXPECT().Lookup(dir).Return(nil, false)
		if i == 3 || i == 7 {
			f.describer.EXPECT().Describe(gomock.Any(), dir).Return(nil, errors.New("describe blew up"))
			continue
		}
		f.describer.EXPECT().Describe(gomock.Any(), dir).Return(pkgFor(dir), nil)
		f.cache.EXPECT().Store(gomock.Any()).Return(nil)
	}
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, packages, 8)
}

func TestConcurrentBoundsInFlightDescribes(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	var dirs []string
	for i := 0; i < 50; i++ {
		dirs = append(dirs, fmt.Sprintf("/ws/Pkg%02d", i))
	}

	var inFlight, peak atomic.Int64
	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return(dirs, nil)
	f.cache.EXPECT().Lookup(gomock.Any()).Return(nil, false).Times(len(dirs))
	f.cache.EXPECT().Store(gomock.Any()).Return(nil).Times(len(dirs))
	f.describer.EXPECT().Describe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dir string) (*domain.Package, error) {
			now := inFlight.Add(1)
			for {
				seen := peak.Load()
				if now <= seen || peak.CompareAndSwap(seen, now) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Add(-1)
			return pkgFor(dir), nil
		}).Times(len(dirs))

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, packages, len(dirs))
	assert.LessOrEqual(t, peak.Load(), int64(6))
	assert.Greater(t, peak.Load(), int64(1), "expected describes to overlap")
}

func TestDiscoverExcludesRootItself(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws/"
	nested := "/ws/Child"

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return([]string{"/ws", nested}, nil)
	f.cache.EXPECT().Lookup(nested).Return(pkgFor(nested), true)

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, nested, packages[0].Path)
}

func TestDiscoverToolUnavailable(t *testing.T) {
	f, deps := newFixture(t)

	f.describer.EXPECT().Available().Return(domain.ErrToolUnavailable)
	f.logger.EXPECT().Warn(gomock.Any())

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), "/ws")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestDiscoverWalkerErrorIsFatal(t *testing.T) {
	f, deps := newFixture(t)

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates("/ws").Return(nil, domain.ErrWalkFailed)

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), "/ws")
	require.ErrorIs(t, err, domain.ErrWalkFailed)
	assert.Empty(t, packages)
}

func TestDiscoverCacheStoreFailureOnlyWarns(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	dir := "/ws/Flaky"

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return([]string{dir}, nil)
	f.cache.EXPECT().Lookup(dir).Return(nil, false)
	f.describer.EXPECT().Describe(gomock.Any(), dir).Return(pkgFor(dir), nil)
	f.cache.EXPECT().Store(gomock.Any()).Return(domain.ErrCacheWriteFailed)
	f.logger.EXPECT().Warn(gomock.Any())

	packages, err := NewConcurrent(deps, 6, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Flaky", packages[0].Name)
}

func TestSequentialMatchesConcurrentSemantics(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	hit := "/ws/Cached"
	miss := "/ws/Fresh"
	bad := "/ws/Broken"

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return([]string{hit, miss, bad}, nil)
	f.cache.EXPECT().Lookup(hit).Return(pkgFor(hit), true)
	f.cache.EXPECT().Lookup(miss).Return(nil, false)
	f.describer.EXPECT().Describe(gomock.Any(), miss).Return(pkgFor(miss), nil)
	f.cache.EXPECT().Store(gomock.Any()).Return(nil)
	f.cache.EXPECT().Lookup(bad).Return(nil, false)
	f.describer.EXPECT().Describe(gomock.Any(), bad).Return(nil, errors.New("no manifest"))
	f.logger.EXPECT().Warn(gomock.Any())

	packages, err := NewSequential(deps, time.Second).Discover(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "Cached", packages[0].Name)
	assert.Equal(t, "Fresh", packages[1].Name)
}

func TestNewPicksStrategyFromSettings(t *testing.T) {
	_, deps := newFixture(t)

	settings := domain.DefaultSettings()
	_, ok := New(deps, settings).(*Concurrent)
	assert.True(t, ok)

	settings.Sequential = true
	_, ok = New(deps, settings).(*Sequential)
	assert.True(t, ok)
}

func TestDescribeTimeoutIsEnforced(t *testing.T) {
	f, deps := newFixture(t)

	root := "/ws"
	dir := "/ws/Slow"

	f.describer.EXPECT().Available().Return(nil)
	f.walker.EXPECT().Candidates(root).Return([]string{dir}, nil)
	f.cache.EXPECT().Lookup(dir).Return(nil, false)
	f.describer.EXPECT().Describe(gomock.Any(), dir).
		DoAndReturn(func(ctx context.Context, _ string) (*domain.Package, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	f.logger.EXPECT().Warn(gomock.Any())

	done := make(chan struct{})
	var packages []domain.Package
	var err error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		packages, err = NewSequential(deps, 20*time.Millisecond).Discover(context.Background(), root)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("describe did not observe its timeout")
	}
	wg.Wait()

	require.NoError(t, err)
	assert.Empty(t, packages)
}
