package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgscout/pkgscout/internal/adapters/cache"
	"github.com/pkgscout/pkgscout/internal/core/domain"
)

// writePackageDir creates a package directory with a manifest file and
// returns its path.
func writePackageDir(t *testing.T, root, name, manifest string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(domain.ManifestPath(dir), []byte(manifest), 0o644))
	return dir
}

func testPackage(dir string) *domain.Package {
	return &domain.Package{
		Name: "Networking",
		Path: dir,
		Products: []domain.Product{
			{Name: "Networking", Targets: []string{"Networking"}},
		},
		Targets: []domain.Target{
			{Name: "Networking", Kind: "regular"},
			{Name: "NetworkingTests", Kind: "test"},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	store := cache.NewStore(filepath.Join(tmpDir, "packages.json"))

	pkg := testPackage(dir)
	require.NoError(t, store.Store(pkg))

	got, ok := store.Lookup(dir)
	require.True(t, ok)
	assert.Equal(t, pkg, got)
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	cachePath := filepath.Join(tmpDir, "packages.json")

	first := cache.NewStore(cachePath)
	require.NoError(t, first.Store(testPackage(dir)))

	// A fresh store pointing at the same file sees the entry.
	second := cache.NewStore(cachePath)
	got, ok := second.Lookup(dir)
	require.True(t, ok)
	assert.Equal(t, "Networking", got.Name)
}

func TestStore_MissOnManifestChange(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	store := cache.NewStore(filepath.Join(tmpDir, "packages.json"))
	require.NoError(t, store.Store(testPackage(dir)))

	// Grow the manifest; size alone must invalidate the entry.
	require.NoError(t, os.WriteFile(domain.ManifestPath(dir),
		[]byte("// swift-tools-version:5.9\n// extended"), 0o644))

	_, ok := store.Lookup(dir)
	assert.False(t, ok)
}

func TestStore_MissOnMtimeChange(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	store := cache.NewStore(filepath.Join(tmpDir, "packages.json"))
	require.NoError(t, store.Store(testPackage(dir)))

	// Same content and size, different mtime.
	later := time.Now().Add(2 * time.Hour)
	require.NoError(t, os.Chtimes(domain.ManifestPath(dir), later, later))

	_, ok := store.Lookup(dir)
	assert.False(t, ok)
}

func TestStore_PrunesDeletedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Gone", "// swift-tools-version:5.9")
	cachePath := filepath.Join(tmpDir, "packages.json")

	first := cache.NewStore(cachePath)
	require.NoError(t, first.Store(testPackage(dir)))
	require.NoError(t, os.RemoveAll(dir))

	second := cache.NewStore(cachePath)
	_, ok := second.Lookup(dir)
	assert.False(t, ok)

	// After the next write the pruned entry must be gone from disk too.
	other := writePackageDir(t, tmpDir, "Kept", "// swift-tools-version:5.9")
	require.NoError(t, second.Store(&domain.Package{Name: "Kept", Path: other}))

	data, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Gone")
	assert.Contains(t, string(data), "Kept")
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	cachePath := filepath.Join(tmpDir, "packages.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{not json"), 0o644))

	store := cache.NewStore(cachePath)
	_, ok := store.Lookup(dir)
	assert.False(t, ok)

	// The store recovers and persists fresh entries.
	require.NoError(t, store.Store(testPackage(dir)))
	_, ok = store.Lookup(dir)
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	cachePath := filepath.Join(tmpDir, "packages.json")

	store := cache.NewStore(cachePath)
	require.NoError(t, store.Store(testPackage(dir)))
	require.NoError(t, store.Clear())

	_, ok := store.Lookup(dir)
	assert.False(t, ok)
	_, err := os.Stat(cachePath)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear cache is fine.
	require.NoError(t, store.Clear())
}

func TestFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	dir := writePackageDir(t, tmpDir, "Networking", "// swift-tools-version:5.9")
	manifest := domain.ManifestPath(dir)

	first := cache.Fingerprint(manifest)
	second := cache.Fingerprint(manifest)
	assert.Equal(t, first, second, "unchanged file must fingerprint identically")
	assert.NotEqual(t, cache.FingerprintAbsent, first)

	require.NoError(t, os.WriteFile(manifest, []byte("// changed size here"), 0o644))
	assert.NotEqual(t, first, cache.Fingerprint(manifest))

	assert.Equal(t, cache.FingerprintAbsent,
		cache.Fingerprint(filepath.Join(tmpDir, "missing", "Package.swift")))
}
