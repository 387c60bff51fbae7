package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"go.trai.ch/zerr"
)

// entry is the persisted form of a described package plus the
// fingerprint that produced it. Entries are replaced wholesale, never
// mutated in place.
type entry struct {
	Name        string           `json:"name"`
	Path        string           `json:"path"`
	Products    []domain.Product `json:"products"`
	Targets     []domain.Target  `json:"targets"`
	Fingerprint string           `json:"fingerprint"`
	LastWritten time.Time        `json:"lastWritten"`
}

// Store implements ports.PackageCache using a flat JSON file mapping
// absolute directory paths to entries.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]entry
}

// NewStore creates a package cache backed by the file at the given
// path. The persisted map is read once here; a missing or unparsable
// file starts an empty cache, and entries whose directory no longer
// exists are pruned.
func NewStore(path string) *Store {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]entry),
	}
	s.load()
	s.prune()
	return s
}

// load reads the persisted map. Corruption is never fatal: any read or
// decode failure leaves the cache empty and the next Store call
// rewrites the file.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		s.cache = make(map[string]entry)
	}
}

// prune drops entries whose directory has disappeared since the cache
// was written.
func (s *Store) prune() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for dir := range s.cache {
		if _, err := os.Stat(dir); err != nil {
			delete(s.cache, dir)
		}
	}
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

// Lookup returns the cached package for dir if the entry's stored
// fingerprint still matches the manifest on disk. A missing manifest,
// a changed fingerprint, or no entry at all is a miss.
func (s *Store) Lookup(dir string) (*domain.Package, bool) {
	current := Fingerprint(domain.ManifestPath(dir))
	if current == FingerprintAbsent {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.cache[dir]
	if !ok || e.Fingerprint != current {
		return nil, false
	}

	return &domain.Package{
		Name:     e.Name,
		Path:     e.Path,
		Products: e.Products,
		Targets:  e.Targets,
	}, true
}

// Store inserts or overwrites the entry for pkg.Path and persists the
// full map. The in-memory entry survives a persistence failure; the
// caller decides whether the failure is worth a warning.
func (s *Store) Store(pkg *domain.Package) error {
	e := entry{
		Name:        pkg.Name,
		Path:        pkg.Path,
		Products:    pkg.Products,
		Targets:     pkg.Targets,
		Fingerprint: Fingerprint(domain.ManifestPath(pkg.Path)),
		LastWritten: time.Now(),
	}

	s.mu.Lock()
	s.cache[pkg.Path] = e
	s.mu.Unlock()

	return s.save()
}

// Clear empties the in-memory cache and removes the persisted file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cache = make(map[string]entry)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
	}
	return nil
}
