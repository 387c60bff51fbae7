// Package fs provides the file system adapter that locates candidate
// package directories inside a workspace.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"go.trai.ch/zerr"
)

// skipDirs are never descended into: version control metadata, build
// output, dependency caches and editor state.
var skipDirs = map[string]struct{}{
	".git":         {},
	".jj":          {},
	".svn":         {},
	".build":       {},
	".swiftpm":     {},
	".idea":        {},
	".vscode":      {},
	"DerivedData":  {},
	"Pods":         {},
	"Carthage":     {},
	"node_modules": {},
	"vendor":       {},
	"build":        {},
	"dist":         {},
}

// Walker finds manifest-bearing directories.
//
// Symlink cycles are not guarded against; workspace trees are expected
// to be shallow and filepath.WalkDir does not follow symlinks anyway.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Candidates returns every directory under root that contains a
// manifest file, root itself included. Nested packages are legal, so a
// match does not stop descent into its subdirectories.
func (w *Walker) Candidates(root string) ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if path == root {
				return err
			}
			return filepath.SkipDir
		}

		if !d.IsDir() {
			return nil
		}

		if _, skip := skipDirs[d.Name()]; skip && path != root {
			return filepath.SkipDir
		}

		if hasManifest(path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root)
	}

	return candidates, nil
}

func hasManifest(dir string) bool {
	info, err := os.Stat(domain.ManifestPath(dir))
	return err == nil && !info.IsDir()
}
