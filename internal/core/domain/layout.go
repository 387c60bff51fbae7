package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// ManifestFileName is the package manifest file that marks a
	// directory as a candidate package.
	ManifestFileName = "Package.swift"

	// ConfigFileName is the workspace configuration file, searched
	// upward from the working directory.
	ConfigFileName = ".pkgscout.yaml"

	// CacheFileName is the name of the persisted package cache file
	// inside the cache directory.
	CacheFileName = "packages.json"

	// DefaultConcurrency bounds the number of simultaneously in-flight
	// describe invocations. Cache hits are not counted against it.
	DefaultConcurrency = 6

	// DefaultDescribeTimeout bounds a single describe invocation.
	DefaultDescribeTimeout = 30 * time.Second
)

// DefaultCacheDir returns the per-user cache directory (~/.pkgscout).
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrHomeDirUnknown
	}
	return filepath.Join(home, ".pkgscout"), nil
}

// ManifestPath returns the manifest file path for a package directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFileName)
}
