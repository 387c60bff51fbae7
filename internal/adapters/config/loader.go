// Package config provides the workspace configuration loader.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file searched
// upward from the working directory.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the effective settings for cwd. A missing config file
// yields the defaults; a present but unreadable or invalid one is an
// error, since silently ignoring explicit configuration would be worse
// than failing.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path, found := findConfiguration(cwd)
	if !found {
		return settings, nil
	}

	//nolint:gosec // Path is derived from the user's own working directory.
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings.ExcludedPackages = file.ExcludedPackages
	settings.Sequential = file.Sequential
	settings.Verbose = file.Verbose
	if file.Concurrency > 0 {
		settings.Concurrency = file.Concurrency
	}
	if file.TimeoutSeconds > 0 {
		settings.DescribeTimeout = time.Duration(file.TimeoutSeconds) * time.Second
	}

	return settings, nil
}

// findConfiguration walks from cwd toward the filesystem root and
// returns the first config file found.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}
