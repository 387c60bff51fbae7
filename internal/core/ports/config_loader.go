package ports

import "github.com/pkgscout/pkgscout/internal/core/domain"

// ConfigLoader resolves the effective workspace settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches upward from cwd for a config file and returns the
	// merged settings. A missing config file yields the defaults, not
	// an error.
	Load(cwd string) (domain.Settings, error)
}
