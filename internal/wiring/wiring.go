// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pkgscout/pkgscout/internal/adapters/cache"
	_ "github.com/pkgscout/pkgscout/internal/adapters/config"
	_ "github.com/pkgscout/pkgscout/internal/adapters/fs"
	_ "github.com/pkgscout/pkgscout/internal/adapters/logger"
	_ "github.com/pkgscout/pkgscout/internal/adapters/prompt"
	_ "github.com/pkgscout/pkgscout/internal/adapters/swift"
	// Register app nodes.
	_ "github.com/pkgscout/pkgscout/internal/app"
)
