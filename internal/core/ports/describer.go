// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/pkgscout/pkgscout/internal/core/domain"
)

// Describer invokes the external manifest-describing tool for a single
// package directory.
//
//go:generate mockgen -source=describer.go -destination=mocks/mock_describer.go -package=mocks
type Describer interface {
	// Available reports whether the describe tool can be located.
	// It returns domain.ErrToolUnavailable if it cannot.
	Available() error

	// Describe runs the describe tool with dir as working directory and
	// decodes its output. The context bounds the invocation; callers
	// attach the per-call timeout.
	Describe(ctx context.Context, dir string) (*domain.Package, error)
}
