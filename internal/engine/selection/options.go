// Package selection turns discovered packages into an ordered,
// filtered set of dependency options and resolves a chooser's input
// into grouped selections.
package selection

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkgscout/pkgscout/internal/core/domain"
)

// BuildOptions converts discovered packages into per-product options.
//
// A product is eligible only if at least one of its backing targets is
// non-test; a target kind that is absent or unknown counts as non-test.
// The result is sorted by package name, then product name, so callers
// get a deterministic list regardless of discovery order.
func BuildOptions(packages []domain.Package, basePath string) []domain.Option {
	var options []domain.Option

	for i := range packages {
		pkg := &packages[i]
		kinds := pkg.TargetKinds()

		var eligible []string
		for _, product := range pkg.Products {
			if productHasNonTestTarget(product, kinds) {
				eligible = append(eligible, product.Name)
			}
		}
		if len(eligible) == 0 {
			continue
		}

		available := slices.Clone(eligible)
		slices.Sort(available)
		available = slices.Compact(available)

		display := displayPath(basePath, pkg.Path)
		for _, name := range eligible {
			options = append(options, domain.Option{
				PackageName:       pkg.Name,
				PackagePath:       pkg.Path,
				ProductName:       name,
				DisplayPath:       display,
				AvailableProducts: available,
			})
		}
	}

	slices.SortFunc(options, func(a, b domain.Option) int {
		if c := strings.Compare(a.PackageName, b.PackageName); c != 0 {
			return c
		}
		return strings.Compare(a.ProductName, b.ProductName)
	})

	return options
}

func productHasNonTestTarget(product domain.Product, kinds map[string]string) bool {
	for _, target := range product.Targets {
		if kinds[target] != domain.TargetKindTest {
			return true
		}
	}
	return false
}

func displayPath(basePath, pkgPath string) string {
	if basePath == "" {
		return pkgPath
	}
	rel, err := filepath.Rel(basePath, pkgPath)
	if err != nil {
		return pkgPath
	}
	return rel
}
