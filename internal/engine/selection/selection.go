package selection

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkgscout/pkgscout/internal/core/domain"
)

// AllInterfacesKeyword selects every interface-style option at once.
const AllInterfacesKeyword = "interfaces"

// Order places interface-style options before everything else while
// preserving each partition's existing order. Interface products are
// the lighter dependency choice, so they lead the list.
func Order(options []domain.Option) []domain.Option {
	ordered := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		if opt.IsInterface() {
			ordered = append(ordered, opt)
		}
	}
	for _, opt := range options {
		if !opt.IsInterface() {
			ordered = append(ordered, opt)
		}
	}
	return ordered
}

// Resolve turns a raw selection line into the chosen options. The line
// is either the all-interfaces keyword or a comma/whitespace separated
// list of 1-based indices into ordered. Unparsable tokens and indices
// outside range are silently dropped; an empty or all-invalid line
// yields an empty selection.
func Resolve(raw string, ordered []domain.Option) []domain.Option {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.EqualFold(raw, AllInterfacesKeyword) {
		var selected []domain.Option
		for _, opt := range ordered {
			if opt.IsInterface() {
				selected = append(selected, opt)
			}
		}
		return selected
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var selected []domain.Option
	for _, token := range tokens {
		index, err := strconv.Atoi(token)
		if err != nil || index < 1 || index > len(ordered) {
			continue
		}
		selected = append(selected, ordered[index-1])
	}
	return selected
}

// Group folds the chosen options into one selection per package path.
// The first encounter of a path creates the record; later encounters
// append the product name unless it is already present. Output order
// follows first encounter.
func Group(selected []domain.Option) []domain.Selection {
	byPath := make(map[string]int, len(selected))
	var grouped []domain.Selection

	for _, opt := range selected {
		i, ok := byPath[opt.PackagePath]
		if !ok {
			byPath[opt.PackagePath] = len(grouped)
			grouped = append(grouped, domain.Selection{
				PackageName:       opt.PackageName,
				PackagePath:       opt.PackagePath,
				Products:          []string{opt.ProductName},
				AvailableProducts: opt.AvailableProducts,
			})
			continue
		}

		sel := &grouped[i]
		if !slices.Contains(sel.Products, opt.ProductName) {
			sel.Products = append(sel.Products, opt.ProductName)
		}
	}

	return grouped
}
