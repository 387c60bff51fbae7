package domain

import "strings"

// InterfaceSuffix marks products that expose a lightweight interface
// module. Options for such products are listed before everything else.
const InterfaceSuffix = "Interface"

// Option represents one selectable (package, product) pair surfaced to
// a chooser. Options are derived state: recomputed on every run, never
// cached.
type Option struct {
	// PackageName is the name of the owning package.
	PackageName string `json:"packageName"`

	// PackagePath is the absolute path of the owning package.
	PackagePath string `json:"packagePath"`

	// ProductName is the selectable product.
	ProductName string `json:"productName"`

	// DisplayPath is the package path relative to the caller's base
	// directory, or "." if they are the same.
	DisplayPath string `json:"displayPath"`

	// AvailableProducts is the sorted, deduplicated set of all
	// non-test product names of the same package, for display.
	AvailableProducts []string `json:"availableProducts"`
}

// IsInterface reports whether the option's product is an
// interface-style product.
func (o Option) IsInterface() bool {
	return strings.HasSuffix(o.ProductName, InterfaceSuffix)
}

// Selection is the grouped result of a choice: one record per distinct
// package path among the chosen options, with a deduplicated product
// list in encounter order.
type Selection struct {
	// PackageName is the name of the selected package.
	PackageName string `json:"packageName"`

	// PackagePath is the absolute path of the selected package.
	PackagePath string `json:"packagePath"`

	// Products are the chosen product names, deduplicated, in the
	// order they were first encountered.
	Products []string `json:"products"`

	// AvailableProducts mirrors Option.AvailableProducts.
	AvailableProducts []string `json:"availableProducts"`
}
