package domain

// TargetKindTest is the target kind reported by the describe tool for
// test targets. Any other kind (including an absent one) is treated as
// a regular target.
const TargetKindTest = "test"

// Product represents a single product exposed by a package.
type Product struct {
	// Name is the product name as declared in the manifest.
	Name string `json:"name"`

	// Targets lists the names of the targets backing this product.
	Targets []string `json:"targets"`
}

// Target represents a single target declared by a package.
type Target struct {
	// Name is the target name as declared in the manifest.
	Name string `json:"name"`

	// Kind is the target kind reported by the describe tool
	// (e.g. "regular", "test"). An empty kind counts as regular.
	Kind string `json:"type,omitempty"`
}

// IsTest reports whether the target is a test target.
func (t Target) IsTest() bool {
	return t.Kind == TargetKindTest
}

// Package represents a discovered package unit inside the workspace.
// Instances are immutable once constructed; one per directory per
// discovery run.
type Package struct {
	// Name is the package name from the manifest.
	Name string `json:"name"`

	// Path is the absolute path of the directory containing the manifest.
	Path string `json:"path"`

	// Products are the products declared by the package.
	Products []Product `json:"products"`

	// Targets are the targets declared by the package.
	Targets []Target `json:"targets"`
}

// TargetKinds builds a lookup from target name to target kind.
func (p *Package) TargetKinds() map[string]string {
	kinds := make(map[string]string, len(p.Targets))
	for _, t := range p.Targets {
		kinds[t.Name] = t.Kind
	}
	return kinds
}
