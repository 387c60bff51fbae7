package config

// File represents the structure of the .pkgscout.yaml configuration file.
type File struct {
	// ExcludedPackages lists exclusion patterns applied to package
	// names: exact names, case-insensitive substrings, or '*' wildcards.
	ExcludedPackages []string `yaml:"excludedPackages"`

	// Concurrency bounds simultaneously in-flight describe invocations.
	Concurrency int `yaml:"concurrency"`

	// TimeoutSeconds bounds a single describe invocation.
	TimeoutSeconds int `yaml:"timeoutSeconds"`

	// Sequential forces the sequential discovery strategy.
	Sequential bool `yaml:"sequential"`

	// Verbose enables informational logging of per-candidate outcomes.
	Verbose bool `yaml:"verbose"`
}
