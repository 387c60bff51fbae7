package domain

import "time"

// Settings holds the effective workspace configuration after defaults
// and config-file values have been merged.
type Settings struct {
	// ExcludedPackages lists exclusion patterns applied to package
	// names. Each pattern is an exact name, a case-insensitive
	// substring, or a '*' wildcard pattern.
	ExcludedPackages []string

	// Concurrency bounds simultaneously in-flight describe invocations.
	Concurrency int

	// DescribeTimeout bounds a single describe invocation.
	DescribeTimeout time.Duration

	// Sequential forces the sequential discovery strategy.
	Sequential bool

	// Verbose enables informational logging of per-candidate outcomes.
	Verbose bool
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Concurrency:     DefaultConcurrency,
		DescribeTimeout: DefaultDescribeTimeout,
	}
}
