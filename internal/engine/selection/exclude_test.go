package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/engine/selection"
)

func optionFor(pkg string) domain.Option {
	return domain.Option{
		PackageName: pkg,
		PackagePath: "/ws/" + pkg,
		ProductName: pkg,
	}
}

func TestExclude(t *testing.T) {
	options := []domain.Option{
		optionFor("LegacyAnalytics"),
		optionFor("BetaFeature"),
		optionFor("Core"),
	}

	kept, removed := selection.Exclude(options, []string{"Legacy*", "beta"})

	assert.Equal(t, 2, removed)
	assert.Len(t, kept, 1)
	assert.Equal(t, "Core", kept[0].PackageName)
}

func TestExclude_NoPatterns(t *testing.T) {
	options := []domain.Option{optionFor("Core")}
	kept, removed := selection.Exclude(options, nil)
	assert.Zero(t, removed)
	assert.Equal(t, options, kept)
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"Core", "Core", true},                 // exact
		{"Core", "core", true},                 // substring is case-insensitive
		{"BetaFeature", "beta", true},          // substring
		{"LegacyAnalytics", "Legacy*", true},   // wildcard prefix
		{"legacyanalytics", "Legacy*", true},   // wildcard is case-insensitive
		{"Analytics", "*alytic*", true},        // wildcard both sides
		{"Core", "Legacy*", false},             // no match
		{"MyLegacy", "Legacy*", false},         // wildcard is anchored
		{"Networking", "Net*ing", true},        // inner wildcard
		{"FeatureKit", "feature", true},        // substring mid-word
		{"Core", "", true},                     // empty pattern contains-matches everything
	}

	for _, tt := range tests {
		got := selection.MatchesPattern(tt.name, tt.pattern)
		assert.Equalf(t, tt.want, got, "MatchesPattern(%q, %q)", tt.name, tt.pattern)
	}
}
