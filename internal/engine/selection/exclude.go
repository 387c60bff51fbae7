package selection

import (
	"regexp"
	"strings"

	"github.com/pkgscout/pkgscout/internal/core/domain"
)

// Exclude drops options whose package name matches any pattern and
// returns the survivors plus the number of removed options, so the
// caller can report what the active patterns did.
func Exclude(options []domain.Option, patterns []string) ([]domain.Option, int) {
	if len(patterns) == 0 {
		return options, 0
	}

	kept := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		if matchesAny(opt.PackageName, patterns) {
			continue
		}
		kept = append(kept, opt)
	}

	return kept, len(options) - len(kept)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchesPattern(name, pattern) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether a package name matches a single
// exclusion pattern. Rules, in order:
//
//  1. exact equality (case-sensitive),
//  2. if the pattern contains '*', an anchored case-insensitive
//     wildcard match over the full name,
//  3. otherwise case-insensitive substring containment.
func MatchesPattern(name, pattern string) bool {
	if name == pattern {
		return true
	}

	if strings.Contains(pattern, "*") {
		re, err := compileWildcard(pattern)
		if err != nil {
			return false
		}
		return re.MatchString(name)
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

// compileWildcard translates a '*' wildcard pattern into an anchored,
// case-insensitive regexp where '*' matches any run of characters.
func compileWildcard(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.Compile("(?i)^" + strings.Join(parts, ".*") + "$")
}
