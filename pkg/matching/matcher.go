// Package matching implements the name-pattern semantics used to assign
// dependencies to groups.
//
// A pattern is either an exact dependency name or a wildcard pattern using
// `*`, where each `*` matches any run of zero or more characters. Matching is
// case-sensitive and anchored at both ends: the whole name must be consumed.
// No other wildcard syntax is recognized; `?` and character classes are
// treated as literal characters.
package matching

import (
	"regexp"
	"strings"
	"sync"
)

// Wildcard is the single wildcard character recognized in patterns.
const Wildcard = "*"

// regexCache stores compiled wildcard regexes to avoid recompilation.
// This improves performance when the same pattern is applied to many names.
var regexCache sync.Map

// Matcher defines the interface for name matching strategies.
//
// Example:
//
//	matcher := matching.ParseMatcher("dummy-pkg-*")
//	if matcher.Match("dummy-pkg-a") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given name matches the pattern.
	//
	// Parameters:
	//   - name: Dependency name to test against the pattern
	//
	// Returns:
	//   - bool: true if name matches the pattern
	Match(name string) bool

	// String returns a string representation of the matcher.
	//
	// Returns:
	//   - string: The original pattern
	String() string
}

// ExactMatcher matches names that exactly equal the pattern.
//
// Fields:
//   - Pattern: The exact name to match (case-sensitive)
//
// Example:
//
//	matcher := &matching.ExactMatcher{Pattern: "lodash"}
//	matcher.Match("lodash")  // returns true
//	matcher.Match("Lodash")  // returns false
type ExactMatcher struct {
	// Pattern is the exact name to match.
	Pattern string
}

// Match tests if name exactly equals the pattern.
//
// Parameters:
//   - name: Dependency name to test
//
// Returns:
//   - bool: true if name equals pattern verbatim
func (m *ExactMatcher) Match(name string) bool {
	return name == m.Pattern
}

// String returns the pattern string.
//
// Returns:
//   - string: The exact pattern being matched
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// WildcardMatcher matches names using `*` wildcard patterns.
//
// Each `*` matches any run of zero or more characters. The match is anchored:
// the entire name must be consumed by the pattern.
//
// Fields:
//   - Pattern: The wildcard pattern string
//
// Example:
//
//	matcher := &matching.WildcardMatcher{Pattern: "dummy-pkg-*"}
//	matcher.Match("dummy-pkg-a")  // returns true
//	matcher.Match("dummy-pkg")    // returns false
type WildcardMatcher struct {
	// Pattern is the wildcard pattern string.
	Pattern string
}

// Match tests if name matches the wildcard pattern.
//
// Parameters:
//   - name: Dependency name to test
//
// Returns:
//   - bool: true if the whole name matches the pattern
func (m *WildcardMatcher) Match(name string) bool {
	re, err := getOrCompileWildcard(m.Pattern)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

// String returns the wildcard pattern.
//
// Returns:
//   - string: The wildcard pattern string (e.g., "dummy-pkg-*")
func (m *WildcardMatcher) String() string {
	return m.Pattern
}

// ParseMatcher creates a matcher from a pattern string.
//
// The pattern format is interpreted as follows:
//   - "exact" - exact match (no wildcard character present)
//   - "pre*fix" - wildcard match (one or more `*` characters)
//
// Parameters:
//   - pattern: Pattern string to parse
//
// Returns:
//   - Matcher: Appropriate matcher for the pattern
//
// Example:
//
//	matcher := matching.ParseMatcher("dummy-pkg-*")  // WildcardMatcher
//	matcher := matching.ParseMatcher("lodash")       // ExactMatcher
func ParseMatcher(pattern string) Matcher {
	if strings.Contains(pattern, Wildcard) {
		return &WildcardMatcher{Pattern: pattern}
	}
	return &ExactMatcher{Pattern: pattern}
}

// Matches tests if a dependency name satisfies a single pattern.
//
// This is the convenience entry point used by the grouping engine. It never
// fails: an unmatched name simply returns false.
//
// Parameters:
//   - name: Dependency name to test
//   - pattern: Exact name or `*` wildcard pattern
//
// Returns:
//   - bool: true if name satisfies pattern
//
// Example:
//
//	matching.Matches("dummy-pkg-a", "dummy-pkg-*")  // returns true
//	matching.Matches("dummy-pkg-a", "dummy-pkg-b")  // returns false
func Matches(name, pattern string) bool {
	return ParseMatcher(pattern).Match(name)
}

// MatchesAny tests if a dependency name satisfies at least one pattern.
//
// An empty pattern list matches nothing.
//
// Parameters:
//   - name: Dependency name to test
//   - patterns: Patterns to match against
//
// Returns:
//   - bool: true if name satisfies any pattern
func MatchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if Matches(name, pattern) {
			return true
		}
	}
	return false
}

// getOrCompileWildcard retrieves a compiled wildcard regex from cache or
// compiles and caches it.
//
// It performs the following operations:
//   - Step 1: Checks if the pattern exists in cache with type-safe assertion
//   - Step 2: Returns cached regex if found and valid
//   - Step 3: Compiles the wildcard pattern to an anchored regex if not cached
//   - Step 4: Stores the compiled regex in cache for future use
//
// Parameters:
//   - pattern: The wildcard pattern to compile
//
// Returns:
//   - *regexp.Regexp: The compiled regular expression
//   - error: Returns nil on success; returns compilation error if pattern is invalid
func getOrCompileWildcard(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		// Use safe type assertion to prevent panic on unexpected types
		if re, typeOK := cached.(*regexp.Regexp); typeOK {
			return re, nil
		}
	}

	re, err := regexp.Compile(wildcardToRegex(pattern))
	if err != nil {
		return nil, err
	}

	regexCache.Store(pattern, re)
	return re, nil
}

// wildcardToRegex converts a wildcard pattern to an anchored regex pattern.
//
// It performs the following conversions:
//   - * becomes .*          (any characters, including none)
//   - Other characters are escaped with regexp.QuoteMeta
//   - The result is anchored with ^ and $ so the whole name must match
//
// Parameters:
//   - pattern: The wildcard pattern to convert
//
// Returns:
//   - string: The equivalent anchored regular expression
func wildcardToRegex(pattern string) string {
	parts := strings.Split(pattern, Wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}

// Verify interface implementations.
var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*WildcardMatcher)(nil)
)
