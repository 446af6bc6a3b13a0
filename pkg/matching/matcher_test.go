package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExactMatcher tests the ExactMatcher struct and its Match method.
//
// It verifies that:
//   - Identical names match
//   - Case differences do not match
//   - Partial matches do not match
//   - String() returns the pattern
func TestExactMatcher(t *testing.T) {
	m := &ExactMatcher{Pattern: "lodash"}
	assert.True(t, m.Match("lodash"))
	assert.False(t, m.Match("Lodash"))
	assert.False(t, m.Match("lodash2"))
	assert.False(t, m.Match("lodas"))
	assert.Equal(t, "lodash", m.String())
}

// TestWildcardMatcher tests the WildcardMatcher struct and its Match method.
//
// It verifies that:
//   - Trailing wildcard matches any suffix, including the empty one
//   - Leading wildcard matches any prefix
//   - Interior wildcard matches names with the given prefix and suffix
//   - Matching is anchored at both ends
//   - Matching is case-sensitive
func TestWildcardMatcher(t *testing.T) {
	t.Run("trailing wildcard", func(t *testing.T) {
		m := &WildcardMatcher{Pattern: "dummy-pkg-*"}
		assert.True(t, m.Match("dummy-pkg-a"))
		assert.True(t, m.Match("dummy-pkg-b"))
		assert.True(t, m.Match("dummy-pkg-c"))
		assert.True(t, m.Match("dummy-pkg-"))
		assert.False(t, m.Match("dummy-pkg"))
		assert.False(t, m.Match("other-dummy-pkg-a"))
	})

	t.Run("leading wildcard", func(t *testing.T) {
		m := &WildcardMatcher{Pattern: "*-dev"}
		assert.True(t, m.Match("lodash-dev"))
		assert.True(t, m.Match("-dev"))
		assert.False(t, m.Match("lodash-dev-extra"))
	})

	t.Run("interior wildcard", func(t *testing.T) {
		m := &WildcardMatcher{Pattern: "react*core"}
		assert.True(t, m.Match("reactcore"))
		assert.True(t, m.Match("react-dom-core"))
		assert.False(t, m.Match("react-dom"))
		assert.False(t, m.Match("core-react"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		m := &WildcardMatcher{Pattern: "Dummy-*"}
		assert.True(t, m.Match("Dummy-a"))
		assert.False(t, m.Match("dummy-a"))
	})

	t.Run("multiple wildcards", func(t *testing.T) {
		m := &WildcardMatcher{Pattern: "*pkg*"}
		assert.True(t, m.Match("dummy-pkg-a"))
		assert.True(t, m.Match("pkg"))
		assert.False(t, m.Match("lodash"))
	})
}

// TestWildcardMatcherLiteralSpecials tests regex metacharacter handling.
//
// It verifies that:
//   - Regex metacharacters in patterns are treated as literal characters
//   - `?` has no wildcard meaning
func TestWildcardMatcherLiteralSpecials(t *testing.T) {
	m := &WildcardMatcher{Pattern: "pkg.js*"}
	assert.True(t, m.Match("pkg.js"))
	assert.False(t, m.Match("pkgXjs")) // dot is literal, not "any character"

	m = &WildcardMatcher{Pattern: "pkg?*"}
	assert.True(t, m.Match("pkg?suffix"))
	assert.False(t, m.Match("pkga"))
}

// TestParseMatcher tests the behavior of ParseMatcher.
//
// It verifies:
//   - Patterns without `*` produce an ExactMatcher
//   - Patterns with `*` produce a WildcardMatcher
func TestParseMatcher(t *testing.T) {
	assert.IsType(t, &ExactMatcher{}, ParseMatcher("lodash"))
	assert.IsType(t, &WildcardMatcher{}, ParseMatcher("dummy-pkg-*"))
	assert.IsType(t, &WildcardMatcher{}, ParseMatcher("*"))
}

// TestMatches tests the behavior of Matches.
//
// It verifies:
//   - Exact patterns match only identical names
//   - Wildcard patterns cover prefix, suffix, and interior cases
//   - A bare `*` matches every name including the empty string
func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"dummy-pkg-a", "dummy-pkg-a", true},
		{"dummy-pkg-a", "dummy-pkg-b", false},
		{"dummy-pkg-a", "dummy-pkg-*", true},
		{"dummy-pkg-b", "dummy-pkg-*", true},
		{"dummy-pkg-c", "dummy-pkg-*", true},
		{"unrelated", "dummy-pkg-*", false},
		{"anything", "*", true},
		{"", "*", true},
		{"", "", true},
		{"name", "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.name, tt.pattern), "Matches(%q, %q)", tt.name, tt.pattern)
	}
}

// TestMatchesAny tests the behavior of MatchesAny.
//
// It verifies:
//   - Returns true when any pattern matches
//   - Returns false when no pattern matches
//   - An empty pattern list matches nothing
func TestMatchesAny(t *testing.T) {
	patterns := []string{"dummy-pkg-b", "dummy-pkg-c"}

	assert.True(t, MatchesAny("dummy-pkg-b", patterns))
	assert.True(t, MatchesAny("dummy-pkg-c", patterns))
	assert.False(t, MatchesAny("dummy-pkg-a", patterns))
	assert.False(t, MatchesAny("dummy-pkg-a", nil))
	assert.False(t, MatchesAny("dummy-pkg-a", []string{}))
}
