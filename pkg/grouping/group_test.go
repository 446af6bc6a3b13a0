package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
)

// dep is a shorthand constructor for test dependencies.
//
// Parameters:
//   - name: Dependency name
//
// Returns:
//   - *deps.Dependency: Name-only dependency record
func dep(name string) *deps.Dependency {
	return &deps.Dependency{Name: name}
}

// TestGroupContainsExactPatterns tests Contains with exact-name patterns.
//
// It verifies:
//   - An identical name matches
//   - Different names and case variants do not match
func TestGroupContainsExactPatterns(t *testing.T) {
	group := NewGroup("group-b", config.RulesCfg{
		Patterns: []string{"dummy-pkg-b", "dummy-pkg-c"},
	})

	assert.True(t, group.Contains(dep("dummy-pkg-b")))
	assert.True(t, group.Contains(dep("dummy-pkg-c")))
	assert.False(t, group.Contains(dep("dummy-pkg-a")))
	assert.False(t, group.Contains(dep("Dummy-pkg-b")))
}

// TestGroupContainsWildcardPatterns tests Contains with wildcard patterns.
//
// It verifies:
//   - Names covered by the wildcard match
//   - Names outside the wildcard do not match
func TestGroupContainsWildcardPatterns(t *testing.T) {
	group := NewGroup("group-a", config.RulesCfg{
		Patterns: []string{"dummy-pkg-*"},
	})

	assert.True(t, group.Contains(dep("dummy-pkg-a")))
	assert.True(t, group.Contains(dep("dummy-pkg-b")))
	assert.True(t, group.Contains(dep("dummy-pkg-c")))
	assert.False(t, group.Contains(dep("ungrouped-pkg")))
}

// TestGroupContainsExcludePrecedence tests exclude-over-include precedence.
//
// It verifies:
//   - A name matching both an include and an exclude pattern is excluded
//   - Other names covered by the include pattern still match
//   - Exclude patterns alone never make a name match
func TestGroupContainsExcludePrecedence(t *testing.T) {
	group := NewGroup("group-a", config.RulesCfg{
		Patterns:        []string{"dummy-pkg-*"},
		ExcludePatterns: []string{"dummy-pkg-b"},
	})

	assert.True(t, group.Contains(dep("dummy-pkg-a")))
	assert.False(t, group.Contains(dep("dummy-pkg-b")))
	assert.True(t, group.Contains(dep("dummy-pkg-c")))

	onlyExcludes := NewGroup("x", config.RulesCfg{
		ExcludePatterns: []string{"dummy-pkg-*"},
	})
	assert.False(t, onlyExcludes.Contains(dep("anything")))
}

// TestGroupContainsEmptyPatterns tests the empty-rule-set invariant.
//
// It verifies:
//   - A group with no include patterns matches nothing
func TestGroupContainsEmptyPatterns(t *testing.T) {
	group := NewGroup("empty", config.RulesCfg{})

	assert.False(t, group.Contains(dep("dummy-pkg-a")))
	assert.False(t, group.Contains(dep("")))
}

// TestGroupAddPreservesOrder tests the Add and Dependencies methods.
//
// It verifies:
//   - Dependencies are appended in call order
//   - The list starts empty
func TestGroupAddPreservesOrder(t *testing.T) {
	group := NewGroup("group-a", config.RulesCfg{Patterns: []string{"*"}})
	assert.Empty(t, group.Dependencies())

	a, b, c := dep("a"), dep("b"), dep("c")
	group.Add(a)
	group.Add(b)
	group.Add(c)

	assert.Equal(t, []*deps.Dependency{a, b, c}, group.Dependencies())
}
