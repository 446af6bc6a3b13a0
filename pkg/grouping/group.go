// Package grouping implements the dependency-classification engine.
//
// An Engine is built once from an ordered list of group configurations and
// later runs a single assignment pass over the full dependency set. Each
// dependency is appended to every group whose rules it satisfies, in group
// declaration order; dependencies matching no group are collected in the
// engine's ungrouped list. After the pass, groups that received no
// dependencies are reported through a single configuration warning.
package grouping

import (
	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/matching"
)

// Group is a named bucket of dependencies defined by include/exclude
// name-pattern rules.
//
// Rules are immutable after construction. The dependency list starts empty
// and is filled exactly once by the engine's assignment pass, preserving the
// order dependencies were supplied in.
type Group struct {
	// Name is the unique group identifier from configuration.
	Name string

	// Rules holds the include and exclude patterns for membership.
	Rules config.RulesCfg

	dependencies []*deps.Dependency
}

// NewGroup creates a group with the given name and rules and an empty
// dependency list.
//
// Parameters:
//   - name: Unique group identifier
//   - rules: Include/exclude pattern rules
//
// Returns:
//   - *Group: The new group
func NewGroup(name string, rules config.RulesCfg) *Group {
	return &Group{Name: name, Rules: rules}
}

// Contains tests whether a dependency satisfies this group's rules.
//
// It performs the following checks:
//   - Step 1: The dependency name must match at least one include pattern;
//     a group with no include patterns matches nothing
//   - Step 2: The dependency name must not match any exclude pattern;
//     exclude takes precedence over include
//
// Parameters:
//   - dep: Dependency to test
//
// Returns:
//   - bool: true if the dependency belongs in this group
func (g *Group) Contains(dep *deps.Dependency) bool {
	if !matching.MatchesAny(dep.Name, g.Rules.Patterns) {
		return false
	}
	if len(g.Rules.ExcludePatterns) > 0 && matching.MatchesAny(dep.Name, g.Rules.ExcludePatterns) {
		return false
	}
	return true
}

// Add appends a dependency to the group, preserving call order.
//
// The engine calls Add at most once per (group, dependency) pair during the
// single assignment pass, so the list holds no duplicates.
//
// Parameters:
//   - dep: Dependency to append
func (g *Group) Add(dep *deps.Dependency) {
	g.dependencies = append(g.dependencies, dep)
}

// Dependencies returns the dependencies assigned to this group in the order
// they were supplied to the assignment pass.
//
// The returned slice is the group's own backing list; callers must treat it
// as read-only.
//
// Returns:
//   - []*deps.Dependency: Assigned dependencies; nil before assignment or
//     when nothing matched
func (g *Group) Dependencies() []*deps.Dependency {
	return g.dependencies
}
