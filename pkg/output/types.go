// Package output renders assignment results as terminal tables, JSON, or CSV.
package output

import (
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/grouping"
)

// DependencyEntry is the serializable view of a classified dependency.
//
// Fields:
//   - Name: The dependency name
//   - Version: The declared version, omitted when unknown
//   - Type: The dependency type, omitted when unknown
type DependencyEntry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Type    string `json:"type,omitempty"`
}

// GroupResult is the serializable view of one group after assignment.
//
// Fields:
//   - Name: The group name
//   - Patterns: The group's include patterns
//   - ExcludePatterns: The group's exclude patterns, omitted when empty
//   - Dependencies: Dependencies assigned to the group, in input order
type GroupResult struct {
	Name            string            `json:"name"`
	Patterns        []string          `json:"patterns"`
	ExcludePatterns []string          `json:"exclude_patterns,omitempty"`
	Dependencies    []DependencyEntry `json:"dependencies"`
}

// AssignResult is the complete serializable outcome of an assignment pass.
//
// Fields:
//   - Groups: Per-group results in declaration order
//   - Ungrouped: Dependencies that matched no group, in input order
type AssignResult struct {
	Groups    []GroupResult     `json:"groups"`
	Ungrouped []DependencyEntry `json:"ungrouped"`
}

// NewAssignResult builds an AssignResult from an engine after its assignment
// pass has run.
//
// Parameters:
//   - engine: Engine whose groups and ungrouped list are read
//
// Returns:
//   - *AssignResult: Serializable result preserving declaration and input order
func NewAssignResult(engine *grouping.Engine) *AssignResult {
	result := &AssignResult{
		Groups:    make([]GroupResult, 0, len(engine.Groups())),
		Ungrouped: toEntries(engine.Ungrouped()),
	}

	for _, group := range engine.Groups() {
		result.Groups = append(result.Groups, GroupResult{
			Name:            group.Name,
			Patterns:        group.Rules.Patterns,
			ExcludePatterns: group.Rules.ExcludePatterns,
			Dependencies:    toEntries(group.Dependencies()),
		})
	}

	return result
}

// toEntries converts dependency records to serializable entries.
//
// Parameters:
//   - dependencies: Records to convert
//
// Returns:
//   - []DependencyEntry: Entries in input order; empty slice for no input
func toEntries(dependencies []*deps.Dependency) []DependencyEntry {
	entries := make([]DependencyEntry, 0, len(dependencies))
	for _, dep := range dependencies {
		entries = append(entries, DependencyEntry{
			Name:    dep.Name,
			Version: dep.Version,
			Type:    dep.Type,
		})
	}
	return entries
}
