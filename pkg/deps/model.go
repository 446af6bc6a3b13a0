// Package deps defines the dependency record consumed by the grouping engine
// and the loaders that read dependency lists from JSON, YAML, and go.mod
// sources.
package deps

// Dependency represents a single project dependency to be classified.
//
// The Name field is the matching key used by group rules; all other fields
// are opaque payload carried through to output. Records are shared by
// reference between the engine, the groups, and the caller; the core never
// copies or mutates them.
//
// Fields:
//   - Name: The dependency name as declared in the source (matching key)
//   - Version: The declared version, if known
//   - Type: The dependency type (e.g., "prod", "dev"), if known
//   - Source: The file the dependency was read from
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// GetName returns the dependency name used as the matching key.
//
// Returns:
//   - string: The dependency name from the Name field
func (d *Dependency) GetName() string {
	return d.Name
}

// Names returns the names of the given dependencies in order.
//
// Parameters:
//   - dependencies: Dependencies to read names from
//
// Returns:
//   - []string: Dependency names in input order; nil for an empty input
func Names(dependencies []*Dependency) []string {
	if len(dependencies) == 0 {
		return nil
	}

	names := make([]string, 0, len(dependencies))
	for _, dep := range dependencies {
		names = append(names, dep.Name)
	}
	return names
}
