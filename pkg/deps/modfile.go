package deps

import (
	"fmt"

	"golang.org/x/mod/modfile"
)

// ParseModFile extracts dependency records from go.mod content.
//
// It performs the following operations:
//   - Step 1: Parses the module file with golang.org/x/mod/modfile
//   - Step 2: Iterates the require directives in declaration order
//   - Step 3: Skips indirect requirements unless includeIndirect is set
//   - Step 4: Maps each requirement to a Dependency record
//
// Direct requirements are typed "prod"; indirect requirements are typed
// "indirect" when included.
//
// Parameters:
//   - path: Path of the go.mod file (used for error positions and Source)
//   - content: Raw go.mod bytes
//   - includeIndirect: Whether indirect requirements are included
//
// Returns:
//   - []*Dependency: Dependencies in require-directive order
//   - error: Error if the module file cannot be parsed
func ParseModFile(path string, content []byte, includeIndirect bool) ([]*Dependency, error) {
	file, err := modfile.Parse(path, content, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid go.mod: %w", err)
	}

	dependencies := make([]*Dependency, 0, len(file.Require))
	for _, require := range file.Require {
		if require.Indirect && !includeIndirect {
			continue
		}

		depType := "prod"
		if require.Indirect {
			depType = "indirect"
		}

		dependencies = append(dependencies, &Dependency{
			Name:    require.Mod.Path,
			Version: require.Mod.Version,
			Type:    depType,
			Source:  path,
		})
	}

	return dependencies, nil
}
