package deps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/depgroups/pkg/verbose"
)

// SourceFormat identifies the on-disk format of a dependency source.
type SourceFormat string

const (
	// FormatJSON is a JSON array of dependency records or names.
	FormatJSON SourceFormat = "json"
	// FormatYAML is a YAML sequence of dependency records or names.
	FormatYAML SourceFormat = "yaml"
	// FormatGoMod is a go.mod module file.
	FormatGoMod SourceFormat = "gomod"
)

// ParseSourceFormat parses a format string into a SourceFormat.
//
// The parsing is case-insensitive. Valid values are "json", "yaml", "yml",
// and "gomod".
//
// Parameters:
//   - s: Format string to parse (e.g., "json", "YAML", "gomod")
//
// Returns:
//   - SourceFormat: The parsed format
//   - error: Error if the format string is not recognized
func ParseSourceFormat(s string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "gomod", "go.mod", "mod":
		return FormatGoMod, nil
	default:
		return "", fmt.Errorf("unknown dependency source format %q (expected json, yaml, or gomod)", s)
	}
}

// DetectSourceFormat infers the source format from a file path.
//
// It performs the following operations:
//   - Step 1: Recognizes a base name of go.mod as the gomod format
//   - Step 2: Maps the .json extension to JSON
//   - Step 3: Maps the .yaml and .yml extensions to YAML
//
// Parameters:
//   - path: File path to inspect
//
// Returns:
//   - SourceFormat: The detected format
//   - error: Error if the format cannot be inferred from the path
func DetectSourceFormat(path string) (SourceFormat, error) {
	if filepath.Base(path) == "go.mod" {
		return FormatGoMod, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot detect dependency source format for %q; use --format to set it explicitly", path)
	}
}

// LoadOptions controls dependency source loading.
//
// Fields:
//   - Format: Source format; empty means detect from the file path
//   - IncludeIndirect: Include indirect requirements from go.mod sources
type LoadOptions struct {
	// Format overrides format detection when non-empty.
	Format SourceFormat

	// IncludeIndirect includes indirect go.mod requirements.
	IncludeIndirect bool
}

// Load reads a dependency list from a source file.
//
// It performs the following operations:
//   - Step 1: Resolves the source format (explicit option or path detection)
//   - Step 2: Reads the file content
//   - Step 3: Dispatches to the format-specific parser
//   - Step 4: Stamps each record with the source path
//
// Parameters:
//   - path: Path to the dependency source file
//   - opts: Loading options
//
// Returns:
//   - []*Dependency: Parsed dependencies in source order
//   - error: Error if the file cannot be read or parsed
func Load(path string, opts LoadOptions) ([]*Dependency, error) {
	format := opts.Format
	if format == "" {
		detected, err := DetectSourceFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dependency source %s: %w", path, err)
	}

	var dependencies []*Dependency
	switch format {
	case FormatJSON:
		dependencies, err = parseJSON(content)
	case FormatYAML:
		dependencies, err = parseYAML(content)
	case FormatGoMod:
		dependencies, err = ParseModFile(path, content, opts.IncludeIndirect)
	default:
		err = fmt.Errorf("unknown dependency source format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependency source %s: %w", path, err)
	}

	for _, dep := range dependencies {
		if dep.Source == "" {
			dep.Source = path
		}
	}

	verbose.DependenciesLoaded(path, len(dependencies))
	return dependencies, nil
}

// parseJSON parses a JSON dependency list.
//
// Two entry shapes are accepted, mirroring common lockfile exports:
//   - A bare string: the dependency name
//   - An object: {"name": ..., "version": ..., "type": ...}
//
// Parameters:
//   - content: Raw JSON bytes
//
// Returns:
//   - []*Dependency: Parsed dependencies in array order
//   - error: Error if the JSON is malformed or an entry has no name
func parseJSON(content []byte) ([]*Dependency, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("expected a JSON array of dependencies: %w", err)
	}

	dependencies := make([]*Dependency, 0, len(raw))
	for i, entry := range raw {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("dependency %d has an empty name", i)
			}
			dependencies = append(dependencies, &Dependency{Name: name})
			continue
		}

		var dep Dependency
		if err := json.Unmarshal(entry, &dep); err != nil {
			return nil, fmt.Errorf("dependency %d: %w", i, err)
		}
		if strings.TrimSpace(dep.Name) == "" {
			return nil, fmt.Errorf("dependency %d has an empty name", i)
		}
		dependencies = append(dependencies, &dep)
	}

	return dependencies, nil
}

// parseYAML parses a YAML dependency list.
//
// The same entry shapes as parseJSON are accepted: bare names or mappings
// with name/version/type keys.
//
// Parameters:
//   - content: Raw YAML bytes
//
// Returns:
//   - []*Dependency: Parsed dependencies in sequence order
//   - error: Error if the YAML is malformed or an entry has no name
func parseYAML(content []byte) ([]*Dependency, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	list := root.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a YAML sequence of dependencies")
	}

	dependencies := make([]*Dependency, 0, len(list.Content))
	for i, item := range list.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			name := strings.TrimSpace(item.Value)
			if name == "" {
				return nil, fmt.Errorf("dependency %d has an empty name", i)
			}
			dependencies = append(dependencies, &Dependency{Name: name})
		case yaml.MappingNode:
			var dep Dependency
			if err := item.Decode(&dep); err != nil {
				return nil, fmt.Errorf("dependency %d: %w", i, err)
			}
			if strings.TrimSpace(dep.Name) == "" {
				return nil, fmt.Errorf("dependency %d has an empty name", i)
			}
			dependencies = append(dependencies, &dep)
		default:
			return nil, fmt.Errorf("dependency %d must be a name or a mapping", i)
		}
	}

	return dependencies, nil
}
