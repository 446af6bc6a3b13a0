// Package config loads and validates the depgroups configuration file.
//
// The configuration declares an ordered list of dependency groups, each with
// include patterns and optional exclude patterns. Declaration order matters:
// the grouping engine evaluates groups in the order they appear in the file,
// and output preserves that order.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for depgroups.
//
// Fields:
//   - Groups: Group descriptors in declaration order
type Config struct {
	Groups GroupList `yaml:"groups"`
}

// GroupCfg describes a single dependency group.
//
// Fields:
//   - Name: Unique group identifier, never empty
//   - Rules: Include/exclude pattern rules for membership
type GroupCfg struct {
	Name  string   `yaml:"name"`
	Rules RulesCfg `yaml:"rules"`
}

// RulesCfg holds the pattern rules of a group.
//
// A dependency belongs to the group when its name matches at least one entry
// of Patterns and no entry of ExcludePatterns. A group with empty Patterns
// matches nothing.
//
// Fields:
//   - Patterns: Include patterns (exact names or `*` wildcards)
//   - ExcludePatterns: Optional exclude patterns; exclude wins over include
type RulesCfg struct {
	Patterns        []string `yaml:"patterns"`
	ExcludePatterns []string `yaml:"exclude-patterns"`
}

// GroupList is an ordered list of group descriptors.
//
// It exists as a named type so YAML unmarshaling can accept both the mapping
// form (group name as key) and the sequence form (explicit name field) while
// preserving declaration order in both cases.
type GroupList []GroupCfg

// UnmarshalYAML implements custom YAML unmarshaling for GroupList.
//
// This allows groups to be specified in two formats:
//   - Mapping keyed by group name:
//     groups:
//       group-a:
//         patterns: ["dummy-pkg-*"]
//   - Sequence of descriptors:
//     groups:
//       - name: group-a
//         rules:
//           patterns: ["dummy-pkg-*"]
//
// Declaration order is preserved for both forms; yaml.Node mapping content
// retains document order.
//
// Parameters:
//   - value: the YAML node to unmarshal
//
// Returns:
//   - error: error if the YAML structure is invalid
func (g *GroupList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		if len(value.Content)%2 != 0 {
			return fmt.Errorf("group mapping entries must be key/value pairs")
		}

		groups := make(GroupList, 0, len(value.Content)/2)
		for i := 0; i < len(value.Content); i += 2 {
			name := strings.TrimSpace(value.Content[i].Value)
			node := value.Content[i+1]

			var rules RulesCfg
			if err := decodeRules(node, &rules); err != nil {
				return fmt.Errorf("group %q: %w", name, err)
			}

			groups = append(groups, GroupCfg{Name: name, Rules: rules})
		}

		*g = groups
		return nil
	case yaml.SequenceNode:
		groups := make(GroupList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.MappingNode {
				return fmt.Errorf("group entries must be mappings with a name")
			}

			var entry struct {
				Name  string    `yaml:"name"`
				Rules yaml.Node `yaml:"rules"`
			}
			if err := item.Decode(&entry); err != nil {
				return fmt.Errorf("failed to decode group entry: %w", err)
			}

			var rules RulesCfg
			if entry.Rules.Kind != 0 {
				if err := decodeRules(&entry.Rules, &rules); err != nil {
					return fmt.Errorf("group %q: %w", entry.Name, err)
				}
			}

			groups = append(groups, GroupCfg{Name: strings.TrimSpace(entry.Name), Rules: rules})
		}

		*g = groups
		return nil
	default:
		return fmt.Errorf("groups must be a mapping or a sequence")
	}
}

// decodeRules decodes a rules node, accepting both exclude key spellings.
//
// The canonical key is "exclude-patterns"; "exclude_patterns" is accepted as
// an alias for compatibility with underscore-style configs.
//
// Parameters:
//   - node: YAML node holding the rules mapping
//   - rules: Destination rules struct
//
// Returns:
//   - error: error if the node has invalid structure or unknown keys
func decodeRules(node *yaml.Node, rules *RulesCfg) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("rules must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		val := node.Content[i+1]

		switch key {
		case "patterns":
			if err := val.Decode(&rules.Patterns); err != nil {
				return fmt.Errorf("patterns must be a list of strings: %w", err)
			}
		case "exclude-patterns", "exclude_patterns":
			if err := val.Decode(&rules.ExcludePatterns); err != nil {
				return fmt.Errorf("exclude-patterns must be a list of strings: %w", err)
			}
		default:
			return fmt.Errorf("unsupported rules key %q", key)
		}
	}

	return nil
}

// Names returns the group names in declaration order.
//
// Returns:
//   - []string: Group names; nil for an empty list
func (g GroupList) Names() []string {
	if len(g) == 0 {
		return nil
	}

	names := make([]string, 0, len(g))
	for _, group := range g {
		names = append(names, group.Name)
	}
	return names
}
