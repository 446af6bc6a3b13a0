package config

import (
	"strings"

	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
)

// Validate checks a configuration for structural defects.
//
// It performs the following checks:
//   - Every group has a non-empty name
//   - Group names are unique
//   - Patterns and exclude patterns contain no blank entries
//
// A group with an empty pattern list is structurally valid (it matches
// nothing); it is diagnosed in verbose mode rather than rejected, since the
// assignment pass reports such groups through the misconfiguration warning.
//
// Parameters:
//   - cfg: The configuration to validate
//
// Returns:
//   - error: A ConfigurationError describing the first defect found; nil if valid
func Validate(cfg *Config) error {
	seen := make(map[string]struct{}, len(cfg.Groups))

	for i, group := range cfg.Groups {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return errors.NewConfigurationError("groups", "group %d has an empty name", i)
		}

		if _, exists := seen[name]; exists {
			return errors.NewConfigurationError("groups", "duplicate group name %q", name)
		}
		seen[name] = struct{}{}

		if err := validatePatterns(name, "patterns", group.Rules.Patterns); err != nil {
			return err
		}
		if err := validatePatterns(name, "exclude-patterns", group.Rules.ExcludePatterns); err != nil {
			return err
		}

		if len(group.Rules.Patterns) == 0 {
			verbose.Printf("Group '%s' has no patterns and will match nothing", name)
		}
	}

	return nil
}

// validatePatterns checks that a pattern list has no blank entries.
//
// Parameters:
//   - group: Group name for error reporting
//   - field: Field name for error reporting ("patterns" or "exclude-patterns")
//   - patterns: Pattern list to check
//
// Returns:
//   - error: A ConfigurationError for the first blank entry; nil if clean
func validatePatterns(group, field string, patterns []string) error {
	for i, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return errors.NewConfigurationError(
				"groups."+group+"."+field,
				"pattern %d is empty", i)
		}
	}
	return nil
}
