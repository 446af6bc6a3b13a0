package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/output"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the configured dependency groups",
	Long:  `List the configured groups with their include and exclude patterns, in declaration order.`,
	RunE:  runGroups,
}

// runGroups executes the groups command.
//
// It loads the configuration and prints one table row per group, preserving
// declaration order. Configurations without groups print a short notice.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments (unused)
//
// Returns:
//   - error: Error if the configuration cannot be loaded
func runGroups(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(cfg.Groups) == 0 {
		_, err := fmt.Fprintln(w, "No groups configured")
		return err
	}

	hasExcludes := false
	for _, group := range cfg.Groups {
		if len(group.Rules.ExcludePatterns) > 0 {
			hasExcludes = true
			break
		}
	}

	table := output.NewTable().
		AddColumn("GROUP").
		AddColumn("PATTERNS").
		AddConditionalColumn("EXCLUDE-PATTERNS", hasExcludes)

	for _, group := range cfg.Groups {
		table.UpdateWidths(group.Name, strings.Join(group.Rules.Patterns, ", "), strings.Join(group.Rules.ExcludePatterns, ", "))
	}

	if _, err := fmt.Fprintln(w, table.HeaderRow()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, table.SeparatorRow()); err != nil {
		return err
	}
	for _, group := range cfg.Groups {
		row := table.FormatRow(group.Name, strings.Join(group.Rules.Patterns, ", "), strings.Join(group.Rules.ExcludePatterns, ", "))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	return nil
}
