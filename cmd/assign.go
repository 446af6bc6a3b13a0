package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/grouping"
	"github.com/ajxudir/depgroups/pkg/output"
)

var assignFormatFlag string
var assignSourceFormatFlag string
var assignIndirectFlag bool

var assignCmd = &cobra.Command{
	Use:   "assign <dependency-source>",
	Short: "Assign dependencies from a source file to configured groups",
	Long: `Read a dependency list (JSON, YAML, or go.mod), run the one-shot
group assignment pass, and print the per-group and ungrouped results.

Groups that no dependency matches are reported on stderr as a
configuration warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssign,
}

// runAssign executes the assign command.
//
// It performs the following operations:
//   - Step 1: Loads and validates the group configuration
//   - Step 2: Loads the dependency list from the source file
//   - Step 3: Builds the engine and runs the one-shot assignment pass
//   - Step 4: Renders the result in the requested output format
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments; args[0] is the dependency source path
//
// Returns:
//   - error: Error if configuration, loading, assignment, or output fails
func runAssign(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return err
	}

	loadOpts := deps.LoadOptions{IncludeIndirect: assignIndirectFlag}
	if assignSourceFormatFlag != "" {
		format, err := deps.ParseSourceFormat(assignSourceFormatFlag)
		if err != nil {
			return err
		}
		loadOpts.Format = format
	}

	dependencies, err := deps.Load(args[0], loadOpts)
	if err != nil {
		return err
	}

	engine, err := grouping.NewEngine(cfg.Groups)
	if err != nil {
		return err
	}
	if err := engine.AssignToGroups(dependencies); err != nil {
		return err
	}

	formatter := output.NewFormatter(output.ParseFormat(assignFormatFlag), cmd.OutOrStdout())
	if err := formatter.Write(output.NewAssignResult(engine)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// init wires the assign command flags.
func init() {
	assignCmd.Flags().StringVarP(&assignFormatFlag, "output", "o", "table", "Output format: table, json, or csv")
	assignCmd.Flags().StringVar(&assignSourceFormatFlag, "format", "", "Dependency source format: json, yaml, or gomod (default: detect from path)")
	assignCmd.Flags().BoolVar(&assignIndirectFlag, "indirect", false, "Include indirect requirements from go.mod sources")
}
