// Package cmd implements the command-line interface for depgroups.
// It provides commands for classifying dependencies into configured groups,
// inspecting the configured groups, and printing version information.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var configFlag string

var rootCmd = &cobra.Command{
	Use:   "depgroups",
	Short: "Classify project dependencies into configured groups",
	Long: `Classify a project's dependencies into named groups using the
include/exclude name patterns declared in the configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: Runtime failure (unreadable sources, output errors)
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Parameters:
//   - args: Command-line arguments to pass to the root command
//
// Returns:
//   - error: The error returned by command execution, nil on success
func ExecuteTest(args ...string) error {
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

// resolveConfigPath returns the config file path to load.
//
// The --config flag wins when set; otherwise the default config file in the
// working directory is used.
//
// Returns:
//   - string: Path of the configuration file
func resolveConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.DefaultConfigFile
}

// init wires persistent flags and registers subcommands in display order.
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the configuration file (default \".depgroups.yml\")")

	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(versionCmd)
}
