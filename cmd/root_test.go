package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/depgroups/pkg/errors"
)

// captureOutput redirects the root command's output to a buffer for the
// duration of fn and returns everything written.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function that executes commands
//
// Returns:
//   - string: Captured command output
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	fn()
	return buf.String()
}

// TestRootShowsHelp tests the bare root command.
//
// It verifies:
//   - Running without a subcommand succeeds and prints usage
func TestRootShowsHelp(t *testing.T) {
	out := captureOutput(t, func() {
		require.NoError(t, ExecuteTest())
	})
	assert.Contains(t, out, "depgroups")
	assert.Contains(t, out, "assign")
}

// TestExecuteMapsConfigErrorsToExitCode tests the Execute exit-code mapping.
//
// It verifies:
//   - A missing config file makes Execute exit non-zero
//   - The exit function receives the code derived from the error
func TestExecuteMapsConfigErrorsToExitCode(t *testing.T) {
	originalExit := exitFunc
	defer func() { exitFunc = originalExit }()

	var gotCode int
	exitFunc = func(code int) { gotCode = code }

	missing := filepath.Join(t.TempDir(), "absent.yml")
	rootCmd.SetArgs([]string{"groups", "-c", missing})
	defer rootCmd.SetArgs(nil)

	captureOutput(t, func() { Execute() })

	assert.Equal(t, errors.ExitFailure, gotCode)
}

// TestResolveConfigPath tests the behavior of resolveConfigPath.
//
// It verifies:
//   - The --config flag value wins when set
//   - The default config file name is used otherwise
func TestResolveConfigPath(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	configFlag = ""
	assert.Equal(t, ".depgroups.yml", resolveConfigPath())

	configFlag = "custom.yml"
	assert.Equal(t, "custom.yml", resolveConfigPath())
}
