package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionCommand tests the version command output.
//
// It verifies:
//   - The version string is printed
//   - The Go runtime version is printed
//   - Build metadata lines appear only when set
func TestVersionCommand(t *testing.T) {
	out := captureOutput(t, func() {
		require.NoError(t, ExecuteTest("version"))
	})

	assert.Contains(t, out, "depgroups "+Version)
	assert.Contains(t, out, runtime.Version())
	assert.NotContains(t, out, "Commit:")

	originalCommit := GitCommit
	defer func() { GitCommit = originalCommit }()
	GitCommit = "abc1234"

	out = captureOutput(t, func() {
		require.NoError(t, ExecuteTest("version"))
	})
	assert.Contains(t, out, "Commit:  abc1234")
}
