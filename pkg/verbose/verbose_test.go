package verbose

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withCapture enables verbose logging into a buffer for the duration of fn.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to run while capturing
//
// Returns:
//   - string: Everything written to the verbose writer during fn
func withCapture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	defer func() {
		Disable()
		SetWriter(nil) // nil is ignored; writer stays on buf until next SetWriter
	}()

	fn()
	return buf.String()
}

// TestEnableDisable tests the behavior of Enable, Disable and IsEnabled.
//
// It verifies:
//   - Enable turns verbose logging on
//   - Disable turns verbose logging off
//   - Messages are suppressed while disabled
func TestEnableDisable(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)

	Disable()
	assert.False(t, IsEnabled())
	Infof("hidden %s", "message")
	assert.Empty(t, buf.String())

	Enable()
	assert.True(t, IsEnabled())
	Infof("visible %s", "message")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] visible message")
}

// TestSetWriterIgnoresNil tests the behavior of SetWriter.
//
// It verifies:
//   - A nil writer leaves the current writer unchanged
func TestSetWriterIgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	SetWriter(nil)

	Enable()
	Info("still here")
	Disable()

	assert.Contains(t, buf.String(), "still here")
}

// TestConfigLoaded tests the behavior of ConfigLoaded.
//
// It verifies:
//   - The config path is printed
//   - Group names are joined in declaration order
//   - No group line is printed for an empty group list
func TestConfigLoaded(t *testing.T) {
	out := withCapture(t, func() {
		ConfigLoaded(".depgroups.yml", []string{"backend", "frontend"})
	})
	assert.Contains(t, out, "Config loaded: .depgroups.yml")
	assert.Contains(t, out, "Groups: backend, frontend")

	out = withCapture(t, func() {
		ConfigLoaded(".depgroups.yml", nil)
	})
	assert.Contains(t, out, "Config loaded")
	assert.NotContains(t, out, "Groups:")
}

// TestAssignmentHelpers tests the behavior of GroupMatched, DependencyUngrouped
// and DependenciesLoaded.
//
// It verifies:
//   - Each helper prints the expected [DEBUG] line when enabled
//   - Nothing is printed when disabled
func TestAssignmentHelpers(t *testing.T) {
	out := withCapture(t, func() {
		GroupMatched("lodash", "frontend")
		DependencyUngrouped("leftpad")
		DependenciesLoaded("deps.json", 12)
	})

	assert.Contains(t, out, "Dependency 'lodash' matched group 'frontend'")
	assert.Contains(t, out, "Dependency 'leftpad' matched no group")
	assert.Contains(t, out, "Loaded 12 dependencies from deps.json")

	var buf bytes.Buffer
	SetWriter(&buf)
	Disable()
	GroupMatched("lodash", "frontend")
	assert.Empty(t, buf.String())
}
