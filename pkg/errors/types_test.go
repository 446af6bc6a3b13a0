package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConfigurationErrorMessage tests the Error method of ConfigurationError.
//
// It verifies:
//   - Field is included as a prefix when set
//   - Message alone is returned when Field is empty
func TestConfigurationErrorMessage(t *testing.T) {
	err := NewConfigurationError("groups", "duplicate group name %q", "backend")
	assert.Equal(t, `groups: duplicate group name "backend"`, err.Error())

	err = NewConfigurationError("", "dependency groups have already been configured")
	assert.Equal(t, "dependency groups have already been configured", err.Error())
}

// TestIsConfigurationError tests the behavior of IsConfigurationError.
//
// It verifies:
//   - Direct ConfigurationErrors are detected
//   - Wrapped ConfigurationErrors are detected through errors.As
//   - Plain errors are not detected
//   - nil is not detected
func TestIsConfigurationError(t *testing.T) {
	ce := NewConfigurationError("groups", "bad rules")

	got, ok := IsConfigurationError(ce)
	assert.True(t, ok)
	assert.Equal(t, ce, got)

	wrapped := fmt.Errorf("loading config: %w", ce)
	got, ok = IsConfigurationError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ce, got)

	_, ok = IsConfigurationError(stderrors.New("plain"))
	assert.False(t, ok)

	_, ok = IsConfigurationError(nil)
	assert.False(t, ok)
}

// TestConfigurationErrorUnwrap tests the Unwrap method of ConfigurationError.
//
// It verifies:
//   - The underlying error is reachable via errors.Is
func TestConfigurationErrorUnwrap(t *testing.T) {
	inner := stderrors.New("yaml: unmarshal failed")
	ce := &ConfigurationError{Field: "groups", Message: "invalid rules", Err: inner}

	assert.True(t, stderrors.Is(ce, inner))
}

// TestGetExitCode tests the behavior of GetExitCode.
//
// It verifies:
//   - nil maps to ExitSuccess
//   - ExitError returns its own code
//   - ConfigurationError maps to ExitConfigError
//   - Wrapped ConfigurationError maps to ExitConfigError
//   - Other errors map to ExitFailure
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, stderrors.New("boom"))))
	assert.Equal(t, ExitConfigError, GetExitCode(NewConfigurationError("groups", "dup")))
	assert.Equal(t, ExitConfigError, GetExitCode(fmt.Errorf("wrap: %w", NewConfigurationError("", "dup"))))
	assert.Equal(t, ExitFailure, GetExitCode(stderrors.New("other")))
}

// TestExitErrorMessage tests the Error method of ExitError.
//
// It verifies:
//   - Message takes precedence when set
//   - Underlying error message is used otherwise
//   - A default message includes the exit code when nothing else is set
func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "custom", NewExitErrorf(ExitFailure, "custom").Error())
	assert.Equal(t, "inner", NewExitError(ExitFailure, stderrors.New("inner")).Error())
	assert.Equal(t, "exit code 2", (&ExitError{Code: ExitFailure}).Error())
}
