// Package errors defines the error types and exit codes used across depgroups.
//
// The only structured failure mode in the classification core is a
// configuration defect: duplicate group names, invalid group rules, or
// re-running the one-shot assignment pass. All of these are represented by
// ConfigurationError so callers can detect them with errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates all operations completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates the command failed with a runtime error.
	// This includes: unreadable dependency sources and output failures.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	// The command could not proceed due to invalid group configuration.
	ExitConfigError = 3
)

// ConfigurationError represents a defect in the group configuration or in
// how the caller drives the engine.
//
// This error is not retryable: it signals a programming or configuration
// mistake, never a transient condition. The engine raises it before any
// partial mutation becomes visible.
//
// Fields:
//   - Field: Name of the offending configuration field or operation, may be empty
//   - Message: Description of what is wrong
//   - Err: Underlying error, may be nil
//
// Example:
//
//	return &ConfigurationError{
//	    Field:   "groups",
//	    Message: `duplicate group name "backend"`,
//	}
type ConfigurationError struct {
	// Field identifies the configuration field or operation at fault.
	Field string

	// Message describes the defect.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
//
// Includes the Field as a prefix when set.
//
// Returns:
//   - string: The error message
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a ConfigurationError with a formatted message.
//
// Parameters:
//   - field: Configuration field or operation at fault, may be empty
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ConfigurationError: New configuration error
//
// Example:
//
//	err := errors.NewConfigurationError("groups", "duplicate group name %q", name)
func NewConfigurationError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsConfigurationError checks whether err is (or wraps) a ConfigurationError.
//
// Parameters:
//   - err: Error to inspect, may be nil
//
// Returns:
//   - *ConfigurationError: The configuration error if found, nil otherwise
//   - bool: true if err is a ConfigurationError
func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 2=failure, 3=config error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// It performs the following operations:
//   - Returns ExitSuccess for a nil error
//   - Returns the code of an ExitError
//   - Returns ExitConfigError for a ConfigurationError
//   - Returns ExitFailure for any other error
//
// Parameters:
//   - err: Error to inspect, may be nil
//
// Returns:
//   - int: The exit code appropriate for the error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	if _, ok := IsConfigurationError(err); ok {
		return ExitConfigError
	}

	return ExitFailure
}
