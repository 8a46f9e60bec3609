package model

import (
	"fmt"
	"strings"
)

// ExitCode defines the process exit codes of the CLI.
// Scripts can rely on these values to tell failure classes apart.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates a bad value was supplied, such as a
	// negative row count.
	ExitInvalidArgument ExitCode = 2

	// ExitConfigNotFound indicates the file passed to --config does not exist.
	ExitConfigNotFound ExitCode = 3

	// ExitConfigInvalid indicates the config file could not be parsed.
	ExitConfigInvalid ExitCode = 4
)

// String returns a short lowercase name for the exit code, used in
// JSON error output.
func (c ExitCode) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitGeneralError:
		return "general-error"
	case ExitInvalidArgument:
		return "invalid-argument"
	case ExitConfigNotFound:
		return "config-not-found"
	case ExitConfigInvalid:
		return "config-invalid"
	default:
		return fmt.Sprintf("exit-%d", int(c))
	}
}

// ParseExitCode converts a name produced by ExitCode.String back into an
// ExitCode. Matching is case insensitive.
func ParseExitCode(s string) (ExitCode, error) {
	switch strings.ToLower(s) {
	case "success":
		return ExitSuccess, nil
	case "general-error":
		return ExitGeneralError, nil
	case "invalid-argument":
		return ExitInvalidArgument, nil
	case "config-not-found":
		return ExitConfigNotFound, nil
	case "config-invalid":
		return ExitConfigInvalid, nil
	default:
		return 0, fmt.Errorf("invalid exit code name: %q", s)
	}
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
