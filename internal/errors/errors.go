package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the document is valid.
	ExitSuccess = 0

	// ExitUser indicates any failure: usage, I/O, parse or validation.
	ExitUser = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested file was not found.
	ErrNotFound = crdb.New("file not found")

	// ErrInvalidConfig indicates the tool's own settings are invalid.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrValidationFailed indicates the document produced validation errors.
	// The errors themselves have already been reported.
	ErrValidationFailed = crdb.New("validation failed")

	// ErrUsage indicates the command was invoked with the wrong arguments.
	ErrUsage = crdb.New("invalid usage")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Reported is set when the failure has already been written to the
	// user, so main must not print it again.
	Reported bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewReportedError creates an ExitError with ExitUser code for a failure
// whose message was already printed.
func NewReportedError(err error) *ExitError {
	return &ExitError{
		Err:      err,
		Code:     ExitUser,
		Reported: true,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Check the llcheck settings file or LLCHECK_* environment variables",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err.
// nil maps to ExitSuccess; errors without an ExitError map to ExitUser.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
