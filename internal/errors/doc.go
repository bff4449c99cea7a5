// Package errors provides error handling conventions for the llcheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
// It also re-exports the wrapping helpers from github.com/cockroachdb/errors
// so callers need a single errors import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, llerrors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): the document was loaded and is valid
//   - ExitUser (1): anything else (usage, missing file, parse error,
//     validation failure)
//
// Scripts that wrap llcheck only distinguish zero from non-zero, so every
// failure class shares ExitUser.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion:
//
//	err := llerrors.NewUserError(llerrors.ErrUsage, "Usage: llcheck <path_to_env.yml>")
//	var exitErr *llerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
