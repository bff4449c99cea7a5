package errors

import crdb "github.com/cockroachdb/errors"

// New returns an error with a stack trace.
func New(msg string) error {
	return crdb.New(msg)
}

// Newf returns a formatted error with a stack trace.
func Newf(format string, args ...any) error {
	return crdb.Newf(format, args...)
}

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error {
	return crdb.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return crdb.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return crdb.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return crdb.As(err, target)
}

// UnwrapAll returns the innermost cause of err.
func UnwrapAll(err error) error {
	return crdb.UnwrapAll(err)
}

// Join returns an error wrapping every non-nil err, or nil if there are none.
func Join(errs ...error) error {
	return crdb.Join(errs...)
}

// Mark tags err so that Is(err, reference) holds, without changing its
// message.
func Mark(err, reference error) error {
	return crdb.Mark(err, reference)
}
