// Package logging sets up llcheck's slog loggers.
//
// Log records go to stderr, and optionally to a JSON log file through
// [MultiHandler]. Stdout carries only the validation report, so a wrapper
// script can parse it whatever the verbosity.
//
// On a terminal the text [Handler] colors the level; NO_COLOR and TERM=dumb
// turn color off. Attributes with secret-looking keys are masked.
//
// Verbosity flags map to levels through [LevelFromVerbosity]; -vvv enables
// [LevelTrace], which logs every issue as it is found.
//
// The root command stores its logger in the command context:
//
//	logger := logging.FromContext(cmd.Context())
//	logger.Debug("read document", "path", path, "bytes", n)
//
// Tests use [ForTest], which logs through t.Log at trace level.
package logging
