// Package validator provides the result and reporting types shared by
// llcheck's document checks.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking notes.
//   - [Issue]: A single problem, its exact message and the field path it
//     concerns.
//   - [Result]: Issues in the order the checks produced them.
//   - [Reporter]: Writes a Result as the CLI's text report or as JSON.
//
// # Basic Usage
//
//	result := &validator.Result{Source: path}
//	if !doc.Has("servers") {
//		result.AddError("servers", "Missing required field: servers", nil)
//	}
//
//	if err := validator.NewReporter(os.Stdout, validator.FormatText).Report(result); err != nil {
//		return err
//	}
//
// Issue order is significant: reports list issues exactly as they were
// added, never sorted or grouped by severity.
package validator
