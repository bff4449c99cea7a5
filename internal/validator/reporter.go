package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thoreinstein/llcheck/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces the human-readable report.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Report lines of the text format. Wrapper scripts match on these.
const (
	SuccessMessage = "Configuration validation successful!"
	FailureHeader  = "Configuration validation failed:"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf("unknown report format %q (valid: text, json)", s)
	}
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// JSONReport is the JSON form of a Result.
type JSONReport struct {
	Valid  bool     `json:"valid"`
	Source string   `json:"source,omitempty"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors"`
	Issues []Issue  `json:"issues"`
}

// NewJSONReport builds the JSON form of result. A nil result is an empty,
// valid one.
func NewJSONReport(result *Result) JSONReport {
	if result == nil {
		result = &Result{}
	}
	issues := result.Issues
	if issues == nil {
		issues = []Issue{}
	}
	return JSONReport{
		Valid:  result.Valid(),
		Source: result.Source,
		Errors: result.Messages(),
		Issues: issues,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		result = &Result{}
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// ReportFailure writes a failure that stopped validation before it ran,
// such as a missing or malformed file. The text format prints message as a
// single line.
func (r *Reporter) ReportFailure(source, message string) error {
	if r.format == FormatJSON {
		return r.encode(JSONReport{
			Source: source,
			Error:  message,
			Errors: []string{},
			Issues: []Issue{},
		})
	}
	_, err := fmt.Fprintln(r.out, message)
	return errors.Wrap(err, "writing report")
}

func (r *Reporter) reportJSON(result *Result) error {
	return r.encode(NewJSONReport(result))
}

func (r *Reporter) encode(report JSONReport) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

// reportText writes the failure header and one "- " line per error, or the
// success line.
func (r *Reporter) reportText(result *Result) error {
	if result.Valid() {
		_, err := fmt.Fprintln(r.out, SuccessMessage)
		return errors.Wrap(err, "writing report")
	}

	if _, err := fmt.Fprintln(r.out, FailureHeader); err != nil {
		return errors.Wrap(err, "writing report")
	}
	for _, msg := range result.Messages() {
		if _, err := fmt.Fprintf(r.out, "- %s\n", msg); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}
