package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/envfile/validator"
	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/internal/loader"
	"github.com/thoreinstein/llcheck/internal/logging"
	report "github.com/thoreinstein/llcheck/internal/validator"
	"github.com/thoreinstein/llcheck/pkg/fileutil"
)

// checkOptions holds the flags shared by commands that validate files.
type checkOptions struct {
	format      string
	inputFormat string
	reportFile  string
}

func (o *checkOptions) bind(c *cobra.Command) {
	c.Flags().StringVar(&o.format, "format", "text", "report format: text, json")
	c.Flags().StringVar(&o.inputFormat, "input-format", "auto", "input format: auto, yaml, toml")
	c.Flags().StringVar(&o.reportFile, "report-file", "", "also write the JSON report to this file")
}

// resolve returns the report and input formats. Flags set on the command
// line win over settings.
func (o *checkOptions) resolve(c *cobra.Command) (report.Format, loader.Format, error) {
	cfg := currentSettings()

	format := cfg.Format
	if c.Flags().Changed("format") {
		format = o.format
	}
	rf, err := report.ParseFormat(format)
	if err != nil {
		return "", "", errors.NewUserError(err, "Use --format text or --format json")
	}

	input := cfg.InputFormat
	if c.Flags().Changed("input-format") {
		input = o.inputFormat
	}
	inf, err := loader.ParseFormat(input)
	if err != nil {
		return "", "", errors.NewUserError(err, "Use --input-format auto, yaml or toml")
	}

	return rf, inf, nil
}

// checker loads, validates and reports files.
type checker struct {
	ctx        context.Context
	out        io.Writer
	format     report.Format
	input      loader.Format
	reportFile string
	loader     *loader.Loader
	validator  *validator.Validator
	reporter   *report.Reporter
	logger     *slog.Logger

	// reports collects the JSON form of every checked file for --report-file.
	reports []report.JSONReport
}

func newChecker(c *cobra.Command, opts *checkOptions) (*checker, error) {
	rf, inf, err := opts.resolve(c)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(c.Context())
	out := c.OutOrStdout()
	return &checker{
		ctx:        c.Context(),
		out:        out,
		format:     rf,
		input:      inf,
		reportFile: opts.reportFile,
		loader:     loader.NewWithLogger(logger),
		validator:  validator.New(),
		reporter:   report.NewReporter(out, rf),
		logger:     logger,
	}, nil
}

// outcome is what checking one file produced.
type outcome struct {
	// result is nil when the file could not be loaded.
	result  *report.Result
	loadErr error
}

func (o outcome) ok() bool {
	return o.loadErr == nil && o.result.Valid()
}

// check validates the file at path and writes its report. The returned
// error is set only when the report itself could not be written; load and
// validation failures are part of the outcome.
func (c *checker) check(path string) (outcome, error) {
	doc, err := c.loader.Load(path, c.input)
	if err != nil {
		c.logger.Debug("load failed", "path", path, "error", err)
		msg := loadFailureMessage(path, err)
		if werr := c.reporter.ReportFailure(path, msg); werr != nil {
			return outcome{}, werr
		}
		c.reports = append(c.reports, report.JSONReport{
			Source: path,
			Error:  msg,
			Errors: []string{},
			Issues: []report.Issue{},
		})
		return outcome{loadErr: err}, nil
	}

	result := c.validator.Validate(doc)
	result.Source = path
	for _, issue := range result.Issues {
		c.logger.Log(c.ctx, logging.LevelTrace, "issue", "path", path, "field", issue.Field, "message", issue.Message)
	}
	c.logger.Info("validated", "path", path, "errors", len(result.Errors()))

	if err := c.reporter.Report(result); err != nil {
		return outcome{}, err
	}
	c.reports = append(c.reports, report.NewJSONReport(result))
	return outcome{result: result}, nil
}

// writeReportFile writes the collected reports to --report-file: a single
// object for one file, an array for several.
func (c *checker) writeReportFile() error {
	if c.reportFile == "" || len(c.reports) == 0 {
		return nil
	}
	// Files checked more than once, as in watch mode, keep their latest report.
	index := make(map[string]int, len(c.reports))
	reports := make([]report.JSONReport, 0, len(c.reports))
	for _, r := range c.reports {
		if i, seen := index[r.Source]; seen {
			reports[i] = r
			continue
		}
		index[r.Source] = len(reports)
		reports = append(reports, r)
	}

	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	if err := fileutil.AtomicWriteJSON(c.reportFile, v); err != nil {
		return errors.NewUserError(errors.Wrap(err, "writing report file"), "Check the --report-file path")
	}
	c.logger.Debug("wrote report file", "path", c.reportFile)
	return nil
}

// loadFailureMessage renders a load error the way the report prints it.
func loadFailureMessage(path string, err error) string {
	var notExist *loader.NotExistError
	var parseErr *loader.ParseError
	switch {
	case errors.As(err, &notExist):
		return fmt.Sprintf("Error: File %s does not exist", path)
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Error parsing %s: %v", parseErr.Format.Label(), parseErr.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
