package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/errors"
	report "github.com/thoreinstein/llcheck/internal/validator"
	"github.com/thoreinstein/llcheck/internal/watch"
)

var validateCheck checkOptions

var (
	validatePick  bool
	validateWatch bool
)

func init() {
	validateCheck.bind(validateCmd)
	validateCmd.Flags().BoolVarP(&validatePick, "pick", "i", false,
		"choose files interactively from the current directory")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false,
		"re-validate files whenever they change, until interrupted")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate one or more environment files",
	Long: `Validate each file in turn and report every violation.

In text format each report is preceded by a "==> <path>" header when more
than one file is given, or with --watch. In JSON format one report object is written per
file. All files are checked even when an earlier one fails; the exit status
is 1 if any file is invalid or could not be read.

With --pick, files are chosen in a fuzzy finder that previews each file's
report. With --watch, each file is validated again whenever it is saved; the
exit status then reflects the last report of every file.`,
	Example: `  # Validate every environment under envs/
  llcheck validate envs/*.yml

  # Collect a CI artifact
  llcheck validate envs/*.yml --report-file llcheck-report.json

  # Choose files interactively
  llcheck validate --pick

  # Keep checking while you edit
  llcheck validate --watch env.yml`,
	Args: func(cmd *cobra.Command, args []string) error {
		if validatePick {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	c, err := newChecker(cmd, &validateCheck)
	if err != nil {
		return err
	}

	if validatePick {
		picked, err := pickArgs(c, args)
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			c.logger.Info("nothing selected")
			return nil
		}
		args = picked
	}

	headers := (len(args) > 1 || validateWatch) && c.format == report.FormatText
	status, err := c.checkAll(args, headers, false)
	if err != nil {
		return err
	}

	if validateWatch {
		if err := watchFiles(cmd.Context(), c, args, headers, status); err != nil {
			return err
		}
	}

	if err := c.writeReportFile(); err != nil {
		return err
	}

	failed := 0
	for _, ok := range status {
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		c.logger.Info("validation finished", "files", len(args), "failed", failed)
		return errors.NewReportedError(errors.Wrapf(errors.ErrValidationFailed, "%d of %d files", failed, len(args)))
	}
	return nil
}

// checkAll checks each path in order and returns whether each passed.
// With headers, every report is preceded by a "==> path" line and reports
// are separated by a blank line; more reports follow when continued.
func (c *checker) checkAll(paths []string, headers, continued bool) (map[string]bool, error) {
	status := make(map[string]bool, len(paths))
	for i, path := range paths {
		if headers {
			if i > 0 || continued {
				fmt.Fprintln(c.out)
			}
			fmt.Fprintf(c.out, "==> %s\n", path)
		}
		out, err := c.check(path)
		if err != nil {
			return nil, err
		}
		status[path] = out.ok()
	}
	return status, nil
}

// watchFiles re-checks files as they change until ctx is done or the
// process is interrupted, updating status with the latest outcomes.
func watchFiles(ctx context.Context, c *checker, paths []string, headers bool, status map[string]bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(paths, watch.DefaultInterval, c.logger)
	if err != nil {
		return errors.NewUserError(err, "Check that the directories holding the files exist")
	}
	c.logger.Warn("watching for changes, press Ctrl-C to stop", "files", len(paths))

	var checkErr error
	runErr := w.Run(ctx, func(changed []string) {
		if checkErr != nil {
			return
		}
		latest, err := c.checkAll(changed, headers, true)
		if err != nil {
			checkErr = err
			stop()
			return
		}
		for p, ok := range latest {
			status[p] = ok
		}
	})
	if checkErr != nil {
		return checkErr
	}
	return errors.Wrap(runErr, "watching files")
}

// pickArgs offers the environment files under the current directory, plus
// any given as arguments, in the interactive picker.
func pickArgs(c *checker, args []string) ([]string, error) {
	found, err := findCandidates(".")
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(args)+len(found))
	candidates = append(candidates, args...)
	candidates = append(candidates, found...)
	if len(candidates) == 0 {
		return nil, errors.NewUserError(
			errors.New("no environment files found"),
			"Run llcheck validate --pick from the directory holding your env files")
	}
	return pickFiles(candidates, c.preview)
}
