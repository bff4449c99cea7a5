// Package commands implements the CLI commands for llcheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/cmd"
	"github.com/thoreinstein/llcheck/internal/config"
	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/internal/logging"
)

// usageLine is printed when the root command gets the wrong number of
// arguments. Wrapper scripts match on it.
const usageLine = "Usage: llcheck <path_to_env.yml>"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// settings holds the loaded llcheck settings. It is nil until the
// persistent pre-run has loaded them.
var settings *config.Config

// rootCheck holds the check flags of the root command.
var rootCheck checkOptions

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress log output below errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"settings file (default: ./.llcheck/config.yaml or $XDG_CONFIG_HOME/llcheck/config.yaml)")

	rootCheck.bind(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("llcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "llcheck <path_to_env.yml>",
	Short: "Validate LucidLink environment files",
	Long: `llcheck validates an environment file describing a filespace mount,
its cache and the servers that use it, before deployment tooling consumes it.

The file must define ll_filespace, ll_username, ll_mount_point,
ll_cache_location and ll_data_cache_size as strings, and servers as a list
of entries that each carry a string ip and hostname. The mount point and
cache location must be absolute paths.

Every violation is reported, in a fixed order. The exit status is 0 when the
file is valid and 1 otherwise.`,
	Example: `  # Validate a file
  llcheck env.yml

  # Machine-readable report
  llcheck env.yml --format json

  # Validate several files at once
  llcheck validate prod.yml staging.yml

  See Also: llcheck schema, llcheck dump`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initSettings(cmd)
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errors.NewReportedError(errors.ErrUsage)
	}

	c, err := newChecker(cmd, &rootCheck)
	if err != nil {
		return err
	}
	out, err := c.check(args[0])
	if err != nil {
		return err
	}
	if err := c.writeReportFile(); err != nil {
		return err
	}
	if !out.ok() {
		return errors.NewReportedError(errors.ErrValidationFailed)
	}
	return nil
}

// initSettings loads the settings file and configures logging.
func initSettings(cmd *cobra.Command) error {
	config.Init()
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	settings = cfg

	if err := setupLogging(cmd); err != nil {
		return err
	}
	if used := config.UsedFile(); used != "" {
		slog.Debug("loaded settings", "file", used)
	}
	return nil
}

// currentSettings returns the loaded settings, or the defaults when the
// pre-run has not loaded any.
func currentSettings() *config.Config {
	if settings == nil {
		return config.Default()
	}
	return settings
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.Wrap(errors.ErrUsage, "cannot use --quiet and --verbose together"),
			"Pass either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("LLCHECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(currentSettings().LogFormat)
	if cmd.Flags().Changed("log-format") {
		format = logging.Format(logFormat)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch format {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		if info, err := os.Stat(logFile); err == nil && info.IsDir() {
			return errors.NewUserError(errors.Newf("log file %s is a directory", logFile), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(logging.NewFileWriter(logFile), &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(rootCmd, os.Stderr)
}

// execute runs c and prints any error not already reported to stderr.
func execute(c *cobra.Command, stderr io.Writer) int {
	err := c.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(stderr, "  %s\n", exitErr.Suggestion)
	}
	return errors.ExitCode(err)
}
