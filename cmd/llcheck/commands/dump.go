package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/internal/loader"
	"github.com/thoreinstein/llcheck/internal/logging"
)

var dumpInputFormat string

func init() {
	dumpCmd.Flags().StringVar(&dumpInputFormat, "input-format", "auto", "input format: auto, yaml, toml")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <path>",
	Short: "Print a decoded environment file as JSON",
	Long: `Decode a file the same way validation does and print the result as JSON.

Use it to see how values were typed: an unquoted ip: 10.0.0.1 is a string,
but ip: 10 is a number and fails the string check.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	input := currentSettings().InputFormat
	if cmd.Flags().Changed("input-format") {
		input = dumpInputFormat
	}
	format, err := loader.ParseFormat(input)
	if err != nil {
		return errors.NewUserError(err, "Use --input-format auto, yaml or toml")
	}

	path := args[0]
	doc, err := loader.NewWithLogger(logging.FromContext(cmd.Context())).Load(path, format)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), loadFailureMessage(path, err))
		return errors.NewReportedError(err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
