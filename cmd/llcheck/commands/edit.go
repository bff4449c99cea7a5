package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/editor"
	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/pkg/fileutil"
)

var editCheck checkOptions

func init() {
	editCheck.bind(editCmd)
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Open an environment file in your editor, then validate it",
	Long: `Open an environment file in your editor and validate it once the editor
exits. A file that does not exist yet is created from the starter template.

The editor is taken from $LLCHECK_EDITOR, $EDITOR or $VISUAL, falling back to
nano or vi.`,
	Example: `  llcheck edit env.yml
  EDITOR="code --wait" llcheck edit envs/prod.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]

	c, err := newChecker(cmd, &editCheck)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := fileutil.AtomicWriteFile(path, fmt.Appendf(nil, envTemplate, path), 0644); err != nil {
			return errors.Wrap(err, "creating environment file")
		}
		c.logger.Info("created from template", "path", path)
	}

	streams := editor.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
	if err := editor.Open(cmd.Context(), path, streams); err != nil {
		return errors.NewUserError(err, "Set $EDITOR to your editor command")
	}

	out, err := c.check(path)
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
