package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/pkg/fileutil"
)

// defaultEnvFile is the file init writes when no path is given.
const defaultEnvFile = "env.yml"

// envTemplate is a starter environment file. It passes validation as is.
const envTemplate = `# LucidLink environment.
# Check it with: llcheck %s
ll_filespace: "myfilespace.mydomain"
ll_username: "admin"
ll_mount_point: "/media/lucidlink"
ll_cache_location: "/var/cache/lucidlink"
ll_data_cache_size: "50GB"
servers:
  - ip: "10.0.0.10"
    hostname: "node-01"
  - ip: "10.0.0.11"
    hostname: "node-02"
`

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a starter environment file",
	Long: `Write a starter environment file with every required field filled in
with placeholder values. The file passes validation as written.`,
	Example: `  # Create env.yml in the current directory
  llcheck init

  # Create a file for staging, replacing any existing one
  llcheck init envs/staging.yml --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultEnvFile
	if len(args) == 1 {
		path = args[0]
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return errors.NewUserError(
				errors.Newf("%s already exists", path),
				"Use --force to overwrite it")
		}
	}

	if err := fileutil.AtomicWriteFile(path, fmt.Appendf(nil, envTemplate, path), 0644); err != nil {
		return errors.Wrap(err, "writing environment file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
