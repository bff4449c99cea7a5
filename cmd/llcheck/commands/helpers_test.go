package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const validEnv = `ll_filespace: fs1
ll_username: bob
ll_mount_point: /mnt/x
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - ip: 10.0.0.1
    hostname: h1
`

const invalidEnv = `ll_mount_point: relative/path
servers: not-a-list
`

// result is the captured outcome of one CLI invocation.
type result struct {
	stdout string
	stderr string
	code   int
}

// runCLI executes the root command with args in an isolated working
// directory and settings home, and returns what it printed.
func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	return runCLIContext(t, context.Background(), args...)
}

// runCLIContext is runCLI with a caller-supplied context.
func runCLIContext(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()

	t.Setenv("LLCHECK_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	resetCommands(rootCmd)
	rootCmd.SetContext(ctx)
	settings = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	// A nil slice makes cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := execute(rootCmd, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// resetCommands restores every flag of c and its subcommands to its
// default and drops their contexts, since cobra keeps both between
// executions.
func resetCommands(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	c.SetContext(nil) //nolint:staticcheck // cobra treats a nil context as unset
	for _, sub := range c.Commands() {
		resetCommands(sub)
	}
}

// writeFile writes content to name inside a fresh temp dir and returns its
// absolute path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
