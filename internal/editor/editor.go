// Package editor launches the user's text editor on an environment file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/llcheck/internal/errors"
)

// Streams are the standard streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Open runs the editor on path and waits for it to exit.
//
// The editor is taken from $LLCHECK_EDITOR, $EDITOR or $VISUAL, in that
// order, and may carry arguments ("code --wait"). Without any of them nano
// is used when installed, vi otherwise.
func Open(ctx context.Context, path string, s Streams) error {
	argv := Command()

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line split into fields.
func Command() []string {
	for _, env := range []string{"LLCHECK_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}
	return []string{"vi"}
}
