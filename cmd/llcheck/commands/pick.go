package commands

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/internal/logging"
	report "github.com/thoreinstein/llcheck/internal/validator"
)

// pickMaxDepth bounds how deep --pick looks for environment files.
const pickMaxDepth = 3

// candidateExts are the extensions --pick offers.
var candidateExts = map[string]bool{
	".yml":  true,
	".yaml": true,
	".toml": true,
	".json": true,
}

// pickFiles asks the user to choose among candidates. Tests replace it.
var pickFiles = fuzzyPickFiles

func fuzzyPickFiles(candidates []string, preview func(path string) string) ([]string, error) {
	if !logging.IsTTY(os.Stdout) {
		return nil, errors.NewUserError(
			errors.New("--pick needs an interactive terminal"),
			"Pass the files to validate as arguments")
	}

	idxs, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithHeader("Tab to mark files, Enter to validate"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(candidates[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	picked := make([]string, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, candidates[i])
	}
	return picked, nil
}

// findCandidates lists files under root that may be environment files, in
// lexical order. Hidden directories are skipped.
func findCandidates(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			rel, _ := filepath.Rel(root, path)
			if rel != "." && strings.Count(rel, string(filepath.Separator)) >= pickMaxDepth-1 {
				return filepath.SkipDir
			}
			return nil
		}
		if candidateExts[strings.ToLower(filepath.Ext(path))] {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "searching %s", root)
	}
	return found, nil
}

// preview renders the text report for path without touching the checker's
// output.
func (c *checker) preview(path string) string {
	var buf bytes.Buffer
	r := report.NewReporter(&buf, report.FormatText)

	doc, err := c.loader.Load(path, c.input)
	if err != nil {
		_ = r.ReportFailure(path, loadFailureMessage(path, err))
		return buf.String()
	}
	_ = r.Report(c.validator.Validate(doc))
	return buf.String()
}
