package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "llcheck.log")

	w := NewFileWriter(path)
	logger := slog.New(slog.NewJSONHandler(w, nil))
	logger.Info("validated", "path", "env.yml")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"validated"`)

	// Appends across writers.
	w = NewFileWriter(path)
	slog.New(slog.NewJSONHandler(w, nil)).Info("validated again")
	require.NoError(t, w.Close())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"validated"`)
	assert.Contains(t, string(data), `"msg":"validated again"`)
}
