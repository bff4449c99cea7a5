// Package loader reads environment documents from disk and decodes them into
// the document model.
//
// Failures here are structural: the file is missing, unreadable or not
// well-formed. They are reported as errors and never reach the validator.
package loader

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/llcheck/internal/document"
	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/pkg/fileutil"
)

// Format identifies the syntax of a document.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatYAML is YAML. JSON documents are accepted too.
	FormatYAML Format = "yaml"
	// FormatTOML is TOML.
	FormatTOML Format = "toml"
)

// Label returns the name used in parse error messages.
func (f Format) Label() string {
	switch f {
	case FormatTOML:
		return "TOML"
	default:
		return "YAML"
	}
}

// ParseFormat returns the Format named by s. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatYAML, "yml", "json":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", errors.Newf("unknown input format %q (valid: auto, yaml, toml)", s)
	}
}

// DetectFormat picks a format from the extension of path.
// Anything that is not .toml is treated as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// NotExistError reports a missing document file.
type NotExistError struct {
	Path string
}

func (e *NotExistError) Error() string {
	return "file " + e.Path + " does not exist"
}

// Is makes errors.Is(err, errors.ErrNotFound) match.
func (e *NotExistError) Is(target error) bool {
	return target == errors.ErrNotFound
}

// ParseError reports a document that could not be decoded.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return "parsing " + e.Format.Label() + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loader reads and decodes documents.
type Loader struct {
	logger *slog.Logger
}

// NewWithLogger creates a Loader with the given logger.
func NewWithLogger(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the document at path and decodes it.
// With FormatAuto the format is detected from the extension.
//
// A missing file yields a *NotExistError, a decode failure a *ParseError.
func (l *Loader) Load(path string, format Format) (document.Value, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document.Null(), &NotExistError{Path: path}
		}
		return document.Null(), errors.Wrap(err, "reading config file")
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return document.Null(), errors.Wrap(err, "reading config file")
	}
	l.logger.Debug("read document", "path", path, "bytes", len(data), "format", string(format))

	doc, err := l.Parse(data, format)
	if err != nil {
		return document.Null(), err
	}
	l.logger.Debug("decoded document", "path", path, "kind", doc.Kind().String(), "entries", doc.Len())
	return doc, nil
}

// Parse decodes data without touching the filesystem.
func (l *Loader) Parse(data []byte, format Format) (document.Value, error) {
	switch format {
	case FormatTOML:
		return parseTOML(data)
	case FormatYAML, FormatAuto, "":
		return parseYAML(data)
	default:
		return document.Null(), errors.Newf("unsupported format %q", format)
	}
}

// parseYAML decodes a single YAML document. An empty stream is null.
// Streams holding more than one document are rejected.
func parseYAML(data []byte) (document.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return document.Null(), nil
		}
		return document.Null(), &ParseError{Format: FormatYAML, Err: err}
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return document.Null(), &ParseError{
			Format: FormatYAML,
			Err:    errors.New("expected a single document in the stream but found another document"),
		}
	case !errors.Is(err, io.EOF):
		return document.Null(), &ParseError{Format: FormatYAML, Err: err}
	}

	return document.FromYAMLNode(&root), nil
}

func parseTOML(data []byte) (document.Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return document.Null(), &ParseError{Format: FormatTOML, Err: err}
	}
	return document.FromAny(raw), nil
}
