// Package commands provides CLI command handlers for displaytext.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/displaytext"
)

// Input format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateInputFormat validates an input format and returns an error if invalid.
func ValidateInputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid input-format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ReadInput reads the whole file at path, or stdin when path is StdinFilePath.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// DecodeValue decodes a single JSON or YAML document into a generic value.
// Empty input decodes to nil.
func DecodeValue(data []byte, format string) (any, error) {
	var v any
	switch format {
	case FormatJSON:
		if len(data) == 0 {
			return nil, nil
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		v = stringifyKeys(v)
	default:
		return nil, fmt.Errorf("invalid input format: %s", format)
	}
	return v, nil
}

// stringifyKeys converts YAML mappings with non-string keys ("200: ok") into
// string-keyed maps, recursively, so they can be encoded as JSON objects.
func stringifyKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringifyKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringifyKeys(val)
		}
		return t
	}
	return v
}

// FormatInputPath returns a display-friendly path for the input.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// NewLogger returns a development zap logger on stderr when verbose is set,
// and a logger that discards everything otherwise.
func NewLogger(verbose bool) displaytext.Logger {
	if !verbose {
		return displaytext.NopLogger{}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		Writef(os.Stderr, "Warning: verbose logging unavailable: %v\n", err)
		return displaytext.NopLogger{}
	}
	return displaytext.NewZapAdapter(l.Sugar())
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
