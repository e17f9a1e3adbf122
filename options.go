package displaytext

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/erraggy/displaytext/texterrors"
)

// Format selects the structured text produced for sequences and mappings.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Defaults used by Render and by New when no option overrides them.
const (
	DefaultIndent   = 2
	DefaultMaxDepth = 1000

	// MaxIndent is the widest indent a serialized value can use.
	// Wider requests are clamped.
	MaxIndent = 10
)

// ValidFormats returns the supported output formats.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatYAML}
}

// ParseFormat converts a case-insensitive format name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if err := validateFormat(f); err != nil {
		return "", err
	}
	return f, nil
}

// Option is a function that configures a Renderer.
type Option func(*renderConfig) error

// renderConfig holds configuration for a Renderer
type renderConfig struct {
	indent   int
	format   Format
	maxDepth int
	logger   Logger
}

func defaultConfig() *renderConfig {
	return &renderConfig{
		indent:   DefaultIndent,
		format:   FormatJSON,
		maxDepth: DefaultMaxDepth,
		logger:   NopLogger{},
	}
}

// WithIndent sets the indent width of serialized sequences and mappings.
// Widths below 1 produce compact output; widths above MaxIndent are clamped.
func WithIndent(spaces int) Option {
	return func(cfg *renderConfig) error {
		cfg.indent = clampIndent(spaces)
		return nil
	}
}

// WithFormat sets the structured output format. Default: FormatJSON.
// YAML output uses the YAML encoder's own indentation.
func WithFormat(format Format) Option {
	return func(cfg *renderConfig) error {
		if err := validateFormat(format); err != nil {
			return err
		}
		cfg.format = format
		return nil
	}
}

// WithMaxDepth sets how many levels of nested sequences and mappings a value
// may have. Default: DefaultMaxDepth. Values below 1 are rejected.
func WithMaxDepth(depth int) Option {
	return func(cfg *renderConfig) error {
		if err := validation.Validate(depth, validation.Required, validation.Min(1)); err != nil {
			return &texterrors.ConfigError{
				Option:  "max_depth",
				Value:   depth,
				Message: "invalid nesting depth",
				Cause:   err,
			}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used for debug output. A nil logger disables
// logging.
func WithLogger(logger Logger) Option {
	return func(cfg *renderConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

func validateFormat(format Format) error {
	err := validation.Validate(format,
		validation.Required,
		validation.In(FormatJSON, FormatYAML),
	)
	if err != nil {
		return &texterrors.ConfigError{
			Option:  "format",
			Value:   string(format),
			Message: "valid formats: json, yaml",
			Cause:   err,
		}
	}
	return nil
}

func clampIndent(spaces int) int {
	return min(max(spaces, 0), MaxIndent)
}
