package displaytext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/displaytext/internal/valuegraph"
	"github.com/erraggy/displaytext/texterrors"
)

// Renderer turns arbitrary values into display text.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	indent   int
	format   Format
	maxDepth int
	logger   Logger
}

var defaultRenderer = newRenderer(defaultConfig())

// New creates a Renderer configured by opts.
//
// Example:
//
//	r, err := displaytext.New(
//	    displaytext.WithIndent(4),
//	    displaytext.WithFormat(displaytext.FormatYAML),
//	)
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("displaytext: invalid options: %w", err)
		}
	}
	return newRenderer(cfg), nil
}

func newRenderer(cfg *renderConfig) *Renderer {
	return &Renderer{
		indent:   cfg.indent,
		format:   cfg.format,
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
	}
}

// Render converts v to display text using a two-space indent.
// See [Renderer.Render] for the conversion rules.
func Render(v any) (string, error) {
	return defaultRenderer.Render(v)
}

// RenderIndent converts v to display text, indenting serialized sequences and
// mappings by spaces. Widths below 1 produce compact output; widths above
// MaxIndent are clamped.
func RenderIndent(v any, spaces int) (string, error) {
	r := *defaultRenderer
	r.indent = clampIndent(spaces)
	return r.Render(v)
}

// Indent returns the indent width used for serialized values.
func (r *Renderer) Indent() int { return r.indent }

// Format returns the structured output format.
func (r *Renderer) Format() Format { return r.format }

// Render converts v to display text:
//
//   - a null value (see [KindNull]) renders as ""
//   - a sequence, or a map or struct without a String or Error method,
//     renders as indented structured text
//   - anything else renders as its natural string form: "42", "true",
//     the string itself, or the result of its String or Error method
//
// Serialization fails with a *texterrors.SerializationError when v refers to
// itself or holds a value the encoder cannot represent, and with a
// *texterrors.ResourceLimitError when v nests deeper than the configured
// maximum depth.
func (r *Renderer) Render(v any) (string, error) {
	kind, rv := classify(reflect.ValueOf(v))
	switch kind {
	case KindNull:
		return "", nil
	case KindSequence, KindMapping:
		return r.serialize(v)
	case KindOther:
		r.logger.Debug("rendering custom text representation", "type", rv.Type().String())
	}
	return naturalString(kind, rv), nil
}

func (r *Renderer) serialize(v any) (string, error) {
	if err := valuegraph.Check(v, string(r.format), r.maxDepth); err != nil {
		r.logger.Debug("value cannot be serialized", "format", string(r.format), "error", err)
		return "", err
	}

	var (
		text string
		err  error
	)
	switch r.format {
	case FormatYAML:
		text, err = encodeYAML(v)
	default:
		text, err = encodeJSON(v, r.indent)
	}
	if err != nil {
		r.logger.Debug("encoder failed", "format", string(r.format), "error", err)
		return "", &texterrors.SerializationError{
			Path:    valuegraph.RootPath,
			Format:  string(r.format),
			Message: "encoding failed",
			Cause:   err,
		}
	}
	return text, nil
}

func encodeJSON(v any, indent int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// naturalString returns the plain string form of a classified value.
func naturalString(kind Kind, rv reflect.Value) string {
	switch kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(rv.Bool())
	case KindNumber:
		return formatNumber(rv)
	case KindString:
		if rv.Kind() == reflect.Slice {
			return string(rv.Bytes())
		}
		return rv.String()
	}
	return customString(rv)
}

// customString calls the value's Error or String method, falling back to
// fmt's default formatting for values without one.
func customString(rv reflect.Value) string {
	if !rv.CanInterface() {
		return rv.Type().String()
	}
	v := rv.Interface()
	if rv.Kind() != reflect.Pointer && !hasCustomText(rv.Type()) && hasCustomText(reflect.PointerTo(rv.Type())) {
		// The method has a pointer receiver; call it on a copy.
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		v = p.Interface()
	}
	switch t := v.(type) {
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func formatNumber(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	default:
		return formatFloat(rv.Float(), 64)
	}
}

// formatFloat prints f in plain decimal when 1e-6 <= |f| < 1e21 and in
// exponent form otherwise, without padding the exponent ("1e-7", "1.5e+21").
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}
