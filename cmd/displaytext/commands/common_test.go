package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/displaytext"
)

func TestValidateInputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		data, err := ReadInput(StdinFilePath, strings.NewReader(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "value.json")
		require.NoError(t, os.WriteFile(path, []byte("[1,2]"), 0o600))

		data, err := ReadInput(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(t.TempDir(), "missing.json"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading file")
	})
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		want    any
		wantErr bool
	}{
		{name: "json object", data: `{"a":1}`, format: FormatJSON, want: map[string]any{"a": float64(1)}},
		{name: "json null", data: `null`, format: FormatJSON, want: nil},
		{name: "empty json", data: ``, format: FormatJSON, want: nil},
		{name: "yaml mapping", data: "a: x\n", format: FormatYAML, want: map[string]any{"a": "x"}},
		{name: "yaml sequence", data: "- x\n- y\n", format: FormatYAML, want: []any{"x", "y"}},
		{name: "yaml numeric keys", data: "200: ok\n404: missing\n", format: FormatYAML, want: map[string]any{"200": "ok", "404": "missing"}},
		{name: "yaml nested non-string keys", data: "a:\n  2: b\n  true: c\n", format: FormatYAML, want: map[string]any{"a": map[string]any{"2": "b", "true": "c"}}},
		{name: "yaml keys inside sequence", data: "- 1: x\n", format: FormatYAML, want: []any{map[string]any{"1": "x"}}},
		{name: "malformed json", data: `{"a":`, format: FormatJSON, wantErr: true},
		{name: "unknown format", data: `1`, format: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeValue([]byte(tt.data), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "value.json", FormatInputPath("value.json"))
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, displaytext.NopLogger{}, NewLogger(false))
	assert.IsType(t, &displaytext.ZapAdapter{}, NewLogger(true))
}
