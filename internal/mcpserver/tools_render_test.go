package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRenderTool_Object(t *testing.T) {
	input := renderInput{
		Value: map[string]any{"name": "Ada", "age": float64(36)},
	}
	result, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "{\n  \"age\": 36,\n  \"name\": \"Ada\"\n}", output.Text)
	assert.Equal(t, "mapping", output.Kind)
}

func TestRenderTool_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantText string
		wantKind string
	}{
		{name: "null", value: nil, wantText: "", wantKind: "null"},
		{name: "whole number", value: float64(42), wantText: "42", wantKind: "number"},
		{name: "boolean", value: true, wantText: "true", wantKind: "bool"},
		{name: "string", value: "hello", wantText: "hello", wantKind: "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, renderInput{Value: tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, output.Text)
			assert.Equal(t, tt.wantKind, output.Kind)
		})
	}
}

func TestRenderTool_CompactIndent(t *testing.T) {
	input := renderInput{Value: []any{float64(1), "two"}, Indent: intPtr(0)}
	_, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, `[1,"two"]`, output.Text)
	assert.Equal(t, "sequence", output.Kind)
}

func TestRenderTool_YAML(t *testing.T) {
	input := renderInput{Value: map[string]any{"a": float64(1)}, Format: "YAML"}
	_, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "a: 1", output.Text)
}

func TestRenderTool_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input renderInput
	}{
		{name: "indent too wide", input: renderInput{Value: 1, Indent: intPtr(11)}},
		{name: "negative indent", input: renderInput{Value: 1, Indent: intPtr(-2)}},
		{name: "unknown format", input: renderInput{Value: 1, Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleRender(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestRenderTool_DepthLimit(t *testing.T) {
	saved := cfg.MaxDepth
	cfg.MaxDepth = 1
	t.Cleanup(func() { cfg.MaxDepth = saved })

	input := renderInput{Value: map[string]any{"a": map[string]any{"b": float64(1)}}}
	result, _, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	text := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "nesting_depth")
}
