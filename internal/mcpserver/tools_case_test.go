package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceCaseTool(t *testing.T) {
	result, output, err := handleSentenceCase(context.Background(), &mcp.CallToolRequest{}, textInput{Text: "fooBarBaz"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "Foo bar baz", output.Text)
}

func TestTitleCaseTool(t *testing.T) {
	result, output, err := handleTitleCase(context.Background(), &mcp.CallToolRequest{}, textInput{Text: "foo_bar"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "Foo Bar", output.Text)
}

func TestCaseTools_EmptyText(t *testing.T) {
	_, output, err := handleTitleCase(context.Background(), &mcp.CallToolRequest{}, textInput{})
	require.NoError(t, err)
	assert.Equal(t, "", output.Text)
}

func TestCaseTools_TextTooLong(t *testing.T) {
	saved := cfg.MaxTextLength
	cfg.MaxTextLength = 4
	t.Cleanup(func() { cfg.MaxTextLength = saved })

	long := strings.Repeat("a", 5)

	result, _, err := handleSentenceCase(context.Background(), &mcp.CallToolRequest{}, textInput{Text: long})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	result, _, err = handleCapitalize(context.Background(), &mcp.CallToolRequest{}, capitalizeInput{Value: long})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestCapitalizeTool(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "trimmed string", value: "  hello", want: "Hello"},
		{name: "number", value: float64(123), want: "123"},
		{name: "boolean", value: false, want: "False"},
		{name: "empty", value: "", want: ""},
		{name: "null", value: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleCapitalize(context.Background(), &mcp.CallToolRequest{}, capitalizeInput{Value: tt.value})
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Text)
		})
	}
}
