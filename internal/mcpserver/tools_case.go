package mcpserver

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/displaytext"
)

type textInput struct {
	Text string `json:"text" jsonschema:"The identifier or phrase to convert"`
}

type capitalizeInput struct {
	Value any `json:"value" jsonschema:"A string, number, or boolean"`
}

type textOutput struct {
	Text string `json:"text"`
}

func (in textInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Text, validation.RuneLength(0, cfg.MaxTextLength)),
	)
}

func handleSentenceCase(_ context.Context, _ *mcp.CallToolRequest, input textInput) (*mcp.CallToolResult, textOutput, error) {
	return convertText(input, displaytext.ToSentenceCase)
}

func handleTitleCase(_ context.Context, _ *mcp.CallToolRequest, input textInput) (*mcp.CallToolResult, textOutput, error) {
	return convertText(input, displaytext.ToTitleCase)
}

func convertText(input textInput, convert func(string) string) (*mcp.CallToolResult, textOutput, error) {
	if err := input.Validate(); err != nil {
		return errResult(err), textOutput{}, nil
	}
	return nil, textOutput{Text: convert(input.Text)}, nil
}

func handleCapitalize(_ context.Context, _ *mcp.CallToolRequest, input capitalizeInput) (*mcp.CallToolResult, textOutput, error) {
	if s, ok := input.Value.(string); ok {
		if err := (textInput{Text: s}).Validate(); err != nil {
			return errResult(err), textOutput{}, nil
		}
	}
	return nil, textOutput{Text: displaytext.CapitalizeFirst(input.Value)}, nil
}
