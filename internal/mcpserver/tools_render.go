package mcpserver

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/displaytext"
)

type renderInput struct {
	Value  any    `json:"value"            jsonschema:"The value to render. Any JSON value is accepted"`
	Indent *int   `json:"indent,omitempty" jsonschema:"Indent width for objects and arrays (0-10, 0 for compact output)"`
	Format string `json:"format,omitempty" jsonschema:"Output format for objects and arrays: json or yaml"`
}

type renderOutput struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

func (in renderInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Indent, validation.Min(0), validation.Max(displaytext.MaxIndent)),
	)
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	if err := input.Validate(); err != nil {
		return errResult(err), renderOutput{}, nil
	}

	// Apply config defaults when input fields are omitted.
	opts := []displaytext.Option{
		displaytext.WithIndent(cfg.Indent),
		displaytext.WithFormat(cfg.Format),
		displaytext.WithMaxDepth(cfg.MaxDepth),
		displaytext.WithLogger(logger.With("tool", "render")),
	}
	if input.Indent != nil {
		opts = append(opts, displaytext.WithIndent(*input.Indent))
	}
	if input.Format != "" {
		format, err := displaytext.ParseFormat(input.Format)
		if err != nil {
			return errResult(err), renderOutput{}, nil
		}
		opts = append(opts, displaytext.WithFormat(format))
	}

	r, err := displaytext.New(opts...)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	text, err := r.Render(input.Value)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	return nil, renderOutput{
		Text: text,
		Kind: displaytext.KindOf(input.Value).String(),
	}, nil
}
