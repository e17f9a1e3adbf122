// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes displaytext conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/erraggy/displaytext"
)

const serverInstructions = `displaytext MCP server: renders values as display text and converts identifiers into readable phrases.

Tools:
- render: any JSON value to display text (objects and arrays become indented JSON or YAML, scalars their plain form, null "")
- sentence_case: "fooBarBaz" -> "Foo bar baz"
- title_case: "fooBarBaz" -> "Foo Bar Baz"
- capitalize: trims a string and upper-cases its first character

Configuration via DISPLAYTEXT_* environment variables:
- DISPLAYTEXT_INDENT (default: 2): default indent width for render
- DISPLAYTEXT_FORMAT (default: json): default render format (json or yaml)
- DISPLAYTEXT_MAX_DEPTH (default: 1000): maximum nesting depth for render
- DISPLAYTEXT_MAX_TEXT_LENGTH (default: 1048576): maximum text length for case tools
- DISPLAYTEXT_LOG_LEVEL (default: warn): stderr log level`

// logger writes to stderr; stdout carries protocol frames.
var logger displaytext.Logger = newLogger(os.Stderr)

func newLogger(w *os.File) displaytext.Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(cfg.LogLevel).
		With().Timestamp().Str("component", "mcpserver").Logger()
	return displaytext.NewZerologAdapter(zl)
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	logger.Info("starting MCP server", "version", displaytext.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "displaytext", Version: displaytext.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render any JSON value as display text. null becomes an empty string, objects and arrays become indented JSON (or YAML with format=yaml), and strings, numbers, and booleans become their plain text. indent sets the indent width (0 for compact output, at most 10). Defaults are configurable via DISPLAYTEXT_INDENT and DISPLAYTEXT_FORMAT env vars.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sentence_case",
		Description: "Convert an identifier (snake_case or camelCase) into a sentence: underscores become spaces, camelCase words are split and lower-cased, and only the first word is capitalized. Example: fooBarBaz -> Foo bar baz.",
	}, handleSentenceCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "title_case",
		Description: "Convert an identifier (snake_case or camelCase) into a title: underscores become spaces, camelCase words are split, and every word is capitalized. Example: foo_bar -> Foo Bar.",
	}, handleTitleCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "capitalize",
		Description: "Upper-case the first character of a value's text. Strings are trimmed first; numbers and booleans use their plain text form.",
	}, handleCapitalize)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
