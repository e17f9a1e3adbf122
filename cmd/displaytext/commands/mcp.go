package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/displaytext/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving MCP over stdio until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: displaytext mcp\n\n")
		Writef(output, "Start an MCP server over stdio exposing the render, sentence_case,\n")
		Writef(output, "title_case, and capitalize tools.\n")
		Writef(output, "\nConfiguration via environment variables:\n")
		Writef(output, "  DISPLAYTEXT_INDENT, DISPLAYTEXT_FORMAT, DISPLAYTEXT_MAX_DEPTH,\n")
		Writef(output, "  DISPLAYTEXT_MAX_TEXT_LENGTH, DISPLAYTEXT_LOG_LEVEL\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
