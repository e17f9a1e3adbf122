package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/displaytext"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Indent      int
	Format      string
	InputFormat string
	MaxDepth    int
	Verbose     bool
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.IntVar(&flags.Indent, "indent", displaytext.DefaultIndent, "indent width for objects and arrays (0 for compact output, at most 10)")
	fs.StringVar(&flags.Format, "format", string(displaytext.FormatJSON), "output format for objects and arrays: json or yaml")
	fs.StringVar(&flags.InputFormat, "input-format", FormatJSON, "format of the input document: json or yaml")
	fs.IntVar(&flags.MaxDepth, "max-depth", displaytext.DefaultMaxDepth, "maximum nesting depth accepted")
	fs.BoolVar(&flags.Verbose, "verbose", false, "write debug logs to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: displaytext render [flags] <file|->\n\n")
		Writef(output, "Render a JSON or YAML document as display text.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  displaytext render value.json\n")
		Writef(output, "  displaytext render --indent 0 value.json\n")
		Writef(output, "  displaytext render --input-format yaml --format yaml config.yaml\n")
		Writef(output, "  echo '{\"a\":1}' | displaytext render -\n")
		Writef(output, "\nOutput:\n")
		Writef(output, "  null renders as an empty line. Strings, numbers, and booleans render as\n")
		Writef(output, "  plain text. Objects and arrays render as indented JSON or YAML.\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	return runRender(args, os.Stdin, os.Stdout)
}

func runRender(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateInputFormat(flags.InputFormat); err != nil {
		return err
	}
	format, err := displaytext.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	logger := NewLogger(flags.Verbose)
	r, err := displaytext.New(
		displaytext.WithIndent(flags.Indent),
		displaytext.WithFormat(format),
		displaytext.WithMaxDepth(flags.MaxDepth),
		displaytext.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := ReadInput(path, stdin)
	if err != nil {
		return err
	}
	value, err := DecodeValue(data, flags.InputFormat)
	if err != nil {
		return fmt.Errorf("%s: %w", FormatInputPath(path), err)
	}
	logger.Debug("decoded input", "path", FormatInputPath(path), "kind", displaytext.KindOf(value).String())

	text, err := r.Render(value)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", FormatInputPath(path), err)
	}
	Writef(stdout, "%s\n", text)
	return nil
}
