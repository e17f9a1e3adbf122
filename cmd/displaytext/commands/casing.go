package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/displaytext"
)

// caseCommand describes a text conversion subcommand.
type caseCommand struct {
	name    string
	summary string
	example string
	convert func(string) string
}

var (
	sentenceCommand = caseCommand{
		name:    "sentence",
		summary: "Convert identifiers into sentence case (only the first word capitalized).",
		example: "displaytext sentence fooBarBaz        # Foo bar baz",
		convert: displaytext.ToSentenceCase,
	}
	titleCommand = caseCommand{
		name:    "title",
		summary: "Convert identifiers into title case (every word capitalized).",
		example: "displaytext title foo_bar            # Foo Bar",
		convert: displaytext.ToTitleCase,
	}
	capitalizeCommand = caseCommand{
		name:    "capitalize",
		summary: "Trim text and upper-case its first character.",
		example: "displaytext capitalize '  hello'     # Hello",
		convert: func(s string) string { return displaytext.CapitalizeFirst(s) },
	}
)

// HandleSentence executes the sentence command
func HandleSentence(args []string) error {
	return sentenceCommand.run(args, os.Stdin, os.Stdout)
}

// HandleTitle executes the title command
func HandleTitle(args []string) error {
	return titleCommand.run(args, os.Stdin, os.Stdout)
}

// HandleCapitalize executes the capitalize command
func HandleCapitalize(args []string) error {
	return capitalizeCommand.run(args, os.Stdin, os.Stdout)
}

func (c caseCommand) setupFlags() *flag.FlagSet {
	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: displaytext %s [text...|-]\n\n", c.name)
		Writef(output, "%s\n\n", c.summary)
		Writef(output, "Arguments are joined with single spaces and converted as one text.\n")
		Writef(output, "With no arguments or '-', each line of stdin is converted separately.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  %s\n", c.example)
		Writef(output, "  printf 'user_id\\nfirstName\\n' | displaytext %s -\n", c.name)
	}
	return fs
}

func (c caseCommand) run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := c.setupFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 || (fs.NArg() == 1 && fs.Arg(0) == StdinFilePath) {
		return c.convertLines(stdin, stdout)
	}

	Writef(stdout, "%s\n", c.convert(strings.Join(fs.Args(), " ")))
	return nil
}

func (c caseCommand) convertLines(stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		Writef(stdout, "%s\n", c.convert(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
