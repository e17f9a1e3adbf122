package main

import (
	"fmt"
	"os"

	"github.com/erraggy/displaytext"
	"github.com/erraggy/displaytext/cmd/displaytext/commands"
)

// commandNames lists every subcommand, used for typo suggestions.
var commandNames = []string{"render", "sentence", "title", "capitalize", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("displaytext v%s\n", displaytext.Version())
		fmt.Printf("commit: %s\n", displaytext.Commit())
		fmt.Printf("built: %s\n", displaytext.BuildTime())
		fmt.Printf("go: %s\n", displaytext.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "render":
		err = commands.HandleRender(args)
	case "sentence":
		err = commands.HandleSentence(args)
	case "title":
		err = commands.HandleTitle(args)
	case "capitalize":
		err = commands.HandleCapitalize(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`displaytext - Display text for values and identifiers

Usage:
  displaytext <command> [options]

Commands:
  render      Render a JSON or YAML document as display text
  sentence    Convert identifiers into sentence case
  title       Convert identifiers into title case
  capitalize  Trim text and upper-case its first character
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  displaytext render value.json
  echo '[1,2]' | displaytext render --indent 0 -
  displaytext sentence fooBarBaz
  displaytext title user_id
  displaytext capitalize '  hello world'

Run 'displaytext <command> --help' for more information on a command.`)
}
