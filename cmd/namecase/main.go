package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/cmd/namecase/commands"
	"github.com/erraggy/namecase/internal/mcpserver"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"case", "truncate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("namecase v%s\n", namecase.Version())
		fmt.Println(namecase.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "case":
		exitOnError(commands.HandleCase(os.Args[2:]))
	case "truncate":
		exitOnError(commands.HandleTruncate(os.Args[2:]))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		exitOnError(err)
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func printUsage() {
	usage := `namecase - Personal name capitalization tools

Usage:
  namecase <command> [options]

Commands:
  case          Convert names to conventional capitalization
  truncate      Cap values at a maximum length
  mcp           Run the MCP server over stdio
  version       Show version information
  help          Show this help message

Examples:
  namecase case "GABRIELLA DE LA VALLE" macdonald
  namecase case -lang nl "ijsbrand van dijk"
  cat names.txt | namecase case -format json -
  namecase truncate -max 10 "Gabriella della Valle"

Run 'namecase <command> --help' for more information on a command.`

	fmt.Println(usage)
}
