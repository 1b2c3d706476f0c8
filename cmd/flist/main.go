package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/erraggy/flist"
	"github.com/erraggy/flist/cmd/flist/commands"
	"github.com/erraggy/flist/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("flist v%s\n", flist.Version())
	case "help", "-h", "--help":
		printUsage()
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sort":
		if err := commands.HandleSort(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command name suggestCommand may propose.
var knownCommands = []string{"list", "merge", "sort", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
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
	fmt.Println(`flist - ordered filesystem listings

Usage:
  flist <command> [options]

Commands:
  list        List a directory tree as ordered paths
  merge       Merge path-list files into one ordered list
  sort        Sort a path-list file
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  flist list /srv/data
  flist list -type regular -pattern '\.log$' -sort natural /var/log
  flist list -depth 1 -trailing-slash .
  flist merge -o combined.txt part1.txt part2.txt
  flist sort -sort natural paths.txt

Run 'flist <command> --help' for more information on a command.`)
}
