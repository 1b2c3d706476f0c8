// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes flist capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/flist"
)

const serverInstructions = `flist MCP server — builds ordered filesystem listings with filtering, sorting, and merging.

Configuration: All defaults are configurable via FLIST_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- FLIST_LIST_LIMIT (default: 100) — default page size for list results
- FLIST_MAX_LIMIT (default: 1000) — largest page size a request may ask for
- FLIST_MAX_RESULTS (default: 100000) — ceiling on entries collected per list call
- FLIST_DEFAULT_SORT (default: default) — sort method when a request names none (none, default, natural, collate, ascii)

Listings are built per call; nothing is cached between calls. When a listing hits the collection ceiling the response carries truncated=true and holds exactly the ceiling's worth of entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "flist", Version: flist.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List a directory tree as ordered paths. Filter by entry type, base-name regex pattern, and depth; optionally follow symlinks (cycles are detected), stay on one filesystem, and append a trailing / to directories. Sort methods: none (enumeration order), default, natural (numeric-aware), collate (locale-aware, set language), ascii. Use offset/limit to paginate. Defaults are configurable via FLIST_* env vars.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two path lists into one. With sort methods other than none the combined list is re-sorted in default order; with none the source paths are appended after the destination paths unchanged.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sort",
		Description: "Sort a list of paths. Paths order by directory part first, then base name; trailing-/ entries group before their children. Methods: default, natural (numeric-aware), collate (locale-aware, set language), ascii (byte order).",
	}, handleSort)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
