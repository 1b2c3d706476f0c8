package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/flist/sorter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ListLimit is the default page size for list results.
	ListLimit int

	// MaxLimit caps the page size a client may request.
	MaxLimit int

	// MaxResults is the default ceiling on entries collected per list
	// call, before pagination.
	MaxResults int

	// DefaultSort is the sort method used when a request names none.
	DefaultSort sorter.Method
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FLIST_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ListLimit:   envInt("FLIST_LIST_LIMIT", 100),
		MaxLimit:    envInt("FLIST_MAX_LIMIT", 1000),
		MaxResults:  envInt("FLIST_MAX_RESULTS", 100000),
		DefaultSort: envSort("FLIST_DEFAULT_SORT", sorter.MethodDefault),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envSort(key string, fallback sorter.Method) sorter.Method {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	m, ok := sorter.ParseMethod(v)
	if !ok {
		slog.Warn("invalid sort method env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return m
}
