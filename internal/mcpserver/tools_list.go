package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"

	"github.com/erraggy/flist/lister"
	"github.com/erraggy/flist/sorter"
	"github.com/erraggy/flist/walker"
)

type listInput struct {
	Dir               string   `json:"dir"                          jsonschema:"Directory to list"`
	Types             []string `json:"types,omitempty"              jsonschema:"Restrict to entry types: regular\\, directory\\, symlink\\, fifo\\, socket\\, char-device\\, block-device\\, unknown. Empty = all types."`
	Pattern           string   `json:"pattern,omitempty"            jsonschema:"Keep only entries whose base name matches this regular expression (unanchored\\, case-insensitive by default)"`
	CaseSensitive     bool     `json:"case_sensitive,omitempty"     jsonschema:"Match the pattern case-sensitively"`
	BasicDialect      bool     `json:"basic_dialect,omitempty"      jsonschema:"Interpret the pattern as POSIX syntax with leftmost-longest matching"`
	MaxDepth          *int     `json:"max_depth,omitempty"          jsonschema:"Directory recursion limit: 0 = no recursion\\, n descends n levels. Omit for unlimited."`
	FollowSymlinks    bool     `json:"follow_symlinks,omitempty"    jsonschema:"Classify symlinks by their target and descend into symlinked directories (cycles are detected)"`
	StayOnDevice      bool     `json:"stay_on_device,omitempty"     jsonschema:"Never descend into mount points on other filesystems"`
	TrailingSeparator bool     `json:"trailing_separator,omitempty" jsonschema:"Append / to directory entries"`
	Sort              string   `json:"sort,omitempty"               jsonschema:"Sort method: none\\, default\\, natural\\, collate\\, ascii. Default is configurable via FLIST_DEFAULT_SORT."`
	Language          string   `json:"language,omitempty"           jsonschema:"BCP-47 language tag for the collate sort method (e.g. da\\, de\\, sv)"`
	MaxResults        int      `json:"max_results,omitempty"        jsonschema:"Ceiling on collected entries before pagination (default configurable via FLIST_MAX_RESULTS)"`
	Limit             int      `json:"limit,omitempty"              jsonschema:"Maximum number of paths to return (default 100)"`
	Offset            int      `json:"offset,omitempty"             jsonschema:"Skip the first N paths (for pagination)"`
}

type listOutput struct {
	Total     int      `json:"total"`
	Returned  int      `json:"returned"`
	Truncated bool     `json:"truncated"`
	Paths     []string `json:"paths,omitempty"`
}

func handleList(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	opts, err := listOptions(input)
	if err != nil {
		return errResult(err), listOutput{}, nil
	}

	list, err := lister.ListWithOptions(opts...)
	if err != nil && !lister.Truncated(err) {
		return errResult(err), listOutput{}, nil
	}

	returned := paginate(list.Paths, input.Offset, input.Limit)
	return nil, listOutput{
		Total:     list.Len(),
		Returned:  len(returned),
		Truncated: list.Truncated,
		Paths:     returned,
	}, nil
}

// listOptions translates a tool request into lister options, resolving
// server-configured defaults.
func listOptions(input listInput) ([]lister.Option, error) {
	opts := []lister.Option{
		lister.WithStartDir(input.Dir),
		lister.WithSortMethod(cfg.DefaultSort),
	}

	if len(input.Types) > 0 {
		types := make([]walker.EntryType, 0, len(input.Types))
		for _, name := range input.Types {
			t, ok := walker.ParseEntryType(name)
			if !ok {
				return nil, fmt.Errorf("unknown entry type %q", name)
			}
			types = append(types, t)
		}
		opts = append(opts, lister.WithTypes(types...))
	}
	if input.Pattern != "" {
		opts = append(opts, lister.WithPattern(input.Pattern))
		if input.CaseSensitive {
			opts = append(opts, lister.WithCaseSensitivePattern())
		}
		if input.BasicDialect {
			opts = append(opts, lister.WithPatternDialect(lister.DialectBasic))
		}
	}
	if input.MaxDepth != nil {
		opts = append(opts, lister.WithDepth(*input.MaxDepth))
	}
	if input.FollowSymlinks {
		opts = append(opts, lister.WithFollowSymlinks())
	}
	if input.StayOnDevice {
		opts = append(opts, lister.WithStayOnDevice())
	}
	if input.TrailingSeparator {
		opts = append(opts, lister.WithTrailingSeparator())
	}
	if input.Sort != "" {
		m, ok := sorter.ParseMethod(input.Sort)
		if !ok {
			return nil, fmt.Errorf("unknown sort method %q, valid methods: %s",
				input.Sort, strings.Join(sorter.ValidMethods(), ", "))
		}
		opts = append(opts, lister.WithSortMethod(m))
	}
	if input.Language != "" {
		tag, err := language.Parse(input.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language tag %q: %w", input.Language, err)
		}
		opts = append(opts, lister.WithCollationLanguage(tag))
	}

	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = cfg.MaxResults
	}
	opts = append(opts, lister.WithMaxSize(maxResults))

	return opts, nil
}
