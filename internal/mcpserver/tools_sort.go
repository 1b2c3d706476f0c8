package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"

	"github.com/erraggy/flist/sorter"
)

type sortInput struct {
	Paths    []string `json:"paths"              jsonschema:"Paths to sort"`
	Sort     string   `json:"sort,omitempty"     jsonschema:"Sort method: default\\, natural\\, collate\\, ascii (none returns the paths unchanged)"`
	Language string   `json:"language,omitempty" jsonschema:"BCP-47 language tag for the collate method (e.g. da\\, de\\, sv)"`
}

type sortOutput struct {
	Total int      `json:"total"`
	Paths []string `json:"paths,omitempty"`
}

func handleSort(_ context.Context, _ *mcp.CallToolRequest, input sortInput) (*mcp.CallToolResult, sortOutput, error) {
	method := cfg.DefaultSort
	if input.Sort != "" {
		m, ok := sorter.ParseMethod(input.Sort)
		if !ok {
			return errResult(fmt.Errorf("unknown sort method %q, valid methods: %s",
				input.Sort, strings.Join(sorter.ValidMethods(), ", "))), sortOutput{}, nil
		}
		method = m
	}

	tag := language.Und
	if input.Language != "" {
		parsed, err := language.Parse(input.Language)
		if err != nil {
			return errResult(fmt.Errorf("invalid language tag %q: %w", input.Language, err)), sortOutput{}, nil
		}
		tag = parsed
	}

	paths := make([]string, len(input.Paths))
	copy(paths, input.Paths)
	if c := sorter.ForMethodTag(method, tag); c != nil {
		sorter.SortWith(paths, c)
	}

	return nil, sortOutput{Total: len(paths), Paths: paths}, nil
}
