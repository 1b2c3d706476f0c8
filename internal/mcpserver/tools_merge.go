package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/flist/lister"
	"github.com/erraggy/flist/sorter"
)

type mergeInput struct {
	Dst  []string `json:"dst"            jsonschema:"Destination path list"`
	Src  []string `json:"src"            jsonschema:"Source path list; its paths are moved into the destination"`
	Sort string   `json:"sort,omitempty" jsonschema:"Sort method for the merged list: none appends src after dst unchanged; any other method re-sorts in default order"`
}

type mergeOutput struct {
	Moved int      `json:"moved"`
	Total int      `json:"total"`
	Paths []string `json:"paths,omitempty"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	method := sorter.MethodDefault
	if input.Sort != "" {
		m, ok := sorter.ParseMethod(input.Sort)
		if !ok {
			return errResult(fmt.Errorf("unknown sort method %q, valid methods: %s",
				input.Sort, strings.Join(sorter.ValidMethods(), ", "))), mergeOutput{}, nil
		}
		method = m
	}

	dst := &lister.List{Paths: input.Dst}
	src := &lister.List{Paths: input.Src}
	moved, err := lister.Merge(dst, src, method)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	return nil, mergeOutput{
		Moved: moved,
		Total: dst.Len(),
		Paths: dst.Paths,
	}, nil
}
