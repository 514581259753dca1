package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namecase/caser"
	"github.com/erraggy/namecase/truncator"
)

type truncateInput struct {
	Values    []string `json:"values"     jsonschema:"Values to cap, in order"`
	MaxLength int      `json:"max_length" jsonschema:"Maximum length in characters; must be positive"`
}

type truncateOutput struct {
	Count     int            `json:"count"`
	Truncated int            `json:"truncated"`
	Results   []caser.Result `json:"results"`
}

func handleTruncate(_ context.Context, _ *mcp.CallToolRequest, input truncateInput) (*mcp.CallToolResult, truncateOutput, error) {
	if len(input.Values) == 0 {
		return errResult(errors.New("values must contain at least one value")), truncateOutput{}, nil
	}
	if err := checkBatch(input.Values); err != nil {
		return errResult(err), truncateOutput{}, nil
	}

	t, err := truncator.New(input.MaxLength)
	if err != nil {
		return errResult(err), truncateOutput{}, nil
	}

	output := truncateOutput{Results: make([]caser.Result, len(input.Values))}
	for i, v := range input.Values {
		out := t.Format(v)
		if out != v {
			output.Truncated++
		}
		output.Results[i] = caser.Result{Input: v, Output: out}
	}
	output.Count = len(output.Results)
	return nil, output, nil
}
