package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namecase/caser"
)

type nameCaseInput struct {
	Names    []string `json:"names"              jsonschema:"Names to convert, in order"`
	Language string   `json:"language,omitempty" jsonschema:"BCP 47 language tag for letter casing (e.g. nl or tr). Defaults to NAMECASE_LANGUAGE or language-neutral rules"`
	NFC      *bool    `json:"nfc,omitempty"      jsonschema:"Compose decomposed accents to NFC before casing. Defaults to NAMECASE_NFC"`
}

type nameCaseOutput struct {
	Count   int            `json:"count"`
	Results []caser.Result `json:"results"`
}

func handleNameCase(_ context.Context, _ *mcp.CallToolRequest, input nameCaseInput) (*mcp.CallToolResult, nameCaseOutput, error) {
	if len(input.Names) == 0 {
		return errResult(errors.New("names must contain at least one name")), nameCaseOutput{}, nil
	}
	if err := checkBatch(input.Names); err != nil {
		return errResult(err), nameCaseOutput{}, nil
	}

	lang := input.Language
	if lang == "" {
		lang = cfg.Language
	}
	nfc := cfg.NFC
	if input.NFC != nil {
		nfc = *input.NFC
	}

	c, err := caserCache.resolve(lang, nfc)
	if err != nil {
		return errResult(err), nameCaseOutput{}, nil
	}

	results := c.ConvertAll(input.Names)
	return nil, nameCaseOutput{Count: len(results), Results: results}, nil
}
