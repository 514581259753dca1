// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes namecase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namecase"
	"github.com/erraggy/namecase/nameerrors"
)

const serverInstructions = `namecase MCP server: converts personal names to conventional capitalization and caps text length.

Configuration: defaults are configurable via NAMECASE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- NAMECASE_MAX_BATCH (default: 1000) - maximum number of values per call
- NAMECASE_MAX_NAME_LENGTH (default: 1024) - maximum length of a single value, in characters
- NAMECASE_LANGUAGE (default: none) - BCP 47 tag used when a call does not set language
- NAMECASE_NFC (default: false) - compose decomposed accents before casing when a call does not set nfc
- NAMECASE_CACHE_MAX_SIZE (default: 16) - number of language/normalization configurations kept ready`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namecase", Version: namecase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "name_case",
		Description: "Convert personal names to their conventional capitalization. Handles Irish Mac/Mc prefixes (MacDonald, McNeil), lowercase particles (van der Sar, Gabriella della Valle), apostrophes (D'Artagnan, O'Brien's), regnal roman numerals (Louis XVI) and Spanish conjunctions (Juan y Maria). Pass a BCP 47 language (e.g. nl for IJsbrand, tr for dotted i) to change letter casing rules, and nfc=true to compose decomposed accents first. Results preserve input order.",
	}, handleNameCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "truncate",
		Description: "Cap each value at max_length characters. Values that fit are returned unchanged; longer values are cut and trimmed of surrounding whitespace. Length counts characters, not bytes.",
	}, handleTruncate)
}

// checkBatch enforces the configured batch size and per-value length limits.
func checkBatch(values []string) error {
	if len(values) > cfg.MaxBatch {
		return &nameerrors.ResourceLimitError{
			ResourceType: "batch size",
			Limit:        int64(cfg.MaxBatch),
			Actual:       int64(len(values)),
		}
	}
	for i, v := range values {
		if n := utf8.RuneCountInString(v); n > cfg.MaxNameLength {
			return &nameerrors.ResourceLimitError{
				ResourceType: "value length",
				Limit:        int64(cfg.MaxNameLength),
				Actual:       int64(n),
				Message:      fmt.Sprintf("value at index %d is too long", i),
			}
		}
	}
	return nil
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
