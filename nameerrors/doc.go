// Package nameerrors provides structured error types for the namecase library.
//
// Import path: github.com/erraggy/namecase/nameerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
// The name-case engine itself never fails; these errors come from configuration
// (invalid options), resource limits enforced by the MCP server, and input
// handling in the command-line tool.
//
// # Error Types
//
//   - [ConfigError]: Invalid configuration or option values
//   - [ResourceLimitError]: Input exceeding a configured limit (batch size, name length)
//   - [InputError]: Failure to read or decode caller-supplied input
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrInput]: Matches any [InputError]
//
// # Usage Examples
//
//	t, err := truncator.New(0)
//	if errors.Is(err, nameerrors.ErrConfig) {
//	    // Handle invalid max length
//	}
//
//	var cfgErr *nameerrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("bad option %s: %v\n", cfgErr.Option, cfgErr.Value)
//	}
package nameerrors
