// Package commands provides CLI command handlers for namecase.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/namecase/logging"
	"github.com/erraggy/namecase/nameerrors"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinPath is the special argument used to indicate reading from stdin.
const StdinPath = "-"

// maxLineSize bounds a single stdin line.
const maxLineSize = 1024 * 1024

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and a no-op logger otherwise.
func newLogger(w io.Writer, verbose bool) logging.Logger {
	if !verbose {
		return logging.NopLogger{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogAdapter(slog.New(handler))
}

// collectInputs returns the positional arguments, or the lines of stdin when
// the only argument is StdinPath.
func collectInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 1 && args[0] == StdinPath {
		return readLines(stdin, "stdin")
	}
	return args, nil
}

// readLines reads r one line at a time. Line endings, including a trailing
// carriage return, are stripped; blank lines are kept so output lines up with
// input.
func readLines(r io.Reader, source string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, &nameerrors.InputError{
			Source:  source,
			Line:    len(lines) + 1,
			Message: "reading line",
			Cause:   err,
		}
	}
	return lines, nil
}
