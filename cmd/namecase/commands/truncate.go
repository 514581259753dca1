package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/namecase/caser"
	"github.com/erraggy/namecase/truncator"
)

// TruncateFlags contains flags for the truncate command
type TruncateFlags struct {
	MaxLength int
	Format    string
	Verbose   bool
}

// SetupTruncateFlags creates and configures a FlagSet for the truncate command.
// Returns the FlagSet and a TruncateFlags struct with bound flag variables.
func SetupTruncateFlags() (*flag.FlagSet, *TruncateFlags) {
	fs := flag.NewFlagSet("truncate", flag.ContinueOnError)
	flags := &TruncateFlags{}

	fs.IntVar(&flags.MaxLength, "max", 0, "maximum length in characters (required, must be positive)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log every truncation to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: namecase truncate -max N [flags] <value...|->\n\n")
		Writef(output, "Cap values at a maximum number of characters. Values that are cut are\n")
		Writef(output, "trimmed of surrounding whitespace.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  namecase truncate -max 10 \"Gabriella della Valle\"\n")
		Writef(output, "  namecase case - < names.txt | namecase truncate -max 40 -\n")
	}

	return fs, flags
}

// HandleTruncate executes the truncate command
func HandleTruncate(args []string) error {
	return runTruncate(args, os.Stdin, os.Stdout, os.Stderr)
}

func runTruncate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupTruncateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("truncate command requires at least one value, or '-' for stdin")
	}

	t, err := truncator.New(flags.MaxLength, truncator.WithLogger(newLogger(stderr, flags.Verbose)))
	if err != nil {
		return fmt.Errorf("invalid -max: %w", err)
	}

	values, err := collectInputs(fs.Args(), stdin)
	if err != nil {
		return err
	}

	results := make([]caser.Result, len(values))
	for i, v := range values {
		results[i] = caser.Result{Input: v, Output: t.Format(v)}
	}

	if flags.Format == FormatText {
		for _, r := range results {
			Writef(stdout, "%s\n", r.Output)
		}
		return nil
	}
	return OutputStructured(stdout, results, flags.Format)
}
