package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/namecase/caser"
)

// CaseFlags contains flags for the case command
type CaseFlags struct {
	Language string
	NFC      bool
	Format   string
	Verbose  bool
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
// Returns the FlagSet and a CaseFlags struct with bound flag variables.
func SetupCaseFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &CaseFlags{}

	fs.StringVar(&flags.Language, "lang", "", "BCP 47 language tag for letter casing (e.g. nl, tr)")
	fs.BoolVar(&flags.NFC, "nfc", false, "compose decomposed accents (NFC) before casing")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log every rule that changed a name to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: namecase case [flags] <name...|->\n\n")
		Writef(output, "Convert personal names to their conventional capitalization.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  namecase case \"GABRIELLA DE LA VALLE\" MACDONALD\n")
		Writef(output, "  namecase case -lang nl \"ijsbrand van dijk\"\n")
		Writef(output, "  namecase case -format json \"louis xvi\"\n")
		Writef(output, "  cat names.txt | namecase case -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the only argument to read one name per line from stdin\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(args []string) error {
	return runCase(args, os.Stdin, os.Stdout, os.Stderr)
}

func runCase(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupCaseFlags()
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
		return fmt.Errorf("case command requires at least one name, or '-' for stdin")
	}

	names, err := collectInputs(fs.Args(), stdin)
	if err != nil {
		return err
	}

	c, err := caser.New(
		caser.WithLanguageString(flags.Language),
		caser.WithNormalizeNFC(flags.NFC),
		caser.WithLogger(newLogger(stderr, flags.Verbose)),
	)
	if err != nil {
		return fmt.Errorf("creating caser: %w", err)
	}

	results := c.ConvertAll(names)
	if results == nil {
		results = []caser.Result{}
	}

	if flags.Format == FormatText {
		for _, r := range results {
			Writef(stdout, "%s\n", r.Output)
		}
		return nil
	}
	return OutputStructured(stdout, results, flags.Format)
}
