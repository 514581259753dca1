// Package namecase provides tools for normalizing the capitalization of personal names.
//
// namecase turns arbitrarily cased input such as "MACDONALD" or "van DER sar" into
// the conventional proper-case form ("MacDonald", "van der Sar"), honoring a fixed
// set of Western naming conventions.
//
// # Overview
//
// The library consists of these packages:
//
//   - caser: The name-case engine (Irish Mac/Mc surnames, linking particles,
//     Spanish conjunctions, apostrophe suffixes, Roman-numeral suffixes)
//   - truncator: Truncate display values to a maximum length
//   - nameerrors: Structured error types for errors.Is and errors.As
//   - logging: A minimal structured logging interface with a log/slog adapter
//
// # Installation
//
//	go get github.com/erraggy/namecase
//
// # Quick Start
//
// Convert a single name:
//
//	import "github.com/erraggy/namecase/caser"
//
//	fmt.Println(caser.ToNameCase("LOUIS XVI"))        // Louis XVI
//	fmt.Println(caser.ToNameCase("JUAN Y MARIA"))     // Juan y Maria
//	fmt.Println(caser.ToNameCase("GABRIELLA DELLA VALLE")) // Gabriella della Valle
//
// Configure the engine:
//
//	c, err := caser.New(
//		caser.WithLanguageString("nl"),
//		caser.WithNormalizeNFC(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(c.Convert("ijsbrand van dijk")) // IJsbrand van Dijk
//
// Truncate a value for storage:
//
//	import "github.com/erraggy/namecase/truncator"
//
//	t, err := truncator.New(10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(t.Format("This is a long text")) // "This is a"
//
// # Command-Line Interface
//
// The namecase command wraps the library:
//
//	namecase case "MACDONALD" "d'ARTAGNAN"
//	cat names.txt | namecase case -format yaml -
//	namecase truncate -max 20 "Gabriella della Valle"
//	namecase mcp
//
// The mcp command serves the name_case and truncate tools over the Model Context
// Protocol on stdio.
package namecase
