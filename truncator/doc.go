// Package truncator caps text at a maximum number of characters.
//
// A [Truncator] keeps at most MaxLength runes of its input. Text that fits is
// returned untouched; text that does not is cut and then trimmed of
// surrounding whitespace, so a cut never leaves a dangling space:
//
//	t, err := truncator.New(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.Format("Gabriella della Valle") // "Gabriella"
//	t.Format("Jean")                  // "Jean"
//
// Length is counted in runes, never bytes, so multi-byte letters are not split.
// Pass [WithLogger] to receive a debug record for every value that was cut.
package truncator
