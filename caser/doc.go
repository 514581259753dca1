// Package caser converts personal names to their conventional capitalization.
//
// # Overview
//
// [ToNameCase] takes an arbitrarily cased name and returns its proper-case form:
//
//	caser.ToNameCase("jEan")                  // "Jean"
//	caser.ToNameCase("Macdonald")             // "MacDonald"
//	caser.ToNameCase("GABRIELLA DE LA VALLE") // "Gabriella de la Valle"
//	caser.ToNameCase("D'ARTAGNAN")            // "D'Artagnan"
//	caser.ToNameCase("JUAN Y MARIA")          // "Juan y Maria"
//
// The function is deterministic, idempotent, and never fails. The empty string
// is returned unchanged; use [ToNameCasePtr] when absence must be preserved.
//
// # Pipeline
//
// A name passes through six stages, each consuming the previous one's output:
//
//  1. Initial caps: every maximal run of letters gets its first letter
//     uppercased and the rest lowercased. Whitespace, punctuation, and digits
//     pass through verbatim.
//  2. Apostrophe suffix: a single letter ending a word right after an
//     apostrophe is lowercased ("O'Brien's").
//  3. Irish prefixes: when the string contains a splittable Mac or any Mc, the
//     letter after the prefix is capitalized ("MacDonald", "McNeil"), then a
//     fixed table restores surnames that do not split ("Macias", "Machado",
//     "Macquarie").
//  4. Particles: al, bin/binti/binte, ap, ben, della/delle, da/de/di/do/du,
//     das/dos, del/der, el, la, le/lo, van and von are lowercased in any
//     position.
//  5. Roman numerals: whole words in the grammar (X|XX|XXX|XL|L|LX|LXX|LXXX)?
//     followed by (I|II|III|IV|V|VI|VII|VIII|IX)? are uppercased. C, D and M
//     are not recognized.
//  6. Spanish conjunctions: the standalone words y, e and i are lowercased.
//
// Stages 3 to 6 match against the capitalized form produced by stage 1, so
// arbitrary mixed-case input is normalized before any rule looks at it.
//
// # Configuration
//
// [New] builds a [Caser] with functional options:
//
//	c, err := caser.New(
//	    caser.WithLanguage(language.Dutch), // "ijsbrand" -> "IJsbrand"
//	    caser.WithNormalizeNFC(true),       // compose decomposed accents first
//	    caser.WithLogger(logging.NewSlogAdapter(slog.Default())),
//	)
//
// [WithLanguageString] accepts the tag as text ("nl", "tr-TR") and reports an
// invalid tag as a *nameerrors.ConfigError. With a logger configured, every
// stage that changed the name is logged at debug level.
//
// # Concurrency
//
// Rule tables are compiled once at package initialization and never mutated.
// A Caser holds no mutable state beyond internal pools, so a single Caser, and
// ToNameCase itself, may be used from any number of goroutines.
package caser
