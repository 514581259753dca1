// Package naming provides letter-run tokenizing and word capitalization.
package naming

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MapLetterRuns calls fn for every maximal run of letters in s and returns s
// with each run replaced by fn's result. Non-letter runs are copied verbatim.
// A combining mark belongs to the run of the letter before it; a mark with no
// preceding letter is a separator.
// Example: MapLetterRuns("o'brien-smith", strings.ToUpper) -> "O'BRIEN-SMITH"
func MapLetterRuns(s string, fn func(run string) string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	start := 0
	inLetters := false
	for i, r := range s {
		letter := unicode.IsLetter(r) || (inLetters && unicode.Is(unicode.M, r))
		if i > 0 && letter != inLetters {
			writeRun(&result, s[start:i], inLetters, fn)
			start = i
		}
		inLetters = letter
	}
	writeRun(&result, s[start:], inLetters, fn)

	return result.String()
}

func writeRun(b *strings.Builder, run string, letters bool, fn func(string) string) {
	if letters {
		b.WriteString(fn(run))
		return
	}
	b.WriteString(run)
}

// WordCaser capitalizes single words according to a language's casing rules.
// A WordCaser is safe for concurrent use; the underlying cases.Caser values are
// stateful and are pooled so each call borrows its own.
type WordCaser struct {
	tag   language.Tag
	title sync.Pool
	upper sync.Pool
}

// NewWordCaser returns a WordCaser for the given language.
// Use language.Und for language-neutral casing.
func NewWordCaser(tag language.Tag) *WordCaser {
	w := &WordCaser{tag: tag}
	w.title.New = func() any {
		c := cases.Title(tag)
		return &c
	}
	w.upper.New = func() any {
		c := cases.Upper(tag)
		return &c
	}
	return w
}

// Language returns the language tag whose casing rules are applied.
func (w *WordCaser) Language() language.Tag {
	return w.tag
}

// Capitalize uppercases the first letter of word and lowercases the rest.
// A single-rune word is simply uppercased.
// Example: "dONALD" -> "Donald"
// Example: "é" -> "É"
func (w *WordCaser) Capitalize(word string) string {
	if word == "" {
		return ""
	}
	pool := &w.title
	if utf8.RuneCountInString(word) == 1 {
		pool = &w.upper
	}
	c := pool.Get().(*cases.Caser)
	defer pool.Put(c)
	return c.String(word)
}

// CapitalizeRuns capitalizes every letter run in s, leaving separators intact.
// Example: "marie-josée LEBLANC" -> "Marie-Josée Leblanc"
func (w *WordCaser) CapitalizeRuns(s string) string {
	return MapLetterRuns(s, w.Capitalize)
}
