package caser

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"

	"github.com/erraggy/namecase/internal/naming"
)

// Patterns use regexp2 rather than regexp: the particle rules need lookahead,
// and \w and \b must treat non-ASCII letters as word characters.
const (
	romanTens = `(?:[Xx]{1,3}|[Xx][Ll]|[Ll][Xx]{0,3})?`
	romanOnes = `(?:[Ii]{1,3}|[Ii][VvXx]|[Vv][Ii]{0,3})?`
)

var (
	apostropheSuffixPattern = regexp2.MustCompile(`'(\w)\b`, regexp2.None)

	// Mac followed by at least three letters whose last is not one of
	// a, c, i, o, z, j; or any Mc.
	irishGuardPattern  = regexp2.MustCompile(`\bMac[A-Za-z]{2,}[^aciozj]\b|\bMc`, regexp2.None)
	irishPrefixPattern = regexp2.MustCompile(`\b(Ma?c)([A-Za-z]+)`, regexp2.None)

	romanNumeralPattern = regexp2.MustCompile(`\b(`+romanTens+romanOnes+`)\b`, regexp2.None)
)

// irishExceptions are surnames that do not split after Mac. They are applied in
// order as literal substring replacements after the general Mac/Mc rewrite.
var irishExceptions = []struct {
	from string
	to   string
}{
	{"MacEdo", "Macedo"},
	{"MacEvicius", "Macevicius"},
	{"MacHado", "Machado"},
	{"MacHar", "Machar"},
	{"MacHin", "Machin"},
	{"MacHlin", "Machlin"},
	{"MacIas", "Macias"},
	{"MacIulis", "Maciulis"},
	{"MacKie", "Mackie"},
	{"MacKle", "Mackle"},
	{"MacKlin", "Macklin"},
	{"MacKmin", "Mackmin"},
	{"MacQuarie", "Macquarie"},
	{"Macmurdo", "MacMurdo"},
}

// particleRule lowers one linking particle. Patterns are case-sensitive and
// target the capitalized spelling produced by the initial-caps stage.
// Replacements use regexp2 substitution syntax.
type particleRule struct {
	name        string
	pattern     *regexp2.Regexp
	replacement string
}

func newParticleRule(name, expr, replacement string) particleRule {
	return particleRule{
		name:        name,
		pattern:     regexp2.MustCompile(expr, regexp2.None),
		replacement: replacement,
	}
}

// particleRules run in this order.
var particleRules = []particleRule{
	newParticleRule("al", `\bAl(?=\s+\w)`, "al"),
	newParticleRule("bin", `\bB(in|inti|inte)\b`, "b${1}"),
	newParticleRule("ap", `\bAp\b`, "ap"),
	newParticleRule("ben", `\bBen(?=\s+\w)`, "ben"),
	newParticleRule("della", `\bDell([ae])\b`, "dell${1}"),
	newParticleRule("d_vowel", `\bD([aeiou])\b`, "d${1}"),
	newParticleRule("das_dos", `\bD([ao]s)\b`, "d${1}"),
	newParticleRule("del_der", `\bDe([lr])\b`, "de${1}"),
	newParticleRule("el", `\bEl\b`, "el"),
	newParticleRule("la", `\bLa\b`, "la"),
	newParticleRule("le_lo", `\bL([eo])\b`, "l${1}"),
	newParticleRule("van", `\bVan(?=\s+\w)`, "van"),
	newParticleRule("von", `\bVon\b`, "von"),
}

// conjunctionPatterns match the Spanish coordinating conjunctions y, e and i
// as whole words in any case.
var conjunctionPatterns = []struct {
	pattern *regexp2.Regexp
	lower   string
}{
	{regexp2.MustCompile(`\bY\b`, regexp2.IgnoreCase), "y"},
	{regexp2.MustCompile(`\bE\b`, regexp2.IgnoreCase), "e"},
	{regexp2.MustCompile(`\bI\b`, regexp2.IgnoreCase), "i"},
}

// neutralWords capitalizes the part after a Mac/Mc prefix. The prefix rule
// only matches ASCII letters, so it never needs language-specific casing.
var neutralWords = naming.NewWordCaser(language.Und)

// stage is one step of the name-case pipeline. A stage returns an error only
// when the regex engine fails; the caller then keeps the stage's input.
type stage struct {
	name  string
	apply func(string) (string, error)
}

// ruleStages are the stages after initial capitalization, in order.
var ruleStages = []stage{
	{name: "apostrophe_suffix", apply: lowerApostropheSuffix},
	{name: "irish_prefix", apply: fixIrishPrefixes},
	{name: "particles", apply: lowerParticles},
	{name: "roman_numerals", apply: upperRomanNumerals},
	{name: "spanish_conjunctions", apply: lowerConjunctions},
}

// lowerApostropheSuffix lowercases a single letter that ends a word right
// after an apostrophe: "O'Brien'S" -> "O'Brien's". Longer segments such as
// the "Artagnan" in "D'Artagnan" are left alone.
func lowerApostropheSuffix(s string) (string, error) {
	return apostropheSuffixPattern.ReplaceFunc(s, func(m regexp2.Match) string {
		return "'" + strings.ToLower(m.GroupByNumber(1).String())
	}, -1, -1)
}

// fixIrishPrefixes capitalizes the letter after Mac/Mc ("Macdonald" ->
// "MacDonald") when the guard pattern matches anywhere in s, then restores
// the surnames in irishExceptions.
func fixIrishPrefixes(s string) (string, error) {
	ok, err := irishGuardPattern.MatchString(s)
	if err != nil || !ok {
		return s, err
	}

	out, err := irishPrefixPattern.ReplaceFunc(s, func(m regexp2.Match) string {
		return m.GroupByNumber(1).String() + neutralWords.Capitalize(m.GroupByNumber(2).String())
	}, -1, -1)
	if err != nil {
		return s, err
	}
	return applyIrishExceptions(out), nil
}

func applyIrishExceptions(s string) string {
	for _, ex := range irishExceptions {
		s = strings.ReplaceAll(s, ex.from, ex.to)
	}
	return s
}

// lowerParticles forces linking particles ("van", "von", "de", "della", "bin", ...)
// to lowercase wherever they appear, including as the first word.
func lowerParticles(s string) (string, error) {
	for _, rule := range particleRules {
		out, err := rule.pattern.Replace(s, rule.replacement, -1, -1)
		if err != nil {
			return s, err
		}
		s = out
	}
	return s, nil
}

// upperRomanNumerals uppercases whole words matching the restricted numeral
// grammar (tens X..LXXX, ones I..IX): "Louis Xvi" -> "Louis XVI".
// C, D and M are deliberately not recognized.
func upperRomanNumerals(s string) (string, error) {
	return romanNumeralPattern.ReplaceFunc(s, func(m regexp2.Match) string {
		return strings.ToUpper(m.String())
	}, -1, -1)
}

// lowerConjunctions lowercases the standalone words Y, E and I.
func lowerConjunctions(s string) (string, error) {
	for _, conj := range conjunctionPatterns {
		out, err := conj.pattern.Replace(s, conj.lower, -1, -1)
		if err != nil {
			return s, err
		}
		s = out
	}
	return s, nil
}
