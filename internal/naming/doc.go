// Package naming provides the word-level casing primitives behind the caser package.
//
// This internal package splits text into maximal runs of Unicode letters and
// separators, and capitalizes letter runs using golang.org/x/text/cases so that
// language-specific rules (Dutch "IJ", Turkish dotted I, Greek final sigma)
// apply. Separators (whitespace, punctuation, digits) are never altered, and
// combining marks stay attached to the letter they follow.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
