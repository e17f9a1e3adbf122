// Package naming provides the rune-level scanners behind displaytext's case
// conversion helpers.
//
// The scanners implement three boundary rules:
//   - underscores become single spaces
//   - a space is inserted at every lowercase-to-uppercase ASCII transition
//   - the first rune of a word (after start-of-string or whitespace) is
//     upper-cased, either for the first word only or for every word
//
// Upper-casing uses golang.org/x/text/cases so that runes with multi-rune
// upper-case forms ("ß" -> "SS") map the same way a full string upper-case
// conversion does.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
