package displaytext

import (
	"reflect"
	"strings"

	"github.com/erraggy/displaytext/internal/naming"
)

// ToSentenceCase turns an identifier into a phrase with only its first word
// capitalized. Underscores become spaces and a space is inserted at every
// lowercase-to-uppercase transition; the capital that starts a word split off
// that way is lower-cased unless it opens an acronym. The first rune after any
// leading whitespace is then upper-cased. Words already separated in s keep
// their case.
// Example: "foo_bar" -> "Foo bar"
// Example: "fooBarBaz" -> "Foo bar baz"
// Example: "userID" -> "User ID"
func ToSentenceCase(s string) string {
	return naming.UpperFirstWord(naming.SplitCamelBoundariesLower(naming.UnderscoresToSpaces(s)))
}

// ToTitleCase turns an identifier into a phrase with every word capitalized.
// Underscores become spaces, a space is inserted at every lowercase-to-uppercase
// transition, and the first rune of every word that follows start-of-string or
// whitespace is upper-cased. Letters after the first keep their case.
// Example: "foo_bar" -> "Foo Bar"
// Example: "fooBarBaz" -> "Foo Bar Baz"
func ToTitleCase(s string) string {
	return naming.UpperEveryWord(naming.SplitCamelBoundaries(naming.UnderscoresToSpaces(s)))
}

// CapitalizeFirst upper-cases the first character of v's text.
// Strings (and byte slices) are trimmed of surrounding whitespace first; any
// other value is converted to its natural string form, the same form Render
// uses for scalars. Null values give "", not the text "Null".
// Example: "  hello" -> "Hello"
// Example: 123 -> "123"
func CapitalizeFirst(v any) string {
	var s string
	switch kind, rv := classify(reflect.ValueOf(v)); kind {
	case KindString:
		s = strings.TrimSpace(naturalString(kind, rv))
	case KindSequence, KindMapping:
		s = customString(rv)
	default:
		s = naturalString(kind, rv)
	}
	return naming.UpperFirst(s)
}
