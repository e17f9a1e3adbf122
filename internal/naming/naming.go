package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnderscoresToSpaces replaces every underscore with a single space.
// Example: "user_profile_id" -> "user profile id"
func UnderscoresToSpaces(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// SplitCamelBoundaries inserts a space between every ASCII lowercase letter
// that is immediately followed by an ASCII uppercase letter.
// Both letters are kept as-is.
// Example: "fooBarBaz" -> "foo Bar Baz"
// Example: "HTTPServer" -> "HTTPServer"
func SplitCamelBoundaries(s string) string {
	return splitCamel(s, false)
}

// SplitCamelBoundariesLower splits like SplitCamelBoundaries and also
// lower-cases the uppercase letter that starts each new word, unless the
// letter after it is uppercase too (an acronym such as "ID").
// Example: "fooBarBaz" -> "foo bar baz"
// Example: "userID" -> "user ID"
func SplitCamelBoundariesLower(s string) string {
	return splitCamel(s, true)
}

func splitCamel(s string, lowerWordStart bool) string {
	if len(s) < 2 {
		return s
	}

	var result strings.Builder
	result.Grow(len(s) + 4)

	boundary := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if boundary && lowerWordStart && (i+1 == len(s) || !isASCIIUpper(s[i+1])) {
			c = c - 'A' + 'a'
		}
		result.WriteByte(c)
		boundary = i+1 < len(s) && isASCIILower(s[i]) && isASCIIUpper(s[i+1])
		if boundary {
			result.WriteByte(' ')
		}
	}

	return result.String()
}

// UpperFirstWord upper-cases the first rune of the first word, where the
// first word starts after any leading whitespace. Nothing else changes.
// Example: "  foo bar" -> "  Foo bar"
func UpperFirstWord(s string) string {
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		return s[:i] + upperRuneAt(s[i:])
	}
	return s
}

// UpperEveryWord upper-cases the first rune of every word. A word starts at
// the beginning of the string or right after a whitespace rune.
// Example: "foo  bar\tbaz" -> "Foo  Bar\tBaz"
func UpperEveryWord(s string) string {
	if s == "" {
		return ""
	}

	caser := getUpperCaser()
	defer putUpperCaser(caser)

	var result strings.Builder
	result.Grow(len(s))

	wordStart := true
	for _, r := range s {
		space := unicode.IsSpace(r)
		if wordStart && !space {
			result.WriteString(caser.String(string(r)))
		} else {
			result.WriteRune(r)
		}
		wordStart = space
	}

	return result.String()
}

// UpperFirst upper-cases the first rune of s and keeps the rest unchanged.
// Example: "hello world" -> "Hello world"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	return upperRuneAt(s)
}

// upperRuneAt upper-cases the rune at the start of s.
func upperRuneAt(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r < utf8.RuneSelf {
		if isASCIILower(byte(r)) {
			return string(r-'a'+'A') + s[size:]
		}
		return s
	}

	caser := getUpperCaser()
	defer putUpperCaser(caser)
	return caser.String(s[:size]) + s[size:]
}

func isASCIILower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isASCIIUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
