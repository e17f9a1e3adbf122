// Package displaytext turns arbitrary Go values and identifier-like strings
// into text meant for display, such as table cells and form labels in a UI
// component library.
//
// # Overview
//
// The package offers four conversions:
//
//   - [Render]: any value to display text. Null values become "", sequences
//     and plain maps or structs become indented JSON (or YAML), and
//     everything else becomes its natural string form.
//   - [ToSentenceCase]: "fooBarBaz" to "Foo bar baz".
//   - [ToTitleCase]: "fooBarBaz" to "Foo Bar Baz".
//   - [CapitalizeFirst]: "  hello" to "Hello", 123 to "123".
//
// All of them are pure functions and safe for concurrent use.
//
// # Rendering
//
// A map or struct is treated as plain data unless it (or a pointer to it)
// has a String or Error method. Values with such a method render through it,
// so a time.Time renders as its String form rather than as JSON:
//
//	text, err := displaytext.Render(map[string]any{"id": 7, "tags": []string{"a"}})
//	// {
//	//   "id": 7,
//	//   "tags": [
//	//     "a"
//	//   ]
//	// }
//
// A value that refers to itself cannot be serialized. Render reports it with
// a *texterrors.SerializationError instead of recursing forever:
//
//	m := map[string]any{}
//	m["self"] = m
//	_, err := displaytext.Render(m)
//	errors.Is(err, texterrors.ErrCircularValue) // true
//
// Use [New] with options such as [WithIndent], [WithFormat], [WithMaxDepth],
// and [WithLogger] for a reusable, configured [Renderer].
//
// # Case Conversion
//
// Underscores become spaces and a space is inserted wherever a lowercase
// ASCII letter is followed by an uppercase one. Sentence case then
// capitalizes the first word only; title case capitalizes every word.
// Case changes are not locale-aware.
//
// # Logging
//
// The [Logger] interface accepts slog-style key-value attributes. Adapters
// exist for log/slog, go.uber.org/zap, and github.com/rs/zerolog.
package displaytext
