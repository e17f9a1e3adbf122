// Package texterrors provides structured error types for the displaytext library.
//
// Import path: github.com/erraggy/displaytext/texterrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a cyclic value apart from an encoder failure or a
// bad renderer option.
//
// # Error Types
//
//   - [SerializationError]: a value could not be serialized for display
//   - [ResourceLimitError]: a value nests deeper than the configured limit
//   - [ConfigError]: invalid renderer options or tool input
//
// # Sentinel Errors
//
//   - [ErrSerialization]: Matches any [SerializationError]
//   - [ErrCircularValue]: Matches [SerializationError] with IsCircular=true
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	text, err := displaytext.Render(value)
//	if errors.Is(err, texterrors.ErrCircularValue) {
//	    // value refers to itself
//	}
//
//	var serErr *texterrors.SerializationError
//	if errors.As(err, &serErr) {
//	    fmt.Printf("cannot render value at %s\n", serErr.Path)
//	}
package texterrors
