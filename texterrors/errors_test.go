package texterrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unsupported value")
		err := &SerializationError{
			Path:    "$.items[2]",
			Format:  "json",
			Message: "encoding failed",
			Cause:   cause,
		}
		assert.Equal(t, "serialization error (json) at $.items[2]: encoding failed: unsupported value", err.Error())
	})

	t.Run("Error message for circular value", func(t *testing.T) {
		err := &SerializationError{Path: "$.self", IsCircular: true}
		assert.Equal(t, "circular value at $.self", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SerializationError{}
		assert.Equal(t, "serialization error", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &SerializationError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Is matches sentinels", func(t *testing.T) {
		err := &SerializationError{}
		assert.True(t, errors.Is(err, ErrSerialization))
		assert.False(t, errors.Is(err, ErrCircularValue))
		assert.False(t, errors.Is(err, ErrConfig))

		circular := &SerializationError{IsCircular: true}
		assert.True(t, errors.Is(circular, ErrSerialization))
		assert.True(t, errors.Is(circular, ErrCircularValue))
	})

	t.Run("As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("render: %w", &SerializationError{Path: "$.a", IsCircular: true})
		var serErr *SerializationError
		assert.True(t, errors.As(wrapped, &serErr))
		assert.Equal(t, "$.a", serErr.Path)
		assert.True(t, errors.Is(wrapped, ErrCircularValue))
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "nesting_depth",
			Path:         "$.a.b",
			Limit:        2,
			Actual:       3,
			Message:      "value nests too deeply",
		}
		assert.Equal(t, "resource limit exceeded: nesting_depth (limit: 2, actual: 3) at $.a.b: value nests too deeply", err.Error())
	})

	t.Run("Error message with limit only", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "nesting_depth", Limit: 10}
		assert.Equal(t, "resource limit exceeded: nesting_depth (limit: 10)", err.Error())
	})

	t.Run("Is and Unwrap", func(t *testing.T) {
		err := &ResourceLimitError{}
		assert.True(t, errors.Is(err, ErrResourceLimit))
		assert.False(t, errors.Is(err, ErrSerialization))
		assert.NoError(t, err.Unwrap())
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("must be no less than 1")
		err := &ConfigError{Option: "max_depth", Value: 0, Message: "invalid depth", Cause: cause}
		assert.Equal(t, "configuration error for max_depth (value: 0): invalid depth: must be no less than 1", err.Error())
	})

	t.Run("Error message with nil value", func(t *testing.T) {
		err := &ConfigError{Option: "format"}
		assert.Equal(t, "configuration error for format", err.Error())
	})

	t.Run("Is and Unwrap", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		assert.True(t, errors.Is(err, ErrConfig))
		assert.Same(t, cause, err.Unwrap())
	})
}
