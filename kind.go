package displaytext

import (
	"fmt"
	"reflect"
)

// Kind classifies a value the way the renderer treats it.
type Kind int

const (
	// KindNull is a nil interface, nil pointer, nil map, nil slice, nil
	// func, nil channel, or a pointer chain ending in nil.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is an integer or floating-point number.
	KindNumber
	// KindString is a string or a byte slice.
	KindString
	// KindSequence is a slice or array.
	KindSequence
	// KindMapping is a map or struct without a custom text representation.
	KindMapping
	// KindOther is anything else, including every value that declares its own
	// text representation through a String or Error method.
	KindOther
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
	KindOther:    "other",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf classifies v.
//
// Sequences are classified before custom text representations are checked,
// so a slice type with a String method is still a KindSequence. Pointers are
// followed unless the pointer type itself has a String or Error method.
func KindOf(v any) Kind {
	kind, _ := classify(reflect.ValueOf(v))
	return kind
}

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

// classify returns the kind of rv along with the value the kind describes,
// which is rv with non-custom pointers and interfaces removed.
func classify(rv reflect.Value) (Kind, reflect.Value) {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return KindNull, rv
		}
		if rv.Kind() == reflect.Pointer && hasCustomText(rv.Type()) {
			return KindOther, rv
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return KindNull, rv
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return KindNull, rv
		}
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull, rv
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindString, rv
		}
		return KindSequence, rv
	case reflect.Array:
		return KindSequence, rv
	}

	if hasCustomText(rv.Type()) || hasCustomText(reflect.PointerTo(rv.Type())) {
		return KindOther, rv
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBool, rv
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber, rv
	case reflect.String:
		return KindString, rv
	case reflect.Map, reflect.Struct:
		return KindMapping, rv
	}
	return KindOther, rv
}

// hasCustomText reports whether t declares its own text representation.
func hasCustomText(t reflect.Type) bool {
	return t.Implements(errorType) || t.Implements(stringerType)
}
