// Package valuegraph checks a Go value graph before it is handed to a
// structured encoder.
//
// Check reports reference cycles and nesting deeper than a configured limit
// as texterrors values, with the offending location written as a JSON path
// ("$.children[0].parent"). Encoders never see a value that fails the check,
// so a cyclic value cannot send one into unbounded recursion.
package valuegraph

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/displaytext/texterrors"
)

// RootPath is the JSON path of the value passed to Check.
const RootPath = "$"

var jsonMarshalerType = reflect.TypeFor[json.Marshaler]()

// visitKey identifies a container on the current walk path. Slices are keyed
// by their backing array and length, since a sub-slice of the same array is a
// distinct value.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type walker struct {
	format   string
	maxDepth int
	visiting map[visitKey]struct{}
}

// Check walks v and returns a *texterrors.SerializationError with IsCircular
// set if a pointer, map, or slice is reached again from inside itself, or a
// *texterrors.ResourceLimitError if containers nest more than maxDepth levels.
// A non-positive maxDepth disables the depth check. format is recorded on the
// returned SerializationError.
func Check(v any, format string, maxDepth int) error {
	w := &walker{
		format:   format,
		maxDepth: maxDepth,
		visiting: make(map[visitKey]struct{}),
	}
	return w.walk(reflect.ValueOf(v), RootPath, 0)
}

func (w *walker) walk(v reflect.Value, path string, depth int) error {
	if !v.IsValid() || hasCustomMarshaler(v) {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), path, depth)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		key := visitKey{ptr: v.Pointer(), typ: v.Type()}
		if err := w.enter(key, path); err != nil {
			return err
		}
		defer delete(w.visiting, key)
		return w.walk(v.Elem(), path, depth)

	case reflect.Map:
		if v.IsNil() || v.Len() == 0 {
			return nil
		}
		level, err := w.descend(path, depth)
		if err != nil {
			return err
		}
		key := visitKey{ptr: v.Pointer(), typ: v.Type()}
		if err := w.enter(key, path); err != nil {
			return err
		}
		defer delete(w.visiting, key)
		return w.walkMap(v, path, level)

	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 || v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		level, err := w.descend(path, depth)
		if err != nil {
			return err
		}
		key := visitKey{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
		if err := w.enter(key, path); err != nil {
			return err
		}
		defer delete(w.visiting, key)
		return w.walkElems(v, path, level)

	case reflect.Array:
		if v.Len() == 0 {
			return nil
		}
		level, err := w.descend(path, depth)
		if err != nil {
			return err
		}
		return w.walkElems(v, path, level)

	case reflect.Struct:
		level, err := w.descend(path, depth)
		if err != nil {
			return err
		}
		return w.walkStruct(v, path, level)
	}

	return nil
}

func (w *walker) enter(key visitKey, path string) error {
	if _, seen := w.visiting[key]; seen {
		return &texterrors.SerializationError{
			Path:       path,
			Format:     w.format,
			IsCircular: true,
			Message:    fmt.Sprintf("value of type %s refers to itself", key.typ),
		}
	}
	w.visiting[key] = struct{}{}
	return nil
}

// descend returns the nesting level of a container found at depth.
func (w *walker) descend(path string, depth int) (int, error) {
	level := depth + 1
	if w.maxDepth > 0 && level > w.maxDepth {
		return 0, &texterrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Path:         path,
			Limit:        int64(w.maxDepth),
			Actual:       int64(level),
		}
	}
	return level, nil
}

func (w *walker) walkMap(v reflect.Value, path string, level int) error {
	keys := v.MapKeys()
	names := make([]string, len(keys))
	order := make([]int, len(keys))
	for i, k := range keys {
		names[i] = mapKeyName(k)
		order[i] = i
	}
	// Sorted so the reported path is stable across runs.
	sort.Slice(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })

	for _, i := range order {
		if err := w.walk(v.MapIndex(keys[i]), BuildChildPath(path, names[i]), level); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkElems(v reflect.Value, path string, level int) error {
	for i := 0; i < v.Len(); i++ {
		if err := w.walk(v.Index(i), BuildIndexPath(path, i), level); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkStruct(v reflect.Value, path string, level int) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() && (!field.Anonymous || field.Type.Kind() == reflect.Pointer) {
			// The encoder skips these too.
			continue
		}
		name, skip := fieldName(field)
		if skip {
			continue
		}
		fieldPath := path
		if !field.Anonymous || name != field.Name {
			fieldPath = BuildChildPath(path, name)
		}
		if err := w.walk(v.Field(i), fieldPath, level); err != nil {
			return err
		}
	}
	return nil
}

// fieldName returns the serialized name of a struct field and whether the
// field is excluded from serialization.
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name, false
	}
	return name, false
}

func mapKeyName(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	}
	// Keys read through unexported fields cannot be converted back to any.
	if !k.CanInterface() {
		return k.Type().String()
	}
	return fmt.Sprint(k.Interface())
}

// hasCustomMarshaler reports whether v encodes itself, in which case its
// fields are not walked.
func hasCustomMarshaler(v reflect.Value) bool {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	if v.Type().Implements(jsonMarshalerType) {
		return true
	}
	return v.CanAddr() && v.Addr().Type().Implements(jsonMarshalerType)
}

// BuildChildPath appends an object key to a JSON path, switching to bracket
// notation for keys that would be ambiguous in dotted form.
// Example: BuildChildPath("$", "name") -> "$.name"
// Example: BuildChildPath("$", "a.b") -> "$['a.b']"
func BuildChildPath(parent, key string) string {
	if needsBracketNotation(key) {
		escaped := strings.ReplaceAll(key, "'", "\\'")
		return fmt.Sprintf("%s['%s']", parent, escaped)
	}
	return parent + "." + key
}

// BuildIndexPath appends an array index to a JSON path.
// Example: BuildIndexPath("$.items", 2) -> "$.items[2]"
func BuildIndexPath(parent string, index int) string {
	return parent + "[" + strconv.Itoa(index) + "]"
}

// needsBracketNotation returns true if the key starts with a digit or
// contains characters that require bracket notation in JSON paths.
func needsBracketNotation(key string) bool {
	if len(key) == 0 {
		return true
	}
	for i, r := range key {
		if i == 0 && r >= '0' && r <= '9' {
			return true
		}
		switch r {
		case '.', '[', ']', '\'', '"', ' ', '\t', '\n', '\r':
			return true
		}
	}
	return false
}
