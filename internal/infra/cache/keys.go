package cache

import (
	"fmt"
	"reflect"
	"strings"
)

// keySeparator delimits cache key segments.
const keySeparator = "::"

// Key builds a deterministic cache key from call parameters in declaration
// order. Two calls with the same effective parameters always produce the same
// key: pointers are dereferenced, slices render as "[a, b]" and nil renders as
// "nil".
func Key(params ...any) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = serializeValue(param)
	}

	return strings.Join(parts, keySeparator)
}

func serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}

		return serializeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = serializeValue(rv.Index(i).Interface())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
