package formtree

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"
)

// AsNumber coerces v to a float64. Go numeric kinds convert directly and
// strings convert when they parse as a float after trimming. Booleans, nil
// and other values do not coerce.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return AsNumber(rv.String())
	}
	return 0, false
}

// IsEmpty reports whether v is nil or a zero-length string, slice, array or map.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	n, ok := Length(v)
	return ok && n == 0
}

// Length returns the length of strings (in runes after NFC normalisation),
// slices, arrays and maps. The boolean is false for values without a length.
func Length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return len([]rune(norm.NFC.String(s))), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return len([]rune(norm.NFC.String(rv.String()))), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// Equal is the loose equality used by conditions and membership validators.
// Two values that both coerce to numbers compare numerically ("80" equals 80);
// otherwise values compare structurally. nil only equals nil.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := AsNumber(a); ok {
		if y, ok := AsNumber(b); ok {
			return x == y
		}
	}
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// copyValue deep-copies maps and slices so a cloned tree never shares
// mutable values with its source.
func copyValue(v any) any {
	switch c := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, x := range c {
			out[k] = copyValue(x)
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, x := range c {
			out[i] = copyValue(x)
		}
		return out
	case Errors:
		return Errors(copyValue(map[string]any(c)).(map[string]any))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyReflect(iter.Value(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copyReflect(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()
	}
	return v
}

func copyReflect(v reflect.Value, t reflect.Type) reflect.Value {
	if v.Kind() == reflect.Interface && v.IsNil() {
		return reflect.Zero(t)
	}
	c := copyValue(v.Interface())
	if c == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(c)
}
