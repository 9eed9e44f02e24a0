package validator

import (
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// InArray fails values not equal to any element of list. Numbers and numeric
// strings compare by value, so "3" is found in []int{3}.
func InArray[T any](list []T) formtree.Validator {
	return func(v any) formtree.Errors {
		for _, item := range list {
			if formtree.Equal(v, item) {
				return nil
			}
		}
		return fail(TagInArray, v).WithExpected(TagInArray, list)
	}
}

// InObjectKey fails values that are not keys of obj.
func InObjectKey[V any](obj map[string]V) formtree.Validator {
	return func(v any) formtree.Errors {
		if k, ok := keyOf(v); ok {
			if _, found := obj[k]; found {
				return nil
			}
		}
		return fail(TagInObjectKey, v).WithExpected(TagInObjectKey, sortedKeys(obj))
	}
}

// InObject resolves path inside obj and fails values that are not members of
// what it finds: an element of a sequence, a key of a mapping, or equal to a
// scalar. A missing path fails every value. It panics when path is malformed.
func InObject(obj any, path string) formtree.Validator {
	p := formpath.MustParse(path)
	return func(v any) formtree.Errors {
		target, ok := formpath.Lookup(obj, p)
		if ok && member(v, target) {
			return nil
		}
		return fail(TagInObject, v).WithExpected(TagInObject, path)
	}
}

// InEnum fails values that are not one of the enum's values.
func InEnum[V any](enum map[string]V) formtree.Validator {
	return func(v any) formtree.Errors {
		for _, item := range enum {
			if formtree.Equal(v, item) {
				return nil
			}
		}
		return fail(TagInEnum, v).WithExpected(TagInEnum, enumValues(enum))
	}
}

// InEnumKey fails values that are not one of the enum's names.
func InEnumKey[V any](enum map[string]V) formtree.Validator {
	return func(v any) formtree.Errors {
		if k, ok := keyOf(v); ok {
			if _, found := enum[k]; found {
				return nil
			}
		}
		return fail(TagInEnumKey, v).WithExpected(TagInEnumKey, sortedKeys(enum))
	}
}

// keyOf returns the mapping key a value addresses: strings as they are and
// numbers in their shortest decimal form.
func keyOf(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if _, isBool := v.(bool); isBool {
		return "", false
	}
	if n, ok := formtree.AsNumber(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}

func member(v, target any) bool {
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if formtree.Equal(v, rv.Index(i).Interface()) {
				return true
			}
		}
		return false
	case reflect.Map:
		k, ok := keyOf(v)
		if !ok || rv.Type().Key().Kind() != reflect.String {
			return false
		}
		return rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).IsValid()
	default:
		return formtree.Equal(v, target)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

func enumValues[V any](enum map[string]V) []V {
	out := make([]V, 0, len(enum))
	for _, k := range sortedKeys(enum) {
		out = append(out, enum[k])
	}
	return out
}
