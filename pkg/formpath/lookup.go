package formpath

import (
	"fmt"
	"reflect"
	"strconv"
)

// Lookup resolves p against a nested value made of maps and slices.
// The boolean is false when any segment is missing, which callers treat as
// "undefined" (as opposed to a present nil value).
func Lookup(root any, p Path) (any, bool) {
	cur := root
	for _, s := range p {
		var ok bool
		if s.IsIndex {
			cur, ok = index(cur, s.Index)
		} else {
			cur, ok = field(cur, s.Key)
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func field(v any, key string) (any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		x, ok := m[key]
		return x, ok
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	x := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

func index(v any, i int) (any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		if i < 0 || i >= len(s) {
			return nil, false
		}
		return s[i], true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if i < 0 || i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

// Set assigns v at p inside root, creating intermediate maps for key segments
// and slices for index segments. Slices are padded with nil up to the index.
// It returns the (possibly newly allocated) root.
func Set(root map[string]any, p Path, v any) (map[string]any, error) {
	if p.IsRoot() {
		return nil, fmt.Errorf("%w: cannot set the root path", ErrInvalidPath)
	}
	if p[0].IsIndex {
		return nil, fmt.Errorf("%w: %q starts with an index but the root is a mapping", ErrInvalidPath, p.String())
	}
	if root == nil {
		root = make(map[string]any)
	}
	out, err := setIn(root, p, v)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func setIn(cur any, p Path, v any) (any, error) {
	if len(p) == 0 {
		return v, nil
	}
	s := p[0]

	if s.IsIndex {
		var arr []any
		switch c := cur.(type) {
		case nil:
		case []any:
			arr = c
		default:
			return nil, fmt.Errorf("%w: %T at %s", ErrNotContainer, cur, s)
		}
		for len(arr) <= s.Index {
			arr = append(arr, nil)
		}
		child, err := setIn(arr[s.Index], p[1:], v)
		if err != nil {
			return nil, err
		}
		arr[s.Index] = child
		return arr, nil
	}

	var m map[string]any
	switch c := cur.(type) {
	case nil:
		m = make(map[string]any)
	case map[string]any:
		m = c
	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrNotContainer, cur, s)
	}
	child, err := setIn(m[s.Key], p[1:], v)
	if err != nil {
		return nil, err
	}
	m[s.Key] = child
	return m, nil
}

// Flatten turns nested maps and slices into a single-level mapping keyed by
// the joined keys of each leaf, e.g. {"a": {"b": 1}} becomes {"a/b": 1}.
// Slice positions become keys ("items/0"). Empty nested containers produce
// no entries. An empty sep defaults to "/".
func Flatten(v any, sep string) map[string]any {
	if sep == "" {
		sep = "/"
	}
	out := make(map[string]any)
	if v == nil {
		return out
	}
	flatten(v, "", sep, out)
	return out
}

func flatten(v any, prefix, sep string, out map[string]any) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + sep + k
	}

	switch c := v.(type) {
	case map[string]any:
		for k, x := range c {
			flatten(x, join(k), sep, out)
		}
		return
	case []any:
		for i, x := range c {
			flatten(x, join(strconv.Itoa(i)), sep, out)
		}
		return
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		iter := rv.MapRange()
		for iter.Next() {
			flatten(iter.Value().Interface(), join(iter.Key().String()), sep, out)
		}
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			flatten(rv.Index(i).Interface(), join(strconv.Itoa(i)), sep, out)
		}
	default:
		out[prefix] = v
	}
}
