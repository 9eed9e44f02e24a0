package validator

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// Required fails nil, blank strings and empty slices or maps.
func Required() formtree.Validator {
	return func(v any) formtree.Errors {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return fail(TagRequired, v)
		}
		if formtree.IsEmpty(v) {
			return fail(TagRequired, v)
		}
		return nil
	}
}

// MinLength fails values shorter than n. Strings are measured in characters
// after NFC normalisation; slices and maps by element count. Nil, empty and
// length-less values pass.
func MinLength(n int) formtree.Validator {
	return func(v any) formtree.Errors {
		l, ok := formtree.Length(v)
		if !ok || l == 0 || l >= n {
			return nil
		}
		return fail(TagMinLength, v).
			WithExpected(TagMinLength, n).
			With(formtree.KeyActualLength, l)
	}
}

// MaxLength fails values longer than n. Nil and length-less values pass.
func MaxLength(n int) formtree.Validator {
	return func(v any) formtree.Errors {
		l, ok := formtree.Length(v)
		if !ok || l <= n {
			return nil
		}
		return fail(TagMaxLength, v).
			WithExpected(TagMaxLength, n).
			With(formtree.KeyActualLength, l)
	}
}
