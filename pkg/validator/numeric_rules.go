package validator

import "github.com/dmitrymomot/formkit/pkg/formtree"

// Min fails values below min. Empty values (nil or zero length) fail too,
// while values that are not numbers pass.
func Min(min float64) formtree.Validator {
	return func(v any) formtree.Errors {
		if formtree.IsEmpty(v) {
			return fail(TagMin, v).WithExpected(TagMin, min)
		}
		if n, ok := formtree.AsNumber(v); ok && n < min {
			return fail(TagMin, v).WithExpected(TagMin, min)
		}
		return nil
	}
}

// Max fails values above max. Empty values fail too, while values that are
// not numbers pass.
func Max(max float64) formtree.Validator {
	return func(v any) formtree.Errors {
		if formtree.IsEmpty(v) {
			return fail(TagMax, v).WithExpected(TagMax, max)
		}
		if n, ok := formtree.AsNumber(v); ok && n > max {
			return fail(TagMax, v).WithExpected(TagMax, max)
		}
		return nil
	}
}
