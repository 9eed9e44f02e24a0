package validator

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// UUID fails anything that is not a string in the canonical 36 character
// UUID form. The nil UUID is accepted.
func UUID() formtree.Validator {
	return func(v any) formtree.Errors {
		s, ok := v.(string)
		if ok && isCanonicalUUID(s) {
			return nil
		}
		return fail(TagUUID, v)
	}
}

func isCanonicalUUID(s string) bool {
	// Fast rejection before parsing: uuid.Parse also accepts braces and urn prefixes.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
