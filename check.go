package formkit

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RootField is the field name used for errors raised by validators attached
// to the root node itself, such as a solveOne group validator.
const RootField = "_form"

// Check validates the tree rooted at n and returns nil when it is valid.
//
// Failures are returned as a ValidationError keyed by flat path
// ("users[2].email"), one message per failure kind. Errors raised by group
// and array validators are keyed by the composite's path, or RootField for
// the root. Structural problems are returned as they are.
func Check(n formtree.Node) error {
	details, err := Details(n)
	if err != nil {
		return err
	}
	if details.IsEmpty() {
		return nil
	}

	ve := NewValidationError()
	for _, d := range details {
		ve.Add(d.Field, d.Message)
	}
	return ve
}

// Details validates the tree rooted at n and lists every failure with its
// translation key and values, sorted by field and kind.
func Details(n formtree.Node) (validator.ValidationErrors, error) {
	if _, err := formtree.Validate(n); err != nil {
		return nil, err
	}

	flat := formtree.CollectErrorsFlatWith(n, "", formtree.CollectOptions{IncludeSelf: true})
	var out validator.ValidationErrors
	for _, path := range slices.Sorted(maps.Keys(flat)) {
		field := path
		if field == "" {
			field = RootField
		}
		out = append(out, validator.Explain(field, flat[path])...)
	}
	return out, nil
}
