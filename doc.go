// Package formkit validates form-shaped data held in trees of controls,
// groups and arrays.
//
// The building blocks live in sub-packages:
//
//   - pkg/formtree: the node model, error aggregation, state marks, cloning
//     and metadata;
//   - pkg/formpath: the path syntax ("users[2].email") shared by every
//     package;
//   - pkg/validator: field validators such as Required, MinLength, Email and
//     InArray;
//   - pkg/condition: cross-field conditions and the solveAll, solveSome,
//     solveNone and solveOne group validators;
//   - pkg/formschema: YAML and JSON form definitions.
//
// The root package ties them together for callers that only need a yes or
// no answer with readable messages:
//
//	form := formtree.NewGroup(
//		formtree.Field("email", formtree.NewControl("", validator.Required(), validator.Email())),
//		formtree.Field("age", formtree.NewControl(12, validator.Min(18))),
//	)
//
//	if err := formkit.Check(form); err != nil {
//		var ve formkit.ValidationError
//		if errors.As(err, &ve) {
//			ve.Get("age") // "must be at least 18"
//		}
//	}
//
// Details returns the same failures with translation keys and values for
// localized rendering.
package formkit
