// Package formschema builds formtree forms from declarative YAML or JSON
// definitions.
//
// A definition mirrors the form's shape. Scalars become controls, sequences
// arrays and mappings groups; a mapping that carries value, validators,
// controls or items (or a type of control, group or array) is a full node
// definition:
//
//	metadata:
//	  title: Invite users
//	controls:
//	  email:
//	    value: ""
//	    validators: [required, email]
//	  seats:
//	    value: 3
//	    validators:
//	      - min: 1
//	      - max: 10
//	  animals:
//	    - type: tiger
//	      weight: 70
//	validators:
//	  - solveOne:
//	      - [name, "==", "animals[0].type"]
//	      - 'weight > 50'
//
// Validators are resolved by name through a Registry. The built-in names are
// required, email, ssn, usZip, usPhone, uuid, min, max, minLength, maxLength,
// pattern, inArray, inObjectKey, inObject, inEnum, inEnumKey, solveAll,
// solveSome, solveNone and solveOne. Arguments are decoded with weak typing,
// so "10" is accepted where a number is expected.
//
// Custom validators are registered per compiler:
//
//	c := formschema.NewCompiler(
//	    formschema.WithLogger(log),
//	    formschema.WithValidator("even", evenFactory),
//	)
//	form, err := c.CompileFile("signup.yaml")
//
// DecodeValues reads a values document suitable for Group.PatchDeep.
package formschema
