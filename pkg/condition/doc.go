// Package condition evaluates cross-field conditions against a form value and
// turns them into group validators.
//
// A Relation compares the values at two paths of the same snapshot:
//
//	condition.Rel("weight", ">=", "animals[0].weight")
//
// An Expression is a boolean expr-lang program over the snapshot's keys:
//
//	condition.MustExpr(`kind == "tiger" && weight > 50`)
//
// The quantifier validators All, Some, None and One evaluate every condition
// against the group's current value and fail with a tagged object such as
// {"ok": false, "solveOne": false, "actualValue": ...}:
//
//	form := formtree.NewGroup(...).WithValidators(condition.One(
//	    condition.Rel("name", "==", "animals[0].type"),
//	    condition.Rel("weight", "==", "animals[0].weight"),
//	))
//
// Solve exposes the same decision as a plain function and rejects an empty
// condition list with ErrNoConditions.
package condition
