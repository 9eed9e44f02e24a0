// Package formtree models a form as a tree of nodes and provides the
// recursive operations that work over it: error aggregation, state marking,
// value extraction by state, and cloning.
//
// # Model
//
// Every node reports a Kind: KindLeaf, KindGroup or KindArray. Algorithms
// switch on Kind and rely on the GroupNode and ArrayNode capability
// interfaces for children, so they never depend on concrete types. Control,
// Group and Array are the concrete implementations shipped here; a host
// integration can wrap its own control types instead.
//
// Each node carries the flags touched, dirty, pending and disabled. The
// states untouched, pristine and enabled are their negations. Flags move
// downward only, when MarkAll is called; nothing propagates upward.
//
// Validators are plain functions of a value returning nil or an Errors set.
// A Control runs its validators against its value; a Group or Array runs
// its own validators against its composed value, which is how cross-field
// rules such as condition.One are attached.
//
// # Operations
//
//	errs := formtree.CollectErrors(form)              // nested, nil when valid
//	flat := formtree.CollectErrorsFlat(form, "")      // {"users[2].email": {...}}
//	_ = formtree.MarkAll(form, formtree.StateDirty, formtree.MarkOptions{})
//	m, _ := formtree.ExtractByMark(form, formtree.StateTouched)
//	cp, _ := formtree.Clone(form, formtree.CloneOptions{Keys: []string{"id"}, Mode: formtree.CloneExclude})
//
// # Concurrency
//
// Trees are not safe for concurrent mutation. Every operation is a
// synchronous depth-first walk; callers serialise writes to a tree while a
// traversal runs.
//
// # Errors
//
// Validation failures are values (Errors), never Go errors. Go errors are
// reserved for structural misuse: ErrInvalidNodeKind, ErrInvalidState,
// ErrAlreadyAttached, ErrInvalidMetadata and friends, all usable with
// errors.Is.
package formtree
