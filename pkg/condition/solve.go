package condition

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// Mode is the quantifier applied to a list of condition results.
type Mode int

const (
	ModeAll Mode = iota + 1
	ModeSome
	ModeNone
	ModeOne
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeSome:
		return "some"
	case ModeNone:
		return "none"
	case ModeOne:
		return "one"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Tag is the failure key reported by the mode's validator, e.g. "solveOne".
func (m Mode) Tag() string {
	switch m {
	case ModeAll:
		return "solveAll"
	case ModeSome:
		return "solveSome"
	case ModeNone:
		return "solveNone"
	case ModeOne:
		return "solveOne"
	}
	return "solve"
}

// ParseMode accepts all, some, none and one.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return ModeAll, nil
	case "some":
		return ModeSome, nil
	case "none":
		return ModeNone, nil
	case "one":
		return ModeOne, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Evaluate runs every condition against the same snapshot and returns the
// results in order. It stops at the first evaluation error.
func Evaluate(snapshot any, conds ...Condition) ([]bool, error) {
	out := make([]bool, len(conds))
	for i, c := range conds {
		ok, err := c.Eval(snapshot)
		if err != nil {
			return nil, fmt.Errorf("condition %d (%s): %w", i, c, err)
		}
		out[i] = ok
	}
	return out, nil
}

// Solve reports whether the conditions satisfy the quantifier:
//
//   - ModeAll: every condition is true;
//   - ModeSome: at least one is true;
//   - ModeNone: none is true;
//   - ModeOne: exactly one is true.
//
// Calling it without conditions is a configuration error.
func Solve(m Mode, snapshot any, conds ...Condition) (bool, error) {
	if len(conds) == 0 {
		return false, fmt.Errorf("%w: %s", ErrNoConditions, m.Tag())
	}
	results, err := Evaluate(snapshot, conds...)
	if err != nil {
		return false, err
	}

	n := 0
	for _, r := range results {
		if r {
			n++
		}
	}
	switch m {
	case ModeAll:
		return n == len(results), nil
	case ModeSome:
		return n > 0, nil
	case ModeNone:
		return n == 0, nil
	case ModeOne:
		return n == 1, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownMode, m)
}

// Validator returns a group validator that fails unless the conditions
// satisfy m against the group's value. The failure is
// {ok: false, <m.Tag()>: false, actualValue: value}; when a condition cannot
// be evaluated, or none were given, the error text is added under "error".
func Validator(m Mode, conds ...Condition) formtree.Validator {
	tag := m.Tag()
	return func(v any) formtree.Errors {
		ok, err := Solve(m, v, conds...)
		if err != nil {
			return formtree.NewFailure(tag, v).With(formtree.KeyError, err.Error())
		}
		if ok {
			return nil
		}
		return formtree.NewFailure(tag, v)
	}
}

// All fails unless every condition holds.
func All(conds ...Condition) formtree.Validator { return Validator(ModeAll, conds...) }

// Some fails unless at least one condition holds.
func Some(conds ...Condition) formtree.Validator { return Validator(ModeSome, conds...) }

// None fails when any condition holds.
func None(conds ...Condition) formtree.Validator { return Validator(ModeNone, conds...) }

// One fails unless exactly one condition holds.
func One(conds ...Condition) formtree.Validator { return Validator(ModeOne, conds...) }
