package condition

import (
	"errors"
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

// Expression is a condition written in the expr language, evaluated with the
// snapshot's top-level keys as variables:
//
//	weight > 10 && kind != nil
//	at("animals[0].weight") == weight
//
// Undefined variables are nil. The helper at(path) resolves a full path
// against the snapshot. A snapshot that is not a mapping is exposed as value.
type Expression struct {
	src     string
	program *vm.Program
}

var _ Condition = (*Expression)(nil)

// Expr compiles src once.
func Expr(src string) (*Expression, error) {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}
	return &Expression{src: src, program: program}, nil
}

// MustExpr is Expr that panics on error.
func MustExpr(src string) *Expression {
	e, err := Expr(src)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expression) Eval(snapshot any) (bool, error) {
	res, err := expr.Run(e.program, env(snapshot))
	if err != nil {
		return false, fmt.Errorf("%s: %w", e.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBoolean, e.src, res)
	}
	return b, nil
}

func (e *Expression) String() string { return e.src }

func env(snapshot any) map[string]any {
	out := make(map[string]any)
	if m, ok := snapshot.(map[string]any); ok {
		maps.Copy(out, m)
	} else {
		out["value"] = snapshot
	}
	out["at"] = func(path string) any {
		p, err := formpath.Parse(path)
		if err != nil {
			return nil
		}
		v, _ := formpath.Lookup(snapshot, p)
		return v
	}
	return out
}
