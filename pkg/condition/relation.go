package condition

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

// Condition evaluates to true or false against a value snapshot, usually the
// current value of a group.
type Condition interface {
	Eval(snapshot any) (bool, error)
	String() string
}

// Relation compares the values found at two paths of the snapshot. A path
// missing from the snapshot resolves to nil.
type Relation struct {
	left, right       formpath.Path
	leftRaw, rightRaw string
	op                Operator
}

var _ Condition = (*Relation)(nil)

// NewRelation builds the condition "left op right", where both sides are
// paths such as "weight" or "animals[0].weight".
func NewRelation(left, op, right string) (*Relation, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return nil, err
	}
	l, err := formpath.Parse(left)
	if err != nil {
		return nil, fmt.Errorf("%w: left operand: %w", ErrInvalidCondition, err)
	}
	r, err := formpath.Parse(right)
	if err != nil {
		return nil, fmt.Errorf("%w: right operand: %w", ErrInvalidCondition, err)
	}
	return &Relation{left: l, right: r, leftRaw: left, rightRaw: right, op: o}, nil
}

// Rel is NewRelation that panics on error, for conditions declared in code.
func Rel(left, op, right string) *Relation {
	r, err := NewRelation(left, op, right)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseTriple builds a relation from a [left, op, right] list.
func ParseTriple(parts []string) (*Relation, error) {
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want [left, op, right], got %d parts", ErrInvalidCondition, len(parts))
	}
	return NewRelation(parts[0], parts[1], parts[2])
}

func (r *Relation) Eval(snapshot any) (bool, error) {
	a, _ := formpath.Lookup(snapshot, r.left)
	b, _ := formpath.Lookup(snapshot, r.right)
	return Compare(a, b, r.op), nil
}

func (r *Relation) String() string {
	return r.leftRaw + " " + string(r.op) + " " + r.rightRaw
}

// ValueRelation compares the value at a path with a fixed value.
type ValueRelation struct {
	path  formpath.Path
	raw   string
	op    Operator
	value any
}

var _ Condition = (*ValueRelation)(nil)

// NewValueRelation builds the condition "path op value".
func NewValueRelation(path, op string, value any) (*ValueRelation, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return nil, err
	}
	p, err := formpath.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCondition, err)
	}
	return &ValueRelation{path: p, raw: path, op: o, value: value}, nil
}

func (r *ValueRelation) Eval(snapshot any) (bool, error) {
	a, _ := formpath.Lookup(snapshot, r.path)
	return Compare(a, r.value, r.op), nil
}

func (r *ValueRelation) String() string {
	return fmt.Sprintf("%s %s %#v", r.raw, r.op, r.value)
}
