package formtree

import (
	"fmt"
	"slices"
)

// Array is a composite node of ordered children.
type Array struct {
	status
	children   []Node
	validators []Validator
}

var _ ArrayNode = (*Array)(nil)

// NewArray creates an array from children in order.
// It panics on a child that already has a parent.
func NewArray(children ...Node) *Array {
	a := &Array{}
	for _, n := range children {
		if err := a.Push(n); err != nil {
			panic(fmt.Errorf("formtree: NewArray: %w", err))
		}
	}
	return a
}

// WithValidators attaches array-level validators and returns a.
func (a *Array) WithValidators(vs ...Validator) *Array {
	a.validators = append(a.validators, vs...)
	return a
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Len() int { return len(a.children) }

// At returns the child at i, or nil when i is out of range.
func (a *Array) At(i int) Node {
	if i < 0 || i >= len(a.children) {
		return nil
	}
	return a.children[i]
}

// Last returns the last child, or nil when the array is empty.
func (a *Array) Last() Node {
	return a.At(len(a.children) - 1)
}

// Value returns the raw value of every child in order.
func (a *Array) Value() any {
	out := make([]any, len(a.children))
	for i, n := range a.children {
		out[i] = n.Value()
	}
	return out
}

// Values returns the values at the given positions, skipping positions out of
// range. With no indexes it returns the whole value.
func (a *Array) Values(indexes ...int) []any {
	if len(indexes) == 0 {
		return a.Value().([]any)
	}
	out := make([]any, 0, len(indexes))
	for _, i := range indexes {
		if n := a.At(i); n != nil {
			out = append(out, n.Value())
		}
	}
	return out
}

// ValueAt returns the value at position i, or nil when out of range.
func (a *Array) ValueAt(i int) any {
	if n := a.At(i); n != nil {
		return n.Value()
	}
	return nil
}

// Errors runs the array's own validators against its current value.
func (a *Array) Errors() Errors {
	if a.disabled || len(a.validators) == 0 {
		return nil
	}
	value := a.Value()
	sets := make([]Errors, 0, len(a.validators))
	for _, v := range a.validators {
		sets = append(sets, v(value))
	}
	return MergeErrors(sets...)
}

// SetValidators replaces the array-level validators.
func (a *Array) SetValidators(vs ...Validator) {
	a.validators = vs
}

func (a *Array) MarkAs(s State, opts MarkOptions) {
	a.status.mark(a, s, opts)
}

// OnStateChange registers fn for non-silent MarkAs calls on the array itself.
func (a *Array) OnStateChange(fn StateListener) func() {
	return a.status.subscribe(fn)
}

// Push appends n.
func (a *Array) Push(n Node) error {
	return a.Insert(len(a.children), n)
}

// Insert places n at position i, shifting later children.
func (a *Array) Insert(i int, n Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node at index %d", ErrInvalidNodeKind, i)
	}
	if i < 0 || i > len(a.children) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(a.children))
	}
	if err := attach(n); err != nil {
		return fmt.Errorf("%w: index %d", err, i)
	}
	a.children = slices.Insert(a.children, i, n)
	return nil
}

// RemoveAt detaches and returns the child at i, or nil when out of range.
func (a *Array) RemoveAt(i int) Node {
	n := a.At(i)
	if n == nil {
		return nil
	}
	a.children = slices.Delete(a.children, i, i+1)
	detach(n)
	return n
}

// Empty removes every child and marks the array untouched and pristine.
func (a *Array) Empty() {
	for _, n := range a.children {
		detach(n)
	}
	a.children = nil
	a.status.reset()
}

// Enable enables the array and every descendant.
func (a *Array) Enable() { setDisabled(a, false) }

// Disable disables the array and every descendant.
func (a *Array) Disable() { setDisabled(a, true) }

// HasErrors reports whether the array or any descendant has errors.
func (a *Array) HasErrors() bool {
	return hasErrors(a)
}

func (a *Array) ownership() *status { return &a.status }
