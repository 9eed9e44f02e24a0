package formtree

import (
	"maps"
	"slices"
	"strings"
)

// Node is the contract every tree algorithm in this package depends on.
// Control, Group and Array implement it; host integrations may supply their
// own implementations as long as Kind agrees with the capability interfaces
// (GroupNode for KindGroup, ArrayNode for KindArray).
type Node interface {
	Kind() Kind
	// Value returns the current value: the raw value for a leaf, a
	// map[string]any for a group and a []any for an array.
	Value() any
	// Errors returns the node's own validation errors, nil when valid.
	Errors() Errors
	// Is reports whether the state flag is set.
	Is(s State) bool
	// MarkAs applies a state transition to this node only.
	MarkAs(s State, opts MarkOptions)
}

// GroupNode is implemented by nodes of KindGroup.
type GroupNode interface {
	Node
	Keys() []string
	Child(key string) Node
}

// ArrayNode is implemented by nodes of KindArray.
type ArrayNode interface {
	Node
	Len() int
	At(i int) Node
}

// Validator inspects a value and returns nil when it is valid.
type Validator func(value any) Errors

// StateListener observes state transitions applied with MarkAs.
type StateListener func(n Node, s State, opts MarkOptions)

// Errors is a validation error set: error kind to detail.
type Errors map[string]any

// Detail keys that describe a failure rather than name one.
const (
	KeyOK           = "ok"
	KeyActualValue  = "actualValue"
	KeyActualLength = "actualLength"
	KeyError        = "error"
)

const expectedSuffix = "Expected"

var detailKeys = map[string]bool{
	KeyOK:           true,
	KeyActualValue:  true,
	KeyActualLength: true,
	KeyError:        true,
}

// ExpectedKey returns the detail key holding the parameter of a failure
// kind, e.g. "minExpected" for "min". Merging two failures keeps both
// parameters.
func ExpectedKey(kind string) string {
	return kind + expectedSuffix
}

// NewFailure builds the tagged failure object shared by all validators:
// {ok: false, <tag>: false, actualValue: actual}.
func NewFailure(tag string, actual any) Errors {
	return Errors{
		KeyOK:          false,
		tag:            false,
		KeyActualValue: actual,
	}
}

// With returns e with key set to v. It allocates when e is nil.
func (e Errors) With(key string, v any) Errors {
	if e == nil {
		e = make(Errors)
	}
	e[key] = v
	return e
}

// WithExpected records the parameter of the failure kind under ExpectedKey(kind).
func (e Errors) WithExpected(kind string, v any) Errors {
	return e.With(ExpectedKey(kind), v)
}

// Expected returns the parameter recorded for the failure kind.
func (e Errors) Expected(kind string) (any, bool) {
	v, ok := e[ExpectedKey(kind)]
	return v, ok
}

// Kinds returns the sorted failure kinds in the set, leaving out detail keys.
func (e Errors) Kinds() []string {
	kinds := make([]string, 0, len(e))
	for k := range e {
		if !e.isDetail(k) {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	return kinds
}

func (e Errors) isDetail(k string) bool {
	if detailKeys[k] {
		return true
	}
	kind, ok := strings.CutSuffix(k, expectedSuffix)
	if !ok || kind == "" {
		return false
	}
	_, tagged := e[kind]
	return tagged
}

// MergeErrors combines error sets; later sets win on key conflicts.
// It returns nil when every set is empty.
func MergeErrors(sets ...Errors) Errors {
	var out Errors
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}
		if out == nil {
			out = make(Errors, len(set))
		}
		maps.Copy(out, set)
	}
	return out
}

// Entry pairs a group key with its child node.
type Entry struct {
	Key  string
	Node Node
}

// Field is shorthand for building a group Entry.
func Field(key string, n Node) Entry {
	return Entry{Key: key, Node: n}
}

// status holds the state flags and listeners shared by the concrete nodes.
type status struct {
	touched   bool
	dirty     bool
	pending   bool
	disabled  bool
	attached  bool
	listeners []StateListener
}

func (s *status) Is(st State) bool {
	switch st {
	case StateTouched:
		return s.touched
	case StateUntouched:
		return !s.touched
	case StateDirty:
		return s.dirty
	case StatePristine:
		return !s.dirty
	case StatePending:
		return s.pending
	case StateDisabled:
		return s.disabled
	case StateEnabled:
		return !s.disabled
	}
	return false
}

func (s *status) mark(self Node, st State, opts MarkOptions) {
	switch st {
	case StateTouched:
		s.touched = true
	case StateUntouched:
		s.touched = false
	case StateDirty:
		s.dirty = true
	case StatePristine:
		s.dirty = false
	case StatePending:
		s.pending = true
	case StateDisabled:
		s.disabled = true
	case StateEnabled:
		s.disabled = false
	default:
		return
	}
	if opts.Silent {
		return
	}
	for _, fn := range s.listeners {
		if fn != nil {
			fn(self, st, opts)
		}
	}
}

func (s *status) subscribe(fn StateListener) func() {
	s.listeners = append(s.listeners, fn)
	i := len(s.listeners) - 1
	return func() {
		if i < len(s.listeners) {
			s.listeners[i] = nil
		}
	}
}

func (s *status) reset() {
	s.touched = false
	s.dirty = false
}

func (s *status) copyFlags(n Node) {
	s.touched = n.Is(StateTouched)
	s.dirty = n.Is(StateDirty)
	s.pending = n.Is(StatePending)
	s.disabled = n.Is(StateDisabled)
}

// attach marks n as owned by a parent. Nodes from other implementations are
// accepted without ownership tracking.
func attach(n Node) error {
	o, ok := n.(interface{ ownership() *status })
	if !ok {
		return nil
	}
	st := o.ownership()
	if st.attached {
		return ErrAlreadyAttached
	}
	st.attached = true
	return nil
}

func detach(n Node) {
	if o, ok := n.(interface{ ownership() *status }); ok {
		o.ownership().attached = false
	}
}
