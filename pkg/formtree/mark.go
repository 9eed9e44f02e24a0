package formtree

import "fmt"

// MarkAll applies the state transition to n and then to every descendant,
// node before children. opts is passed unchanged to each MarkAs call.
func MarkAll(n Node, s State, opts MarkOptions) error {
	if !s.Markable() {
		return fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	return markAll(n, s, opts)
}

func markAll(n Node, s State, opts MarkOptions) error {
	switch n.Kind() {
	case KindLeaf, KindGroup, KindArray:
	default:
		return invalidKind(n)
	}
	n.MarkAs(s, opts)
	return each(n, func(_ string, _ int, child Node) error {
		return markAll(child, s, opts)
	})
}

// Marked is the result of ExtractByMark. Value is meaningful only when
// Present is true.
type Marked struct {
	Present bool
	Value   any
}

// ExtractByMark collects the values of the leaves carrying state s:
//
//   - a leaf is present when it has the flag, with its value;
//   - a group is always present, with a mapping of its present children;
//   - an array is always present, with its present children's values in
//     order; absent children are dropped, not replaced with nil.
func ExtractByMark(n Node, s State) (Marked, error) {
	if !s.Markable() {
		return Marked{}, fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	return extract(n, s)
}

func extract(n Node, s State) (Marked, error) {
	switch n.Kind() {
	case KindLeaf:
		if !n.Is(s) {
			return Marked{}, nil
		}
		return Marked{Present: true, Value: n.Value()}, nil

	case KindGroup:
		out := make(map[string]any)
		err := each(n, func(key string, _ int, child Node) error {
			m, err := extract(child, s)
			if err != nil {
				return err
			}
			if m.Present {
				out[key] = m.Value
			}
			return nil
		})
		if err != nil {
			return Marked{}, err
		}
		return Marked{Present: true, Value: out}, nil

	case KindArray:
		out := make([]any, 0)
		err := each(n, func(_ string, _ int, child Node) error {
			m, err := extract(child, s)
			if err != nil {
				return err
			}
			if m.Present {
				out = append(out, m.Value)
			}
			return nil
		})
		if err != nil {
			return Marked{}, err
		}
		return Marked{Present: true, Value: out}, nil

	default:
		return Marked{}, invalidKind(n)
	}
}

func markedValue(n Node, s State) any {
	m, err := ExtractByMark(n, s)
	if err != nil || !m.Present {
		return nil
	}
	return m.Value
}

// TouchedValues returns the values of touched leaves, shaped like the group.
func (g *Group) TouchedValues() map[string]any { return asMap(markedValue(g, StateTouched)) }

// UntouchedValues returns the values of untouched leaves.
func (g *Group) UntouchedValues() map[string]any { return asMap(markedValue(g, StateUntouched)) }

// DirtyValues returns the values of dirty leaves.
func (g *Group) DirtyValues() map[string]any { return asMap(markedValue(g, StateDirty)) }

// PristineValues returns the values of pristine leaves.
func (g *Group) PristineValues() map[string]any { return asMap(markedValue(g, StatePristine)) }

// PendingValues returns the values of pending leaves.
func (g *Group) PendingValues() map[string]any { return asMap(markedValue(g, StatePending)) }

// MarkAllAs applies s to the group and all its descendants.
func (g *Group) MarkAllAs(s State, opts MarkOptions) error { return MarkAll(g, s, opts) }

// TouchedValues returns the values of touched leaves, in order.
func (a *Array) TouchedValues() []any { return asSlice(markedValue(a, StateTouched)) }

// UntouchedValues returns the values of untouched leaves.
func (a *Array) UntouchedValues() []any { return asSlice(markedValue(a, StateUntouched)) }

// DirtyValues returns the values of dirty leaves.
func (a *Array) DirtyValues() []any { return asSlice(markedValue(a, StateDirty)) }

// PristineValues returns the values of pristine leaves.
func (a *Array) PristineValues() []any { return asSlice(markedValue(a, StatePristine)) }

// PendingValues returns the values of pending leaves.
func (a *Array) PendingValues() []any { return asSlice(markedValue(a, StatePending)) }

// MarkAllAs applies s to the array and all its descendants.
func (a *Array) MarkAllAs(s State, opts MarkOptions) error { return MarkAll(a, s, opts) }

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
