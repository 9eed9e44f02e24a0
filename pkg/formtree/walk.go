package formtree

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

func asGroup(n Node) (GroupNode, error) {
	g, ok := n.(GroupNode)
	if !ok {
		return nil, invalidKind(n)
	}
	return g, nil
}

func asArray(n Node) (ArrayNode, error) {
	a, ok := n.(ArrayNode)
	if !ok {
		return nil, invalidKind(n)
	}
	return a, nil
}

func invalidKind(n Node) error {
	if n == nil {
		return fmt.Errorf("%w: <nil>", ErrInvalidNodeKind)
	}
	return fmt.Errorf("%w: %T reports kind %s", ErrInvalidNodeKind, n, n.Kind())
}

// each calls fn for every direct child of n in order. Leaves have no children.
func each(n Node, fn func(key string, index int, child Node) error) error {
	switch n.Kind() {
	case KindLeaf:
		return nil
	case KindGroup:
		g, err := asGroup(n)
		if err != nil {
			return err
		}
		for _, k := range g.Keys() {
			if err := fn(k, -1, g.Child(k)); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		a, err := asArray(n)
		if err != nil {
			return err
		}
		for i := 0; i < a.Len(); i++ {
			if err := fn("", i, a.At(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalidKind(n)
	}
}

// Resolve walks p from n, following keys into groups and indexes into arrays.
func Resolve(n Node, p formpath.Path) (Node, error) {
	cur := n
	for i, s := range p {
		var next Node
		if s.IsIndex {
			if cur.Kind() == KindArray {
				if a, err := asArray(cur); err == nil {
					next = a.At(s.Index)
				}
			}
		} else if cur.Kind() == KindGroup {
			if g, err := asGroup(cur); err == nil {
				next = g.Child(s.Key)
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, p[:i+1].String())
		}
		cur = next
	}
	return cur, nil
}

// Patch writes the parts of v that match the shape of n: mapping keys into
// group children, slice positions into array children, anything else into
// leaves. Unmatched keys and positions are ignored.
func Patch(n Node, v any) error {
	switch n.Kind() {
	case KindLeaf:
		if s, ok := n.(interface{ SetValue(any) }); ok {
			s.SetValue(v)
		}
		return nil
	case KindGroup:
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		return each(n, func(key string, _ int, child Node) error {
			if x, ok := m[key]; ok {
				return Patch(child, x)
			}
			return nil
		})
	case KindArray:
		s, ok := v.([]any)
		if !ok {
			return nil
		}
		return each(n, func(_ string, i int, child Node) error {
			if i < len(s) {
				return Patch(child, s[i])
			}
			return nil
		})
	default:
		return invalidKind(n)
	}
}

// Reset sets every node in the tree untouched and pristine and every leaf
// value to nil. Notifications are suppressed.
func Reset(n Node) error {
	quiet := MarkOptions{Silent: true}
	n.MarkAs(StateUntouched, quiet)
	n.MarkAs(StatePristine, quiet)
	if n.Kind() == KindLeaf {
		if s, ok := n.(interface{ SetValue(any) }); ok {
			s.SetValue(nil)
		}
		return nil
	}
	return each(n, func(_ string, _ int, child Node) error {
		return Reset(child)
	})
}

// Validate clears the pending flag on every node that supports it and
// reports whether the tree, including group-level validators, is valid.
func Validate(n Node) (bool, error) {
	if err := settle(n); err != nil {
		return false, err
	}
	return !hasErrors(n), nil
}

func settle(n Node) error {
	if o, ok := n.(interface{ ownership() *status }); ok {
		o.ownership().pending = false
	}
	return each(n, func(_ string, _ int, child Node) error {
		return settle(child)
	})
}

func setDisabled(n Node, disabled bool) {
	s := StateEnabled
	if disabled {
		s = StateDisabled
	}
	n.MarkAs(s, MarkOptions{})
	_ = each(n, func(_ string, _ int, child Node) error {
		setDisabled(child, disabled)
		return nil
	})
}

func hasErrors(n Node) bool {
	if len(n.Errors()) > 0 {
		return true
	}
	found := false
	_ = each(n, func(_ string, _ int, child Node) error {
		if hasErrors(child) {
			found = true
		}
		return nil
	})
	return found
}
