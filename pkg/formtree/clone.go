package formtree

import "slices"

// CloneMode selects how CloneOptions.Keys is read.
type CloneMode int

const (
	// CloneExclude copies every key except the listed ones.
	CloneExclude CloneMode = iota
	// CloneOnly copies the listed keys and nothing else.
	CloneOnly
)

// CloneOptions controls Clone.
type CloneOptions struct {
	Keys []string
	Mode CloneMode
	// Reset runs after the copy: every node untouched and pristine, leaf values nil.
	Reset bool
}

// Clone deep-copies a group into a new, independent Group. Leaves keep their
// value, flags and validators; group metadata is copied; state listeners are
// not. The source tree is never modified.
func Clone(g GroupNode, opts CloneOptions) (*Group, error) {
	if g == nil || g.Kind() != KindGroup {
		return nil, invalidKind(g)
	}

	out := &Group{children: make(map[string]Node)}
	out.copyFlags(g)
	if src, ok := g.(*Group); ok {
		out.validators = slices.Clone(src.validators)
	}
	if md, ok := g.(interface{ Metadata() map[string]any }); ok {
		if m := md.Metadata(); m != nil {
			out.meta = copyValue(m).(map[string]any)
		}
	}

	for _, k := range g.Keys() {
		listed := slices.Contains(opts.Keys, k)
		if (opts.Mode == CloneExclude && listed) || (opts.Mode == CloneOnly && !listed) {
			continue
		}
		child, err := CloneNode(g.Child(k))
		if err != nil {
			return nil, err
		}
		if err := out.Add(k, child); err != nil {
			return nil, err
		}
	}

	if opts.Reset {
		if err := Reset(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CloneNode deep-copies any node into the concrete Control, Group and Array types.
func CloneNode(n Node) (Node, error) {
	if n == nil {
		return nil, invalidKind(n)
	}

	switch n.Kind() {
	case KindLeaf:
		c := &Control{value: copyValue(n.Value())}
		c.copyFlags(n)
		if src, ok := n.(*Control); ok {
			c.validators = slices.Clone(src.validators)
			c.external = MergeErrors(src.external)
		}
		return c, nil

	case KindGroup:
		g, err := asGroup(n)
		if err != nil {
			return nil, err
		}
		out, err := Clone(g, CloneOptions{})
		if err != nil {
			return nil, err
		}
		return out, nil

	case KindArray:
		a, err := asArray(n)
		if err != nil {
			return nil, err
		}
		out := &Array{}
		out.copyFlags(n)
		if src, ok := n.(*Array); ok {
			out.validators = slices.Clone(src.validators)
		}
		for i := 0; i < a.Len(); i++ {
			child, err := CloneNode(a.At(i))
			if err != nil {
				return nil, err
			}
			if err := out.Push(child); err != nil {
				return nil, err
			}
		}
		return out, nil

	default:
		return nil, invalidKind(n)
	}
}

// Clone is Clone for this group without exclusions.
func (g *Group) Clone() (*Group, error) {
	return Clone(g, CloneOptions{})
}

// Empty resets every descendant to nil, untouched and pristine.
func (g *Group) Empty() {
	_ = Reset(g)
}
