package formtree

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

// Group is a composite node of named children. Keys keep insertion order,
// which is the order used by every traversal.
type Group struct {
	status
	keys       []string
	children   map[string]Node
	validators []Validator

	meta          map[string]any
	metaListeners []MetadataListener
}

var _ GroupNode = (*Group)(nil)

// NewGroup creates a group from entries in order.
// It panics on duplicate keys or on a child that already has a parent, since
// both indicate a tree assembled incorrectly.
func NewGroup(entries ...Entry) *Group {
	g := &Group{children: make(map[string]Node, len(entries))}
	for _, e := range entries {
		if err := g.Add(e.Key, e.Node); err != nil {
			panic(fmt.Errorf("formtree: NewGroup: %w", err))
		}
	}
	return g
}

// WithValidators attaches group-level validators and returns g.
func (g *Group) WithValidators(vs ...Validator) *Group {
	g.validators = append(g.validators, vs...)
	return g
}

func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) Keys() []string { return slices.Clone(g.keys) }

func (g *Group) Child(key string) Node { return g.children[key] }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.keys) }

// Contains reports whether key is present.
func (g *Group) Contains(key string) bool {
	_, ok := g.children[key]
	return ok
}

// Value returns the raw value of every child, including disabled ones.
func (g *Group) Value() any {
	out := make(map[string]any, len(g.keys))
	for _, k := range g.keys {
		out[k] = g.children[k].Value()
	}
	return out
}

// Errors runs the group's own validators against its current value.
func (g *Group) Errors() Errors {
	if g.disabled || len(g.validators) == 0 {
		return nil
	}
	value := g.Value()
	sets := make([]Errors, 0, len(g.validators))
	for _, v := range g.validators {
		sets = append(sets, v(value))
	}
	return MergeErrors(sets...)
}

// Validators returns the group-level validators.
func (g *Group) Validators() []Validator {
	return append([]Validator(nil), g.validators...)
}

// SetValidators replaces the group-level validators.
func (g *Group) SetValidators(vs ...Validator) {
	g.validators = vs
}

func (g *Group) MarkAs(s State, opts MarkOptions) {
	g.status.mark(g, s, opts)
}

// OnStateChange registers fn for non-silent MarkAs calls on the group itself.
func (g *Group) OnStateChange(fn StateListener) func() {
	return g.status.subscribe(fn)
}

// Add appends a child under key.
func (g *Group) Add(key string, n Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node for key %q", ErrInvalidNodeKind, key)
	}
	if _, ok := g.children[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if err := attach(n); err != nil {
		return fmt.Errorf("%w: key %q", err, key)
	}
	if g.children == nil {
		g.children = make(map[string]Node)
	}
	g.keys = append(g.keys, key)
	g.children[key] = n
	return nil
}

// Set replaces the child under key, or appends it when key is new.
// A replaced child is detached and can be attached elsewhere.
func (g *Group) Set(key string, n Node) error {
	old, ok := g.children[key]
	if !ok {
		return g.Add(key, n)
	}
	if n == nil {
		return fmt.Errorf("%w: nil node for key %q", ErrInvalidNodeKind, key)
	}
	if err := attach(n); err != nil {
		return fmt.Errorf("%w: key %q", err, key)
	}
	detach(old)
	g.children[key] = n
	return nil
}

// Remove detaches and returns the child under key, or nil if absent.
// The detached node is left unchanged.
func (g *Group) Remove(key string) Node {
	n, ok := g.children[key]
	if !ok {
		return nil
	}
	delete(g.children, key)
	g.keys = slices.DeleteFunc(g.keys, func(k string) bool { return k == key })
	detach(n)
	return n
}

// Get returns the descendant addressed by path, e.g. "animals[0].type".
func (g *Group) Get(path string) (Node, error) {
	p, err := formpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return Resolve(g, p)
}

// ControlAt returns the control at path, or nil when the path is missing or
// addresses another kind of node.
func (g *Group) ControlAt(path string) *Control {
	n, _ := g.Get(path)
	c, _ := n.(*Control)
	return c
}

// GroupAt returns the group at path, or nil.
func (g *Group) GroupAt(path string) *Group {
	n, _ := g.Get(path)
	child, _ := n.(*Group)
	return child
}

// ArrayAt returns the array at path, or nil.
func (g *Group) ArrayAt(path string) *Array {
	n, _ := g.Get(path)
	a, _ := n.(*Array)
	return a
}

// ValueAt returns the value of the node at path, or nil when it does not exist.
func (g *Group) ValueAt(path string) any {
	n, err := g.Get(path)
	if err != nil {
		return nil
	}
	return n.Value()
}

// Values returns the whole value when no paths are given; otherwise a new
// mapping holding only the requested paths, with nil for missing ones.
func (g *Group) Values(paths ...string) (map[string]any, error) {
	data := g.Value().(map[string]any)
	if len(paths) == 0 {
		return data, nil
	}

	var out map[string]any
	for _, raw := range paths {
		p, err := formpath.Parse(raw)
		if err != nil {
			return nil, err
		}
		v, _ := formpath.Lookup(data, p)
		if out, err = formpath.Set(out, p, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PatchDeep writes matching parts of v into the tree. Keys and positions
// that do not exist in the tree are ignored. A nil v is a no-op.
func (g *Group) PatchDeep(v any) error {
	if v == nil {
		return nil
	}
	return Patch(g, v)
}

// Enable enables the group and every descendant.
func (g *Group) Enable() { setDisabled(g, false) }

// Disable disables the group and every descendant.
func (g *Group) Disable() { setDisabled(g, true) }

// HasErrors reports whether the group or any descendant has errors.
func (g *Group) HasErrors() bool {
	return hasErrors(g)
}

// AllErrors is CollectErrors for this group.
func (g *Group) AllErrors() any {
	return CollectErrors(g)
}

// AllErrorsFlat is CollectErrorsFlat for this group rooted at basePath.
func (g *Group) AllErrorsFlat(basePath string) map[string]Errors {
	return CollectErrorsFlat(g, basePath)
}

func (g *Group) ownership() *status { return &g.status }
