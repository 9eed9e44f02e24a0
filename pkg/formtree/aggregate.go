package formtree

import "github.com/dmitrymomot/formkit/pkg/formpath"

// SelfKey holds a composite node's own errors when CollectOptions.IncludeSelf is set.
const SelfKey = "$self"

// CollectOptions tunes the error collectors.
type CollectOptions struct {
	// IncludeSelf adds the errors of group- and array-level validators.
	// By default only leaf errors are collected.
	IncludeSelf bool
}

// CollectErrors returns the errors of every leaf under n in a structure that
// mirrors the tree, or nil when there are none:
//
//   - a leaf yields its error set, or nil when it is valid;
//   - a group yields a mapping of the children with errors, or nil when no
//     child has any (error-free branches are left out, never kept empty);
//   - an array yields the ordered non-empty mappings produced by its
//     children. The result is compacted, so positions are not preserved, and
//     it may be empty but is never nil. Only mappings are kept, so the
//     errors of an array nested directly in an array are dropped; use
//     CollectErrorsFlat or HasErrors for such trees.
//
// A node whose kind does not match its capabilities is treated as a leaf.
func CollectErrors(n Node) any {
	return CollectErrorsWith(n, CollectOptions{})
}

// CollectErrorsWith is CollectErrors with options.
func CollectErrorsWith(n Node, opts CollectOptions) any {
	switch n.Kind() {
	case KindGroup:
		if g, err := asGroup(n); err == nil {
			return collectGroup(g, opts)
		}
	case KindArray:
		if a, err := asArray(n); err == nil {
			return collectArray(a, opts)
		}
	}
	if e := n.Errors(); len(e) > 0 {
		return e
	}
	return nil
}

func collectGroup(g GroupNode, opts CollectOptions) any {
	out := make(map[string]any)
	for _, k := range g.Keys() {
		r := CollectErrorsWith(g.Child(k), opts)
		if r == nil {
			continue
		}
		if s, ok := r.([]any); ok && len(s) == 0 {
			continue
		}
		out[k] = r
	}
	if opts.IncludeSelf {
		if e := g.Errors(); len(e) > 0 {
			out[SelfKey] = e
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func collectArray(a ArrayNode, opts CollectOptions) any {
	out := make([]any, 0)
	for i := 0; i < a.Len(); i++ {
		r := CollectErrorsWith(a.At(i), opts)
		switch m := r.(type) {
		case Errors:
			if len(m) > 0 {
				out = append(out, m)
			}
		case map[string]any:
			if len(m) > 0 {
				out = append(out, m)
			}
		}
	}
	if opts.IncludeSelf {
		if e := a.Errors(); len(e) > 0 {
			return map[string]any{SelfKey: e, "items": out}
		}
	}
	return out
}

// CollectErrorsFlat lists the error set of every invalid leaf under n keyed
// by its full path. Group children extend the path with ".key" (or "key" at
// the root) and array children with "[i]". Valid leaves and intermediate
// branches produce no entries.
func CollectErrorsFlat(n Node, basePath string) map[string]Errors {
	return CollectErrorsFlatWith(n, basePath, CollectOptions{})
}

// CollectErrorsFlatWith is CollectErrorsFlat with options. With IncludeSelf,
// composite nodes with their own errors are listed under their own path.
func CollectErrorsFlatWith(n Node, basePath string, opts CollectOptions) map[string]Errors {
	out := make(map[string]Errors)
	collectFlat(n, basePath, opts, out)
	return out
}

func collectFlat(n Node, path string, opts CollectOptions, out map[string]Errors) {
	switch n.Kind() {
	case KindGroup, KindArray:
		if opts.IncludeSelf {
			if e := n.Errors(); len(e) > 0 {
				out[path] = e
			}
		}
		err := each(n, func(key string, i int, child Node) error {
			if i < 0 {
				collectFlat(child, formpath.JoinKey(path, key), opts, out)
			} else {
				collectFlat(child, formpath.JoinIndex(path, i), opts, out)
			}
			return nil
		})
		if err == nil {
			return
		}
	}
	if e := n.Errors(); len(e) > 0 {
		out[path] = e
	}
}
