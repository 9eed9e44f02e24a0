package formschema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// Definition describes one node of a form before it is compiled.
type Definition struct {
	Kind       formtree.Kind
	Value      any
	Validators []ValidatorSpec
	// Controls keeps group children in document order.
	Controls []NamedDefinition
	Items    []*Definition
	Metadata map[string]any

	Touched  bool
	Dirty    bool
	Pending  bool
	Disabled bool
}

// NamedDefinition is a group child.
type NamedDefinition struct {
	Key        string
	Definition *Definition
}

// ValidatorSpec names a registered validator and its raw arguments.
type ValidatorSpec struct {
	Name string
	Args any
}

// A mapping holding one of these keys, or a "type" naming a node kind, is
// read as a definition. Any other mapping is a group of its entries, so a
// field called "type" or "disabled" still works as plain data.
var (
	definitionKeys = []string{"value", "validators", "controls", "items"}
	kindNames      = []string{"control", "leaf", "group", "array"}
)

// Parse reads a YAML or JSON form definition.
//
// Scalars are shorthand for controls holding that value, sequences for
// arrays and plain mappings for groups. A mapping with reserved keys is a
// full definition:
//
//	email:
//	  value: ""
//	  validators: [required, email]
//	tags:
//	  type: array
//	  items: [go, yaml]
//	  validators:
//	    - maxLength: 5
func Parse(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}
	return parseNode(doc.Content[0], "")
}

func parseNode(n *yaml.Node, path string) (*Definition, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, invalid(path, n, err.Error())
		}
		return &Definition{Kind: formtree.KindLeaf, Value: v}, nil

	case yaml.SequenceNode:
		items, err := parseItems(n, path)
		if err != nil {
			return nil, err
		}
		return &Definition{Kind: formtree.KindArray, Items: items}, nil

	case yaml.MappingNode:
		if isDefinition(n) {
			return parseDefinition(n, path)
		}
		controls, err := parseControls(n, path)
		if err != nil {
			return nil, err
		}
		return &Definition{Kind: formtree.KindGroup, Controls: controls}, nil
	}
	return nil, invalid(path, n, "unsupported node")
}

func parseDefinition(n *yaml.Node, path string) (*Definition, error) {
	def := &Definition{}
	var (
		kind     string
		hasValue bool
	)
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolveAlias(n.Content[i+1])
		var err error
		switch key {
		case "type":
			err = val.Decode(&kind)
		case "value":
			hasValue = true
			err = val.Decode(&def.Value)
		case "validators":
			def.Validators, err = parseValidators(val, path)
		case "controls":
			if val.Kind != yaml.MappingNode {
				return nil, invalid(path, val, "controls must be a mapping")
			}
			def.Controls, err = parseControls(val, path)
			if def.Controls == nil {
				def.Controls = []NamedDefinition{}
			}
		case "items":
			if val.Kind != yaml.SequenceNode {
				return nil, invalid(path, val, "items must be a sequence")
			}
			def.Items, err = parseItems(val, path)
			if def.Items == nil {
				def.Items = []*Definition{}
			}
		case "metadata":
			if val.Kind != yaml.MappingNode {
				return nil, invalid(path, val, "metadata must be a mapping")
			}
			err = val.Decode(&def.Metadata)
		case "touched":
			err = val.Decode(&def.Touched)
		case "dirty":
			err = val.Decode(&def.Dirty)
		case "pending":
			err = val.Decode(&def.Pending)
		case "disabled":
			err = val.Decode(&def.Disabled)
		default:
			return nil, invalid(path, n.Content[i], fmt.Sprintf("unknown key %q", key))
		}
		if err != nil {
			return nil, wrap(path, err)
		}
	}

	switch kind {
	case "":
		switch {
		case def.Controls != nil:
			def.Kind = formtree.KindGroup
		case def.Items != nil:
			def.Kind = formtree.KindArray
		default:
			def.Kind = formtree.KindLeaf
		}
	case "control", "leaf":
		def.Kind = formtree.KindLeaf
	case "group":
		def.Kind = formtree.KindGroup
	case "array":
		def.Kind = formtree.KindArray
	default:
		return nil, invalid(path, n, fmt.Sprintf("unknown type %q", kind))
	}

	switch def.Kind {
	case formtree.KindLeaf:
		if def.Controls != nil || def.Items != nil {
			return nil, invalid(path, n, "a control cannot have controls or items")
		}
	case formtree.KindGroup:
		if def.Items != nil || hasValue {
			return nil, invalid(path, n, "a group takes controls, not items or value")
		}
	case formtree.KindArray:
		if def.Controls != nil || hasValue {
			return nil, invalid(path, n, "an array takes items, not controls or value")
		}
	}
	if def.Metadata != nil && def.Kind != formtree.KindGroup {
		return nil, invalid(path, n, "only groups carry metadata")
	}
	return def, nil
}

func parseControls(n *yaml.Node, path string) ([]NamedDefinition, error) {
	var out []NamedDefinition
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if seen[key] {
			return nil, invalid(path, n.Content[i], fmt.Sprintf("duplicate key %q", key))
		}
		seen[key] = true
		child, err := parseNode(n.Content[i+1], formpath.JoinKey(path, key))
		if err != nil {
			return nil, err
		}
		out = append(out, NamedDefinition{Key: key, Definition: child})
	}
	return out, nil
}

func parseItems(n *yaml.Node, path string) ([]*Definition, error) {
	var out []*Definition
	for i, item := range n.Content {
		child, err := parseNode(item, formpath.JoinIndex(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// parseValidators accepts a single name or a list whose entries are names or
// single-key mappings of name to arguments.
func parseValidators(n *yaml.Node, path string) ([]ValidatorSpec, error) {
	if n.Kind == yaml.ScalarNode {
		return []ValidatorSpec{{Name: n.Value}}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, invalid(path, n, "validators must be a name or a list")
	}
	specs := make([]ValidatorSpec, 0, len(n.Content))
	for _, entry := range n.Content {
		entry = resolveAlias(entry)
		switch entry.Kind {
		case yaml.ScalarNode:
			specs = append(specs, ValidatorSpec{Name: entry.Value})
		case yaml.MappingNode:
			if len(entry.Content) != 2 {
				return nil, invalid(path, entry, "a validator entry maps exactly one name to its arguments")
			}
			var args any
			if err := entry.Content[1].Decode(&args); err != nil {
				return nil, wrap(path, err)
			}
			specs = append(specs, ValidatorSpec{Name: entry.Content[0].Value, Args: args})
		default:
			return nil, invalid(path, entry, "unsupported validator entry")
		}
	}
	return specs, nil
}

func isDefinition(n *yaml.Node) bool {
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolveAlias(n.Content[i+1])
		if slices.Contains(definitionKeys, key) {
			return true
		}
		if key == "type" && val.Kind == yaml.ScalarNode && slices.Contains(kindNames, val.Value) {
			return true
		}
	}
	return false
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func invalid(path string, n *yaml.Node, reason string) error {
	return fmt.Errorf("%w: %s (line %d): %s", ErrInvalidDefinition, displayPath(path), n.Line, reason)
}

func wrap(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, displayPath(path), err)
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
