package formschema

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Compiler turns form definitions into formtree nodes.
type Compiler struct {
	registry Registry
	log      *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for debug output while compiling.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// WithValidator registers a custom validator factory under name, replacing
// a built-in one with the same name.
func WithValidator(name string, fn Factory) Option {
	return func(c *Compiler) {
		c.registry.Register(name, fn)
	}
}

// NewCompiler returns a compiler with the built-in validators.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		registry: NewRegistry(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("formschema"))
	return c
}

// Validators lists the names the compiler understands.
func (c *Compiler) Validators() []string {
	return c.registry.Names()
}

// Compile parses data and builds the form. The root must be a group.
func (c *Compiler) Compile(data []byte) (*formtree.Group, error) {
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if def.Kind != formtree.KindGroup {
		return nil, fmt.Errorf("%w: root must be a group, got %s", ErrInvalidDefinition, def.Kind)
	}
	n, err := c.Build(def)
	if err != nil {
		return nil, err
	}
	return n.(*formtree.Group), nil
}

// CompileFile reads and compiles the definition stored at path.
func (c *Compiler) CompileFile(path string) (*formtree.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form definition: %w", err)
	}
	g, err := c.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.log.Debug("form definition compiled", logger.File(path), logger.Count(g.Len()))
	return g, nil
}

// Build turns a parsed definition into a node.
func (c *Compiler) Build(def *Definition) (formtree.Node, error) {
	return c.build(def, "")
}

func (c *Compiler) build(def *Definition, path string) (formtree.Node, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: %s: missing definition", ErrInvalidDefinition, displayPath(path))
	}
	vs, err := c.validators(def.Validators, path)
	if err != nil {
		return nil, err
	}

	var n formtree.Node
	switch def.Kind {
	case formtree.KindLeaf:
		n = formtree.NewControl(def.Value, vs...)

	case formtree.KindGroup:
		g := formtree.NewGroup().WithValidators(vs...)
		for _, child := range def.Controls {
			cn, err := c.build(child.Definition, formpath.JoinKey(path, child.Key))
			if err != nil {
				return nil, err
			}
			if err := g.Add(child.Key, cn); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, displayPath(path), err)
			}
		}
		if def.Metadata != nil {
			g.SetMetadata(def.Metadata)
		}
		n = g

	case formtree.KindArray:
		a := formtree.NewArray().WithValidators(vs...)
		for i, item := range def.Items {
			cn, err := c.build(item, formpath.JoinIndex(path, i))
			if err != nil {
				return nil, err
			}
			if err := a.Push(cn); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, displayPath(path), err)
			}
		}
		n = a

	default:
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidDefinition, displayPath(path), def.Kind)
	}

	applyFlags(n, def)
	c.log.Debug("node compiled",
		logger.Path(path),
		logger.Kind(def.Kind.String()),
		logger.Count(len(vs)),
	)
	return n, nil
}

func (c *Compiler) validators(specs []ValidatorSpec, path string) ([]formtree.Validator, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]formtree.Validator, 0, len(specs))
	for _, spec := range specs {
		v, err := c.registry.Build(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayPath(path), err)
		}
		c.log.Debug("validator attached", logger.Path(path), logger.Validator(spec.Name))
		out = append(out, v)
	}
	return out, nil
}

type disabler interface {
	Disable()
}

// applyFlags sets the initial state silently. Disabling a composite
// disables its whole subtree.
func applyFlags(n formtree.Node, def *Definition) {
	silent := formtree.MarkOptions{Silent: true, OnlySelf: true}
	if def.Touched {
		n.MarkAs(formtree.StateTouched, silent)
	}
	if def.Dirty {
		n.MarkAs(formtree.StateDirty, silent)
	}
	if def.Pending {
		n.MarkAs(formtree.StatePending, silent)
	}
	if def.Disabled {
		if d, ok := n.(disabler); ok {
			d.Disable()
		}
	}
}

// Compile builds a form from data with the default compiler.
func Compile(data []byte) (*formtree.Group, error) {
	return NewCompiler().Compile(data)
}

// CompileFile builds a form from the file at path with the default compiler.
func CompileFile(path string) (*formtree.Group, error) {
	return NewCompiler().CompileFile(path)
}

// DecodeValues reads a YAML or JSON values document, as accepted by
// formtree.Group.PatchDeep. An empty document yields an empty mapping.
func DecodeValues(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidValues, v)
	}
	return m, nil
}

// DecodeValuesFile reads a values document from path.
func DecodeValuesFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return DecodeValues(data)
}
