package formschema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/formkit/pkg/condition"
	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Factory builds a validator from the arguments written next to its name in
// a definition. Args is nil when the validator is named without arguments.
type Factory func(args any) (formtree.Validator, error)

// Registry maps validator names to factories.
// Not thread-safe: register all factories before compiling.
type Registry map[string]Factory

// NewRegistry returns a registry holding the built-in validators.
func NewRegistry() Registry {
	r := make(Registry, len(builtins))
	maps.Copy(r, builtins)
	return r
}

// Register sets or replaces the factory for name. Panics if fn is nil.
func (r Registry) Register(name string, fn Factory) {
	if fn == nil {
		panic(fmt.Sprintf("formschema: factory for validator %q cannot be nil", name))
	}
	r[name] = fn
}

// Names returns the registered validator names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Build resolves spec against the registry.
func (r Registry) Build(spec ValidatorSpec) (formtree.Validator, error) {
	fn, ok := r[spec.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, spec.Name)
	}
	v, err := fn(spec.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return v, nil
}

var builtins = map[string]Factory{
	"required":  noArgs(validator.Required),
	"email":     noArgs(validator.Email),
	"ssn":       noArgs(validator.SSN),
	"usZip":     noArgs(validator.USZip),
	"usPhone":   noArgs(validator.USPhone),
	"uuid":      noArgs(validator.UUID),
	"min":       numberArg(validator.Min),
	"max":       numberArg(validator.Max),
	"minLength": intArg(validator.MinLength),
	"maxLength": intArg(validator.MaxLength),
	"pattern":   patternFactory,
	"inArray":   inArrayFactory,
	"inObjectKey": func(args any) (formtree.Validator, error) {
		m, err := decodeArgs[map[string]any](args)
		if err != nil {
			return nil, err
		}
		return validator.InObjectKey(m), nil
	},
	"inObject": inObjectFactory,
	"inEnum": func(args any) (formtree.Validator, error) {
		m, err := decodeArgs[map[string]any](args)
		if err != nil {
			return nil, err
		}
		return validator.InEnum(m), nil
	},
	"inEnumKey": func(args any) (formtree.Validator, error) {
		m, err := decodeArgs[map[string]any](args)
		if err != nil {
			return nil, err
		}
		return validator.InEnumKey(m), nil
	},
	"solveAll":  solveFactory(condition.ModeAll),
	"solveSome": solveFactory(condition.ModeSome),
	"solveNone": solveFactory(condition.ModeNone),
	"solveOne":  solveFactory(condition.ModeOne),
}

// noArgs accepts a bare name or "name: true".
func noArgs(build func() formtree.Validator) Factory {
	return func(args any) (formtree.Validator, error) {
		if args != nil && args != true {
			return nil, fmt.Errorf("%w: takes no arguments, got %v", ErrInvalidArgs, args)
		}
		return build(), nil
	}
}

func numberArg(build func(float64) formtree.Validator) Factory {
	return func(args any) (formtree.Validator, error) {
		if args == nil {
			return nil, fmt.Errorf("%w: a number is required", ErrInvalidArgs)
		}
		n, err := decodeArgs[float64](args)
		if err != nil {
			return nil, err
		}
		return build(n), nil
	}
}

func intArg(build func(int) formtree.Validator) Factory {
	return func(args any) (formtree.Validator, error) {
		if args == nil {
			return nil, fmt.Errorf("%w: a length is required", ErrInvalidArgs)
		}
		n, err := decodeArgs[int](args)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidArgs, n)
		}
		return build(n), nil
	}
}

func patternFactory(args any) (formtree.Validator, error) {
	expr, ok := args.(string)
	if !ok {
		return nil, fmt.Errorf("%w: pattern must be a string, got %T", ErrInvalidArgs, args)
	}
	v, err := validator.Pattern(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return v, nil
}

func inArrayFactory(args any) (formtree.Validator, error) {
	list, ok := args.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: inArray takes a list, got %T", ErrInvalidArgs, args)
	}
	return validator.InArray(list), nil
}

type inObjectArgs struct {
	Object any    `mapstructure:"object"`
	Path   string `mapstructure:"path"`
}

func inObjectFactory(args any) (formtree.Validator, error) {
	a, err := decodeArgs[inObjectArgs](args)
	if err != nil {
		return nil, err
	}
	if a.Object == nil {
		return nil, fmt.Errorf("%w: inObject needs an object", ErrInvalidArgs)
	}
	if _, err := formpath.Parse(a.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return validator.InObject(a.Object, a.Path), nil
}

// conditionArgs is the mapping form of a condition: either
// {left, op, right} comparing two paths or {path, op, value} comparing a
// path with a fixed value.
type conditionArgs struct {
	Left  string `mapstructure:"left"`
	Right string `mapstructure:"right"`
	Path  string `mapstructure:"path"`
	Op    string `mapstructure:"op"`
	Value any    `mapstructure:"value"`
}

// solveFactory reads a list of conditions. Each entry is a
// [left, op, right] triple, an expr-lang string or a conditionArgs mapping.
func solveFactory(m condition.Mode) Factory {
	return func(args any) (formtree.Validator, error) {
		list, ok := args.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s takes a list of conditions, got %T", ErrInvalidArgs, m.Tag(), args)
		}
		conds := make([]condition.Condition, 0, len(list))
		for i, raw := range list {
			c, err := parseCondition(raw)
			if err != nil {
				return nil, fmt.Errorf("condition %d: %w", i, err)
			}
			conds = append(conds, c)
		}
		return condition.Validator(m, conds...), nil
	}
}

func parseCondition(raw any) (condition.Condition, error) {
	switch c := raw.(type) {
	case string:
		e, err := condition.Expr(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		return e, nil
	case []any:
		parts, err := decodeArgs[[]string](c)
		if err != nil {
			return nil, err
		}
		r, err := condition.ParseTriple(parts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		return r, nil
	case map[string]any:
		a, err := decodeArgs[conditionArgs](c)
		if err != nil {
			return nil, err
		}
		if a.Left != "" {
			r, err := condition.NewRelation(a.Left, a.Op, a.Right)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
			return r, nil
		}
		r, err := condition.NewValueRelation(a.Path, a.Op, a.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: unsupported condition %T", ErrInvalidArgs, raw)
}

// decodeArgs converts raw YAML arguments into T with weak typing, so "5"
// decodes into a number and unknown mapping keys are rejected.
func decodeArgs[T any](args any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(args); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return out, nil
}
