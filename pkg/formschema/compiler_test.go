package formschema_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/formschema"
	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestCompileFile(t *testing.T) {
	g, err := formschema.CompileFile("testdata/users.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"company", "seats", "users"}, g.Keys())
	assert.Equal(t, map[string]any{
		"title":  "Invite users",
		"layout": map[string]any{"columns": 2},
	}, g.Metadata())

	t.Run("initial errors", func(t *testing.T) {
		assert.Equal(t, map[string]formtree.Errors{
			"users[2].email": {"ok": false, "isEmail": false, "actualValue": "not-an-email"},
		}, formtree.CollectErrorsFlat(g, ""))
	})

	t.Run("patched values", func(t *testing.T) {
		values, err := formschema.DecodeValuesFile("testdata/users_values.json")
		require.NoError(t, err)
		require.NoError(t, g.PatchDeep(values))

		assert.Nil(t, formtree.CollectErrors(g))
		assert.Equal(t, "Acme Corp", g.ValueAt("company"))
		assert.Equal(t, "eve@example.com", g.ValueAt("users[2].email"))
		assert.Equal(t, "Eve", g.ValueAt("users[2].name"))
		assert.Equal(t, 3, g.ValueAt("seats"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := formschema.CompileFile("testdata/missing.yaml")
		assert.Error(t, err)
	})
}

func TestCompile(t *testing.T) {
	t.Run("root must be a group", func(t *testing.T) {
		_, err := formschema.Compile([]byte("- a\n- b\n"))
		assert.ErrorIs(t, err, formschema.ErrInvalidDefinition)

		_, err = formschema.Compile([]byte("hello"))
		assert.ErrorIs(t, err, formschema.ErrInvalidDefinition)
	})

	t.Run("initial state", func(t *testing.T) {
		g, err := formschema.Compile([]byte(`
a: {value: 1, touched: true, dirty: true}
b: {value: "", validators: [required], disabled: true}
c: {type: group, controls: {x: 1}, pending: true, disabled: true}
`))
		require.NoError(t, err)

		a := g.ControlAt("a")
		require.NotNil(t, a)
		assert.True(t, a.Is(formtree.StateTouched))
		assert.True(t, a.Is(formtree.StateDirty))

		assert.True(t, g.ControlAt("b").Is(formtree.StateDisabled))
		assert.Nil(t, formtree.CollectErrors(g))

		c := g.GroupAt("c")
		require.NotNil(t, c)
		assert.True(t, c.Is(formtree.StatePending))
		assert.True(t, g.ControlAt("c.x").Is(formtree.StateDisabled))
	})

	t.Run("array validators", func(t *testing.T) {
		g, err := formschema.Compile([]byte(`
tags:
  type: array
  items: [go, yaml]
  validators:
    - maxLength: 1
`))
		require.NoError(t, err)
		tags := g.ArrayAt("tags")
		require.NotNil(t, tags)
		errs := tags.Errors()
		assert.Equal(t, false, errs["maxLength"])
		assert.Equal(t, 2, errs["actualLength"])
	})

	t.Run("built-in validators", func(t *testing.T) {
		g, err := formschema.Compile([]byte(`
controls:
  ssn: {value: "000 00 0000", validators: [ssn]}
  zip: {value: "12345", validators: [usZip]}
  phone: {value: "(555) 555-1234", validators: [usPhone]}
  id: {value: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", validators: [uuid]}
  code: {value: "AB12", validators: [{pattern: "^[A-Z]{2}[0-9]{2}$"}]}
  size: {value: m, validators: [{inArray: [s, m, l]}]}
  plan: {value: pro, validators: [{inObjectKey: {free: 0, pro: 10}}]}
  color: {value: "#fff", validators: [{inEnum: {white: "#fff", black: "#000"}}]}
  shade: {value: gray, validators: [{inEnumKey: {white: "#fff", black: "#000"}}]}
  country: {value: fr, validators: [{inObject: {object: {eu: [fr, de]}, path: eu}}]}
  short: {value: "872634782348", validators: [{minLength: 5}]}
`))
		require.NoError(t, err)
		assert.Equal(t, map[string]formtree.Errors{
			"ssn": {"ok": false, "isSSN": false, "actualValue": "000 00 0000"},
			"shade": {
				"ok":                false,
				"inEnumKey":         false,
				"actualValue":       "gray",
				"inEnumKeyExpected": []string{"black", "white"},
			},
		}, formtree.CollectErrorsFlat(g, ""))
	})

	t.Run("conditions", func(t *testing.T) {
		g, err := formschema.Compile([]byte(`
controls:
  name: tiger
  weight: 70
  animals:
    - type: tiger
      weight: 70
validators:
  - solveOne:
      - [name, "==", "animals[0].type"]
      - [weight, "==", "animals[0].weight"]
  - solveAll:
      - 'weight > 50'
      - {path: name, op: "==", value: tiger}
      - {left: weight, op: ">=", right: "animals[0].weight"}
`))
		require.NoError(t, err)

		errs := g.Errors()
		assert.Equal(t, false, errs["solveOne"])
		assert.NotContains(t, errs, "solveAll")

		g.ControlAt("weight").SetValue(60)
		errs = g.Errors()
		assert.NotContains(t, errs, "solveOne")
		assert.Equal(t, false, errs["solveAll"])
	})

	t.Run("configuration errors", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			err  error
		}{
			{"unknown validator", `n: {value: x, validators: [nope]}`, formschema.ErrUnknownValidator},
			{"non-numeric bound", `n: {value: 1, validators: [{min: abc}]}`, formschema.ErrInvalidArgs},
			{"missing bound", `n: {value: 1, validators: [max]}`, formschema.ErrInvalidArgs},
			{"negative length", `n: {value: x, validators: [{minLength: -1}]}`, formschema.ErrInvalidArgs},
			{"bad pattern", `n: {value: x, validators: [{pattern: "("}]}`, formschema.ErrInvalidArgs},
			{"pattern not a string", `n: {value: x, validators: [{pattern: [a]}]}`, formschema.ErrInvalidArgs},
			{"arguments for required", `n: {value: x, validators: [{required: 5}]}`, formschema.ErrInvalidArgs},
			{"inArray needs a list", `n: {value: x, validators: [{inArray: x}]}`, formschema.ErrInvalidArgs},
			{"inObject bad path", `n: {value: x, validators: [{inObject: {object: {a: 1}, path: "a["}}]}`, formschema.ErrInvalidArgs},
			{"inObject unknown key", `n: {value: x, validators: [{inObject: {object: {a: 1}, path: a, extra: 1}}]}`, formschema.ErrInvalidArgs},
			{"solve needs a list", `controls: {a: 1}` + "\n" + `validators: [{solveOne: a}]`, formschema.ErrInvalidArgs},
			{"unknown operator", `controls: {a: 1}` + "\n" + `validators: [{solveOne: [[a, "~", a]]}]`, formschema.ErrInvalidArgs},
			{"bad triple", `controls: {a: 1}` + "\n" + `validators: [{solveOne: [[a, "=="]]}]`, formschema.ErrInvalidArgs},
			{"bad expression", `controls: {a: 1}` + "\n" + `validators: [{solveOne: ["a >"]}]`, formschema.ErrInvalidArgs},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := formschema.Compile([]byte(tc.src))
				assert.ErrorIs(t, err, tc.err)
			})
		}
	})
}

func TestCompilerOptions(t *testing.T) {
	t.Run("custom validator", func(t *testing.T) {
		even := func(args any) (formtree.Validator, error) {
			return func(v any) formtree.Errors {
				if n, ok := formtree.AsNumber(v); ok && int(n)%2 == 0 {
					return nil
				}
				return formtree.NewFailure("even", v)
			}, nil
		}
		c := formschema.NewCompiler(formschema.WithValidator("even", even))
		assert.Contains(t, c.Validators(), "even")
		assert.Contains(t, c.Validators(), "solveOne")

		g, err := c.Compile([]byte(`n: {value: 3, validators: [even]}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"n": formtree.Errors{"ok": false, "even": false, "actualValue": 3},
		}, formtree.CollectErrors(g))

		_, err = formschema.Compile([]byte(`n: {value: 3, validators: [even]}`))
		assert.ErrorIs(t, err, formschema.ErrUnknownValidator, "registrations are per compiler")
	})

	t.Run("factory errors carry the validator name", func(t *testing.T) {
		broken := func(any) (formtree.Validator, error) {
			return nil, fmt.Errorf("%w: always", formschema.ErrInvalidArgs)
		}
		c := formschema.NewCompiler(formschema.WithValidator("broken", broken))
		_, err := c.Compile([]byte(`n: {value: 3, validators: [broken]}`))
		require.ErrorIs(t, err, formschema.ErrInvalidArgs)
		assert.Contains(t, err.Error(), "n: broken:")
	})

	t.Run("nil factory panics", func(t *testing.T) {
		assert.Panics(t, func() { formschema.NewCompiler(formschema.WithValidator("x", nil)) })
	})

	t.Run("debug logging", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		c := formschema.NewCompiler(formschema.WithLogger(log))

		_, err := c.Compile([]byte(`email: {value: a@b.co, validators: [email]}`))
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "component=formschema")
		assert.Contains(t, out, "validator=email")
		assert.Contains(t, out, "path=email")
		assert.Contains(t, out, "path=$")
	})
}

func TestDecodeValues(t *testing.T) {
	v, err := formschema.DecodeValues(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, v)

	v, err = formschema.DecodeValues([]byte("a: 1\nb: [x, y]\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": []any{"x", "y"}}, v)

	_, err = formschema.DecodeValues([]byte("- a\n"))
	assert.ErrorIs(t, err, formschema.ErrInvalidValues)

	_, err = formschema.DecodeValues([]byte("a: [\n"))
	assert.ErrorIs(t, err, formschema.ErrInvalidValues)
}
