package formtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

func TestAsNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{80, 80, true},
		{int64(-3), -3, true},
		{uint8(7), 7, true},
		{float32(1.5), 1.5, true},
		{" 42.5 ", 42.5, true},
		{"1e3", 1000, true},
		{"12px", 0, false},
		{"", 0, false},
		{true, 0, false},
		{nil, 0, false},
		{[]any{1}, 0, false},
	}
	for _, tc := range cases {
		got, ok := formtree.AsNumber(tc.in)
		assert.Equal(t, tc.ok, ok, "%#v", tc.in)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

func TestLength(t *testing.T) {
	t.Run("counts runes after normalisation", func(t *testing.T) {
		n, ok := formtree.Length("café")
		assert.True(t, ok)
		assert.Equal(t, 4, n)

		n, _ = formtree.Length("日本語")
		assert.Equal(t, 3, n)
	})

	t.Run("containers and values without length", func(t *testing.T) {
		n, ok := formtree.Length([]int{1, 2})
		assert.True(t, ok)
		assert.Equal(t, 2, n)

		n, _ = formtree.Length(map[string]any{"a": 1})
		assert.Equal(t, 1, n)

		_, ok = formtree.Length(12)
		assert.False(t, ok)
	})

	t.Run("emptiness", func(t *testing.T) {
		assert.True(t, formtree.IsEmpty(nil))
		assert.True(t, formtree.IsEmpty(""))
		assert.True(t, formtree.IsEmpty([]any{}))
		assert.False(t, formtree.IsEmpty(0))
		assert.False(t, formtree.IsEmpty(false))
		assert.False(t, formtree.IsEmpty(" "))
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, formtree.Equal("80", 80))
	assert.True(t, formtree.Equal(80.0, int64(80)))
	assert.True(t, formtree.Equal("tiger", "tiger"))
	assert.True(t, formtree.Equal(nil, nil))
	assert.True(t, formtree.Equal(map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}))

	assert.False(t, formtree.Equal("tiger", "lion"))
	assert.False(t, formtree.Equal(nil, ""))
	assert.False(t, formtree.Equal(0, nil))
	assert.False(t, formtree.Equal(true, 1))
	assert.False(t, formtree.Equal("01x", 1))
}

func TestErrors(t *testing.T) {
	f := formtree.NewFailure("min", 3).WithExpected("min", 5)
	assert.Equal(t, formtree.Errors{"ok": false, "min": false, "actualValue": 3, "minExpected": 5}, f)
	assert.Equal(t, []string{"min"}, f.Kinds())

	expected, ok := f.Expected("min")
	assert.True(t, ok)
	assert.Equal(t, 5, expected)
	_, ok = f.Expected("max")
	assert.False(t, ok)

	t.Run("parameters of merged failures stay apart", func(t *testing.T) {
		merged := formtree.MergeErrors(
			formtree.NewFailure("min", nil).WithExpected("min", 18),
			formtree.NewFailure("max", nil).WithExpected("max", 65),
		)
		assert.Equal(t, []string{"max", "min"}, merged.Kinds())
		assert.Equal(t, 18, merged[formtree.ExpectedKey("min")])
		assert.Equal(t, 65, merged[formtree.ExpectedKey("max")])
	})

	t.Run("a field named like a parameter key is a kind", func(t *testing.T) {
		e := formtree.Errors{"ok": false, "isExpected": false}
		assert.Equal(t, []string{"isExpected"}, e.Kinds())
	})

	assert.Nil(t, formtree.MergeErrors(nil, formtree.Errors{}))
	assert.Equal(t,
		formtree.Errors{"a": 2, "b": 1},
		formtree.MergeErrors(formtree.Errors{"a": 1, "b": 1}, nil, formtree.Errors{"a": 2}),
	)
	assert.Equal(t, formtree.Errors{"x": true}, formtree.Errors(nil).With("x", true))
}
