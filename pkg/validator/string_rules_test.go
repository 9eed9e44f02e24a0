package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()
	required := validator.Required()

	tests := []struct {
		name  string
		value any
		fails bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"blank string", "   ", true},
		{"empty slice", []string{}, true},
		{"empty map", map[string]any{}, true},
		{"text", "x", false},
		{"zero", 0, false},
		{"false", false, false},
		{"slice", []any{nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := required(tt.value)
			if tt.fails {
				assert.Equal(t, formtree.Errors{"ok": false, "required": false, "actualValue": tt.value}, errs)
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	t.Run("passes long enough values", func(t *testing.T) {
		assert.Nil(t, validator.MinLength(5)("872634782348"))
		assert.Nil(t, validator.MinLength(2)([]int{1, 2}))
	})

	t.Run("fails short values", func(t *testing.T) {
		assert.Equal(t, formtree.Errors{
			"ok":                false,
			"minLength":         false,
			"actualValue":       "abc",
			"minLengthExpected": 5,
			"actualLength":      3,
		}, validator.MinLength(5)("abc"))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.NotNil(t, validator.MinLength(4)("日本語"))
		assert.Nil(t, validator.MinLength(3)("日本語"))
	})

	t.Run("passes missing and empty values", func(t *testing.T) {
		assert.Nil(t, validator.MinLength(5)(nil))
		assert.Nil(t, validator.MinLength(5)(""))
		assert.Nil(t, validator.MinLength(5)(42))
	})
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	t.Run("passes short values", func(t *testing.T) {
		assert.Nil(t, validator.MaxLength(3)("abc"))
		assert.Nil(t, validator.MaxLength(3)(nil))
		assert.Nil(t, validator.MaxLength(3)(12345))
	})

	t.Run("fails long values", func(t *testing.T) {
		errs := validator.MaxLength(2)([]any{1, 2, 3})
		assert.Equal(t, false, errs["maxLength"])
		assert.Equal(t, 3, errs[formtree.KeyActualLength])
		assert.Equal(t, 2, errs[formtree.ExpectedKey("maxLength")])
	})
}
