package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("nil when all pass", func(t *testing.T) {
		fn := validator.Compose(validator.Required(), validator.Email(), nil)
		assert.Nil(t, fn("user@example.com"))
	})

	t.Run("merges failures", func(t *testing.T) {
		fn := validator.Compose(validator.Required(), validator.Email())
		errs := fn("")
		assert.Equal(t, []string{"isEmail", "required"}, errs.Kinds())
		assert.Equal(t, false, errs["ok"])
	})

	t.Run("keeps the parameter of each failure", func(t *testing.T) {
		fn := validator.Compose(validator.MinLength(3), validator.MaxLength(1))
		errs := fn("ab")
		assert.Equal(t, []string{"maxLength", "minLength"}, errs.Kinds())
		assert.Equal(t, 3, errs[formtree.ExpectedKey("minLength")])
		assert.Equal(t, 1, errs[formtree.ExpectedKey("maxLength")])
		assert.Equal(t, 2, errs[formtree.KeyActualLength])

		errs = validator.Compose(validator.Min(1), validator.Max(0))(nil)
		assert.Equal(t, 1.0, errs[formtree.ExpectedKey("min")])
		assert.Equal(t, 0.0, errs[formtree.ExpectedKey("max")])
	})

	t.Run("plugs into a control", func(t *testing.T) {
		c := formtree.NewControl("abc", validator.Compose(validator.Required(), validator.MinLength(5)))
		assert.Equal(t, []string{"minLength"}, c.Errors().Kinds())
	})
}

func TestExplain(t *testing.T) {
	t.Parallel()

	t.Run("one entry per kind", func(t *testing.T) {
		errs := validator.Compose(validator.Required(), validator.Min(3))(nil)
		got := validator.Explain("age", errs)
		require.Len(t, got, 2)

		assert.Equal(t, "min", got[0].Kind)
		assert.Equal(t, "must be at least 3", got[0].Message)
		assert.Equal(t, "validation.min", got[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "age", "expected": 3.0}, got[0].TranslationValues)

		assert.Equal(t, "required", got[1].Kind)
		assert.Equal(t, "field is required", got[1].Message)
	})

	t.Run("each message names its own limit", func(t *testing.T) {
		got := validator.Explain("age", validator.Compose(validator.Min(18), validator.Max(65))(nil))
		require.Len(t, got, 2)
		assert.Equal(t, "must be at most 65", got[0].Message)
		assert.Equal(t, 65.0, got[0].TranslationValues["expected"])
		assert.Equal(t, "must be at least 18", got[1].Message)
		assert.Equal(t, 18.0, got[1].TranslationValues["expected"])

		got = validator.Explain("nick", validator.Compose(validator.MinLength(3), validator.MaxLength(1))("ab"))
		require.Len(t, got, 2)
		assert.Equal(t, "must be at most 1 characters long", got[0].Message)
		assert.Equal(t, "must be at least 3 characters long", got[1].Message)
	})

	t.Run("unknown kinds", func(t *testing.T) {
		got := validator.Explain("email", formtree.Errors{"unique": true})
		require.Len(t, got, 1)
		assert.Equal(t, "is invalid", got[0].Message)
		assert.Equal(t, "validation.unique", got[0].TranslationKey)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.True(t, validator.Explain("x", nil).IsEmpty())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, validator.Explain("email", validator.Email()("nope"))...)
	errs.Add(validator.ValidationError{Field: "name", Message: "field is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is taken"})

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("age"))
	assert.Equal(t, []string{"must be a valid email address", "is taken"}, errs.Get("email"))
	assert.Equal(t, []string{"email", "name"}, errs.Fields())
	assert.Contains(t, errs.Error(), "validation failed: email: must be a valid email address")

	var target validator.ValidationErrors
	assert.ErrorAs(t, error(errs), &target)
}
