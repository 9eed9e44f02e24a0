package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
)

func TestValidationError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ve := formkit.NewValidationError()
		assert.True(t, ve.IsEmpty())
		assert.Equal(t, "validation failed", ve.Error())
		assert.Empty(t, ve.Fields())
		assert.False(t, ve.Has("email"))
		assert.Equal(t, "", ve.Get("email"))
	})

	t.Run("messages per field", func(t *testing.T) {
		ve := formkit.NewValidationError()
		ve.Add("users[0].email", "field is required")
		ve.Add("users[0].email", "must be a valid email address")
		ve.Add("age", "must be at least 18")

		assert.False(t, ve.IsEmpty())
		assert.True(t, ve.Has("users[0].email"))
		assert.Equal(t, "field is required", ve.Get("users[0].email"))
		assert.Equal(t, []string{"field is required", "must be a valid email address"}, ve.All("users[0].email"))
		assert.Equal(t, []string{"age", "users[0].email"}, ve.Fields())
		assert.Equal(t, "validation error: age: must be at least 18, users[0].email: field is required", ve.Error())
	})
}
