package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestInArray(t *testing.T) {
	t.Parallel()
	colors := validator.InArray([]string{"red", "green"})

	assert.Nil(t, colors("red"))
	assert.Equal(t, formtree.Errors{
		"ok":              false,
		"inArray":         false,
		"actualValue":     "blue",
		"inArrayExpected": []string{"red", "green"},
	}, colors("blue"))

	sizes := validator.InArray([]int{1, 2, 3})
	assert.Nil(t, sizes("3"))
	assert.NotNil(t, sizes(4))
	assert.NotNil(t, sizes(nil))
}

func TestInObjectKey(t *testing.T) {
	t.Parallel()
	plans := validator.InObjectKey(map[string]int{"free": 0, "pro": 10, "1": 1})

	assert.Nil(t, plans("pro"))
	assert.Nil(t, plans(1))
	assert.NotNil(t, plans(true))

	errs := plans("gold")
	assert.Equal(t, false, errs["inObjectKey"])
	assert.Equal(t, []string{"1", "free", "pro"}, errs[formtree.ExpectedKey("inObjectKey")])
}

func TestInObject(t *testing.T) {
	t.Parallel()
	catalog := map[string]any{
		"animals": map[string]any{
			"cats": []any{"lion", "tiger"},
			"best": "dog",
		},
		"zones": map[string]any{"north": 1},
	}

	t.Run("element of a sequence", func(t *testing.T) {
		fn := validator.InObject(catalog, "animals.cats")
		assert.Nil(t, fn("tiger"))
		assert.Equal(t, false, fn("wolf")["inObject"])
	})

	t.Run("key of a mapping", func(t *testing.T) {
		fn := validator.InObject(catalog, "zones")
		assert.Nil(t, fn("north"))
		assert.NotNil(t, fn("south"))
	})

	t.Run("equal to a scalar", func(t *testing.T) {
		fn := validator.InObject(catalog, "animals.best")
		assert.Nil(t, fn("dog"))
		assert.NotNil(t, fn("cat"))
	})

	t.Run("indexed path", func(t *testing.T) {
		fn := validator.InObject(catalog, "animals.cats[1]")
		assert.Nil(t, fn("tiger"))
	})

	t.Run("missing path fails", func(t *testing.T) {
		fn := validator.InObject(catalog, "plants")
		assert.Equal(t, "plants", fn("fern")[formtree.ExpectedKey("inObject")])
	})

	t.Run("malformed path panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.InObject(catalog, "animals[") })
	})
}

func TestInEnum(t *testing.T) {
	t.Parallel()
	status := map[string]int{"Active": 1, "Archived": 2}

	t.Run("by value", func(t *testing.T) {
		fn := validator.InEnum(status)
		assert.Nil(t, fn(2))
		assert.Nil(t, fn("1"))
		errs := fn("Active")
		assert.Equal(t, false, errs["inEnum"])
		assert.Equal(t, []int{1, 2}, errs[formtree.ExpectedKey("inEnum")])
	})

	t.Run("by key", func(t *testing.T) {
		fn := validator.InEnumKey(status)
		assert.Nil(t, fn("Archived"))
		assert.Equal(t, false, fn(1)["inEnumKey"])
	})
}
