package formtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

func TestMetadata(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{"a": 1, "nested": map[string]any{"x": 1}}
	}
	incoming := map[string]any{"a": 2, "nested": map[string]any{"x": 2, "y": 3}, "b": 4}

	t.Run("shallow merge lets incoming values win", func(t *testing.T) {
		g := formtree.NewGroup()
		g.SetMetadata(base())
		g.MergeMetadata(incoming, false)
		assert.Equal(t, map[string]any{
			"a":      2,
			"nested": map[string]any{"x": 2, "y": 3},
			"b":      4,
		}, g.Metadata())
	})

	t.Run("deep merge keeps existing values", func(t *testing.T) {
		g := formtree.NewGroup()
		g.SetMetadata(base())
		g.MergeMetadata(incoming, true)
		assert.Equal(t, map[string]any{
			"a":      1,
			"nested": map[string]any{"x": 1, "y": 3},
			"b":      4,
		}, g.Metadata())
	})

	t.Run("merge into empty metadata", func(t *testing.T) {
		g := formtree.NewGroup()
		g.MergeMetadata(map[string]any{"k": "v"}, true)
		assert.Equal(t, map[string]any{"k": "v"}, g.Metadata())
		assert.Nil(t, formtree.MergeMaps(nil, nil, false))
	})

	t.Run("returned metadata is a copy", func(t *testing.T) {
		g := formtree.NewGroup()
		g.SetMetadata(base())
		md := g.Metadata()
		md["a"] = 100
		md["nested"].(map[string]any)["x"] = 100
		assert.Equal(t, base(), g.Metadata())
	})

	t.Run("set from a struct", func(t *testing.T) {
		type wizard struct {
			Step  int    `form:"step"`
			Title string `form:"title"`
		}
		g := formtree.NewGroup()
		require.NoError(t, g.SetMetadataFrom(wizard{Step: 3, Title: "Billing"}))
		assert.Equal(t, map[string]any{"step": 3, "title": "Billing"}, g.Metadata())

		require.NoError(t, g.SetMetadataFrom(&wizard{Step: 1}))
		assert.Equal(t, 1, g.Metadata()["step"])
	})

	t.Run("rejects non mappings", func(t *testing.T) {
		g := formtree.NewGroup()
		assert.ErrorIs(t, g.SetMetadataFrom("nope"), formtree.ErrInvalidMetadata)
		assert.ErrorIs(t, g.SetMetadataFrom([]any{1}), formtree.ErrInvalidMetadata)
		assert.ErrorIs(t, g.SetMetadataFrom(map[int]any{1: 1}), formtree.ErrInvalidMetadata)
	})

	t.Run("listeners see every change", func(t *testing.T) {
		g := formtree.NewGroup()
		var seen []map[string]any
		off := g.OnMetadataChange(func(md map[string]any) { seen = append(seen, md) })

		g.SetMetadata(map[string]any{"a": 1})
		g.MergeMetadata(map[string]any{"b": 2}, false)
		g.ClearMetadata()
		off()
		g.SetMetadata(map[string]any{"ignored": true})

		assert.Equal(t, []map[string]any{
			{"a": 1},
			{"a": 1, "b": 2},
			nil,
		}, seen)
	})
}
