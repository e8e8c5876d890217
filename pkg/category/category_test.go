package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	t.Run("should contain 16 categories with unique ids", func(t *testing.T) {
		all := All()

		assert.Len(t, all, 16)
		seen := map[int]bool{}
		for i, c := range all {
			assert.Equal(t, i+1, c.Id)
			assert.False(t, seen[c.Id])
			seen[c.Id] = true
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.ShortTitle)
		}
	})

	t.Run("should not leak the catalog through All", func(t *testing.T) {
		all := All()
		all[0].Title = "changed"

		assert.Equal(t, "Bread and baked goods", All()[0].Title)
	})
}

func TestFind(t *testing.T) {
	vegetables, ok := Find(2)
	assert.True(t, ok)
	assert.Equal(t, "Vegetables", vegetables.Title)
	assert.Equal(t, "Veg", vegetables.ShortTitle)
	assert.Equal(t, RGB{240, 151, 65}, vegetables.Color)

	_, ok = Find(17)
	assert.False(t, ok)
	assert.False(t, Exists(0))
	assert.True(t, Exists(16))
}

func TestFindOrDefault(t *testing.T) {
	assert.Equal(t, "Fruits", FindOrDefault(3).Title)
	assert.Equal(t, Default(), FindOrDefault(99))
	assert.Equal(t, 1, Default().Id)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, RGB{186, 252, 129}, ColorOf(16))
	assert.Equal(t, FallbackColor, ColorOf(-1))
	assert.Equal(t, "#7b7d7a", FallbackColor.Hex())
}
