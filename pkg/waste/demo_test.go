package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemo(t *testing.T) {
	store, kv, _ := setup(t)

	added, err := SeedDemo(store, now)

	require.NoError(t, err)
	assert.Equal(t, 16, added)
	assert.Equal(t, 16, store.Len())
	assert.Equal(t, 0, kv.Writes())

	lastWeek := store.Query(now.AddDate(0, 0, -6), now)
	assert.Len(t, lastWeek, 5)

	categories := map[int]bool{}
	for _, e := range store.Entries() {
		categories[e.CategoryId] = true
		assert.NoError(t, NewEntry{CategoryId: e.CategoryId, WeightKg: e.WeightKg, PricePerKg: e.PricePerKg}.Validate())
	}
	assert.Len(t, categories, 16)
}
