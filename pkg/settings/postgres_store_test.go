package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerowasteroad/zerowaste/internal/test_utils"
)

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("postgres container test skipped in short mode")
	}
	ctx := context.Background()
	store := NewPostgresStore(test_utils.SetupPostgres(t))

	t.Run("should return ErrNotFound for an absent key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should upsert and read back the slot", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "waste_entries_storage", []byte(`[]`)))
		require.NoError(t, store.Set(ctx, "waste_entries_storage", []byte(`[1]`)))

		value, err := store.Get(ctx, "waste_entries_storage")

		assert.NoError(t, err)
		assert.Equal(t, `[1]`, string(value))
	})
}
