package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should report missing key", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should replace the slot on every set", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Set(ctx, "slot", []byte("first")))
		require.NoError(t, store.Set(ctx, "slot", []byte("second")))
		value, err := store.Get(ctx, "slot")

		assert.NoError(t, err)
		assert.Equal(t, []byte("second"), value)
		assert.Equal(t, 2, store.Writes())
	})

	t.Run("should not share buffers with callers", func(t *testing.T) {
		store := NewMemoryStore()
		value := []byte("abc")
		require.NoError(t, store.Set(ctx, "slot", value))

		value[0] = 'x'
		stored, _ := store.Get(ctx, "slot")
		stored[1] = 'y'

		again, _ := store.Get(ctx, "slot")
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("should fail writes on demand", func(t *testing.T) {
		store := NewMemoryStore()
		diskFull := errors.New("disk full")
		store.FailWrites(diskFull)

		err := store.Set(ctx, "slot", []byte("x"))

		assert.ErrorIs(t, err, diskFull)
		assert.Equal(t, 0, store.Writes())
		_, err = store.Get(ctx, "slot")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
