// Package settings provides the local key-value store that holds named
// slots of opaque bytes, one slot per key.
package settings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("settings key not found")

// Store is a key-value settings store. Set replaces the whole slot.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
