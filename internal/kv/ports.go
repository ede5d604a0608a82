// Package kv defines the key-value storage engine used for all durable state.
// Values are opaque byte slices; the gateway layer above decides the encoding.
package kv

import "context"

// Store is the port for durable key-value storage.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key entirely. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
