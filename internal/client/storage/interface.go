// Package storage is the client's durable key/value state store. Each store
// persists a JSON snapshot of the subset of its state that survives restarts
// (see internal/common for the key names).
package storage

import "context"

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
