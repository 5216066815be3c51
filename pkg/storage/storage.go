package storage

import "context"

// Store is the uniform key-value contract shared by the save backends.
// Values are opaque text: serialization happens once, at the save/load
// boundary, never inside a backend.
type Store interface {
	// Write stores value under key.
	Write(ctx context.Context, key string, value string) error
	// Read returns the value stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) (string, error)
	// Clear removes everything the store holds.
	Clear(ctx context.Context) error
	// Close releases the store's resources.
	Close() error
}
