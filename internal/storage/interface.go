// Package storage persists user preferences as string key-value pairs.
package storage

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a key is blank.
var ErrEmptyKey = errors.New("storage: key cannot be empty")

// Store is a string key-value store. Writes overwrite, there is no versioning.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the store's resources.
	Close() error
}
