package sqlite

import "errors"

var (
	// ErrEmptyPath indicates that no database path was configured.
	ErrEmptyPath = errors.New("db path cannot be empty")
	// ErrEmptyKey indicates a blank preference key.
	ErrEmptyKey = errors.New("key cannot be empty")
)
