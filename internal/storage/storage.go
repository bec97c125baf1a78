// Package storage defines the key-value persistence port the state store
// writes its document through, plus concrete adapters for a plain directory,
// SQLite, and PostgreSQL. Any backend satisfies the port as long as it hands
// back exactly the bytes it was given.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read for keys that have never been written or
// have been removed.
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistence port. Keys are opaque logical names; the app uses a
// single fixed key for its whole state document.
type KV interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
