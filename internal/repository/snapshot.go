package repository

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Read when nothing was ever written under the key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository is a durable key-value slot holding opaque snapshot payloads.
// Implementations live in subpackages (memory, postgres, redis, objectstore) and
// contain no business logic: Write replaces the whole payload under a key.
type SnapshotRepository interface {
	// Read returns the payload stored under key, or ErrSnapshotNotFound.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write overwrites the payload stored under key.
	Write(ctx context.Context, key string, payload []byte) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
