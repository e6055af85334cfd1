package memory

import (
	"context"
	"sync"

	"studydesk/internal/repository"
)

// SnapshotMemory keeps snapshots in process memory. Nothing survives a restart.
type SnapshotMemory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSnapshotMemory() *SnapshotMemory {
	return &SnapshotMemory{slots: make(map[string][]byte)}
}

var _ repository.SnapshotRepository = (*SnapshotMemory)(nil)

func (r *SnapshotMemory) Read(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.slots[key]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (r *SnapshotMemory) Write(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = append([]byte(nil), payload...)
	return nil
}

func (r *SnapshotMemory) Ping(context.Context) error { return nil }
