package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"studydesk/internal/repository"
	"studydesk/internal/storage"
)

// SnapshotObject keeps each snapshot as a JSON object named <prefix>/<key>.json.
type SnapshotObject struct {
	store  storage.Storage
	prefix string
}

func NewSnapshotObject(store storage.Storage, prefix string) *SnapshotObject {
	return &SnapshotObject{store: store, prefix: prefix}
}

var _ repository.SnapshotRepository = (*SnapshotObject)(nil)

func (r *SnapshotObject) objectKey(key string) string {
	return path.Join(r.prefix, key+".json")
}

func (r *SnapshotObject) Read(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := r.store.Get(ctx, r.objectKey(key))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return payload, nil
}

func (r *SnapshotObject) Write(ctx context.Context, key string, payload []byte) error {
	_, err := r.store.Put(ctx, r.objectKey(key), bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (r *SnapshotObject) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
