package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"studydesk/internal/metrics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// Adapter serializes the document list to one slot of a SnapshotRepository.
// It never owns documents; it only converts snapshots on behalf of the store.
type Adapter struct {
	repo    repository.SnapshotRepository
	key     string
	logger  *zap.Logger
	metrics *metrics.Recorder
}

func NewAdapter(repo repository.SnapshotRepository, key string, logger *zap.Logger, rec *metrics.Recorder) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{repo: repo, key: key, logger: logger, metrics: rec}
}

// Load returns the last saved snapshot. A missing or unreadable snapshot
// degrades to an empty list; the caller never sees an error.
func (a *Adapter) Load(ctx context.Context) []model.Document {
	payload, err := a.repo.Read(ctx, a.key)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			a.metrics.SnapshotFailed("load")
			a.logger.Warn("snapshot_read_failed", zap.String("key", a.key), zap.Error(err))
		}
		return []model.Document{}
	}

	var docs []model.Document
	if err := json.Unmarshal(payload, &docs); err != nil {
		a.metrics.SnapshotFailed("load")
		a.logger.Warn("snapshot_corrupt", zap.String("key", a.key), zap.Error(err))
		return []model.Document{}
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs
}

// Save overwrites the snapshot with the full list.
func (a *Adapter) Save(ctx context.Context, docs []model.Document) error {
	if docs == nil {
		docs = []model.Document{}
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		a.metrics.SnapshotFailed("save")
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := a.repo.Write(ctx, a.key, payload); err != nil {
		a.metrics.SnapshotFailed("save")
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
