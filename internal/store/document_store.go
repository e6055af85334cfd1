package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"studydesk/internal/metrics"
	"studydesk/internal/model"
)

// Snapshotter persists full snapshots of the document list.
type Snapshotter interface {
	Load(ctx context.Context) []model.Document
	Save(ctx context.Context, docs []model.Document) error
}

// DocumentStore owns the ordered document list and the current selection.
// Mutators are serialized by mu; every AddDocument rewrites the whole snapshot.
type DocumentStore struct {
	mu       sync.RWMutex
	docs     []model.Document
	selected int // index into docs, -1 when nothing is selected

	snapshots Snapshotter
	logger    *zap.Logger
	metrics   *metrics.Recorder
}

// Open builds a store populated from the last saved snapshot.
func Open(ctx context.Context, snapshots Snapshotter, logger *zap.Logger, rec *metrics.Recorder) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DocumentStore{
		docs:      snapshots.Load(ctx),
		selected:  -1,
		snapshots: snapshots,
		logger:    logger,
		metrics:   rec,
	}
	logger.Info("document_store_opened", zap.Int("documents", len(s.docs)))
	return s
}

// AddDocument appends doc and writes the full list through to the snapshot.
// The document stays in memory even if the write fails; the write error is
// returned so callers can report it.
func (s *DocumentStore) AddDocument(ctx context.Context, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = append(s.docs, doc)
	s.metrics.DocumentAdded()

	if err := s.snapshots.Save(ctx, s.docs); err != nil {
		s.logger.Warn("snapshot_save_failed",
			zap.String("document_id", doc.ID),
			zap.Int("documents", len(s.docs)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SelectDocument makes the first document with the given id current. An unknown
// id clears the selection. It never touches the snapshot.
func (s *DocumentStore) SelectDocument(id string) (model.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = s.indexOf(id)
	if s.selected < 0 {
		return model.Document{}, false
	}
	return s.docs[s.selected], true
}

// CurrentDocument returns the selected document, if any.
func (s *DocumentStore) CurrentDocument() (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected < 0 {
		return model.Document{}, false
	}
	return s.docs[s.selected], true
}

// Documents returns a copy of the list in insertion order.
func (s *DocumentStore) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *DocumentStore) indexOf(id string) int {
	for i := range s.docs {
		if s.docs[i].ID == id {
			return i
		}
	}
	return -1
}
