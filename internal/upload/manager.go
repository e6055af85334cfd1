package upload

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studydesk/internal/metrics"
	"studydesk/internal/model"
)

// Status represents the upload processing status.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

var (
	ErrFileRequired  = errors.New("file is required")
	ErrInvalidSource = errors.New("invalid upload source")
	ErrClosed        = errors.New("upload manager is closed")
)

// Job represents one simulated upload. Progress climbs from 0 to the
// configured threshold; on completion DocumentID and Redirect are set.
type Job struct {
	ID          string       `json:"id"`
	FileName    string       `json:"fileName"`
	ContentType string       `json:"contentType"`
	Source      model.Source `json:"source"`
	Size        int64        `json:"size"`
	Status      Status       `json:"status"`
	Progress    int          `json:"progress"`
	DocumentID  string       `json:"documentId,omitempty"`
	Redirect    string       `json:"redirect,omitempty"`
	Warning     string       `json:"warning,omitempty"`
	Error       string       `json:"error,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// Request is one file picked by the user.
type Request struct {
	FileName    string
	ContentType string
	Source      model.Source
	Data        []byte
}

// Sink receives the finished document.
type Sink interface {
	AddDocument(ctx context.Context, doc model.Document) error
}

type Config struct {
	Tick      time.Duration
	Step      int
	Threshold int
}

// DefaultConfig advances the progress by 5 every 100ms up to 100.
func DefaultConfig() Config {
	return Config{Tick: 100 * time.Millisecond, Step: 5, Threshold: 100}
}

// Manager runs upload jobs in the background and keeps their state for polling.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job

	sink    Sink
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a new upload processing manager.
func NewManager(sink Sink, cfg Config, logger *zap.Logger, rec *metrics.Recorder) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		jobs:    make(map[string]*Job),
		sink:    sink,
		cfg:     cfg,
		logger:  logger,
		metrics: rec,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// StartJob validates the request and begins simulated processing.
// Nothing is created when no file was supplied.
func (m *Manager) StartJob(req Request) (Job, error) {
	if req.FileName == "" {
		return Job{}, ErrFileRequired
	}
	if !req.Source.Valid() {
		return Job{}, ErrInvalidSource
	}
	if m.ctx.Err() != nil {
		return Job{}, ErrClosed
	}

	job := &Job{
		ID:          uuid.New().String(),
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Source:      req.Source,
		Size:        int64(len(req.Data)),
		Status:      StatusProcessing,
		CreatedAt:   m.now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	snapshot := *job
	m.mu.Unlock()

	m.logger.Info("upload_started",
		zap.String("job_id", job.ID),
		zap.String("file_name", job.FileName),
		zap.String("source", string(job.Source)),
		zap.Int64("size", job.Size),
	)

	content := ExtractText(req.Data)
	m.wg.Add(1)
	go m.processJob(job.ID, content)

	return snapshot, nil
}

// GetJob returns a copy of the job state.
func (m *Manager) GetJob(id string) (Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

func (m *Manager) processJob(id, content string) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Tick)
	defer ticker.Stop()

	progress := 0
	for progress < m.cfg.Threshold {
		select {
		case <-m.ctx.Done():
			m.markJobError(id, "upload interrupted")
			return
		case <-ticker.C:
			progress += m.cfg.Step
			if progress > m.cfg.Threshold {
				progress = m.cfg.Threshold
			}
			m.updateProgress(id, progress)
		}
	}

	m.finish(id, content)
}

func (m *Manager) finish(id, content string) {
	m.mu.RLock()
	job := *m.jobs[id]
	m.mu.RUnlock()

	doc := model.Document{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Name:      job.FileName,
		Type:      job.ContentType,
		Content:   content,
		DateAdded: m.now().UTC(),
		Source:    job.Source,
	}

	// the store keeps the document even when persisting it fails
	var warning string
	if err := m.sink.AddDocument(m.ctx, doc); err != nil {
		warning = "document was not saved: " + err.Error()
		m.logger.Warn("upload_persist_failed", zap.String("job_id", id), zap.Error(err))
	}

	completed := m.now()
	m.mu.Lock()
	j := m.jobs[id]
	j.Status = StatusComplete
	j.DocumentID = doc.ID
	j.Redirect = "/document/" + doc.ID
	j.Warning = warning
	j.CompletedAt = &completed
	m.mu.Unlock()

	m.metrics.UploadFinished(string(StatusComplete))
	m.logger.Info("upload_complete",
		zap.String("job_id", id),
		zap.String("document_id", doc.ID),
		zap.Duration("elapsed", completed.Sub(job.CreatedAt)),
	)
}

func (m *Manager) updateProgress(id string, progress int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.Progress = progress
	}
}

func (m *Manager) markJobError(id, msg string) {
	now := m.now()
	m.mu.Lock()
	if job, ok := m.jobs[id]; ok {
		job.Status = StatusError
		job.Error = msg
		job.CompletedAt = &now
	}
	m.mu.Unlock()

	m.metrics.UploadFinished(string(StatusError))
	m.logger.Warn("upload_failed", zap.String("job_id", id), zap.String("error", msg))
}

// Cleanup removes finished jobs older than maxAge and returns how many went.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	cutoff := m.now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, job := range m.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(m.jobs, id)
			removed++
		}
	}
	return removed
}

// Close interrupts running jobs and waits for them to stop.
func (m *Manager) Close() {
	m.cancel()
	m.wg.Wait()
}
