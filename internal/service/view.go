package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"studydesk/internal/model"
	"studydesk/internal/view"
)

var (
	ErrEmptyMessage    = view.ErrEmptyMessage
	ErrSessionNotFound = view.ErrSessionNotFound
	ErrSessionClosed   = view.ErrSessionClosed
)

// ViewService serves the four generated views of a document.
type ViewService interface {
	// Notebook selects the document and returns its notebook. With wait the call
	// blocks until generation settles or ctx ends; otherwise it reports the current state.
	Notebook(ctx context.Context, docID string, wait bool) (view.Result[[]model.NotebookPage], error)

	Resources(ctx context.Context, docID string, wait bool) (view.Result[[]model.ExternalResource], error)

	MindMap(ctx context.Context, docID string, wait bool) (view.Result[*model.MindMapNode], error)

	// OpenChat mounts a chat session for the document.
	OpenChat(ctx context.Context, docID string) (view.Snapshot, error)

	Chat(ctx context.Context, sessionID string) (view.Snapshot, error)

	// SendChat appends the user message; the reply arrives after the delay.
	SendChat(ctx context.Context, sessionID, content string) (view.Snapshot, error)

	CloseChat(ctx context.Context, sessionID string) error
}

// Views is the ViewService implementation. Close must be called on shutdown.
type Views struct {
	store   DocumentStore
	chats   *view.ChatHub
	delay   time.Duration
	maxWait time.Duration
	logger  *zap.Logger

	mu        sync.Mutex
	closed    bool
	notebooks map[string]*view.Loader[[]model.NotebookPage]
	resources map[string]*view.Loader[[]model.ExternalResource]
	mindmaps  map[string]*view.Loader[*model.MindMapNode]
}

// NewViewService constructs the view service. Generated views are cached per
// document; the first request for a view starts its timer.
func NewViewService(store DocumentStore, chats *view.ChatHub, delay time.Duration, logger *zap.Logger) *Views {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Views{
		store:     store,
		chats:     chats,
		delay:     delay,
		logger:    logger,
		maxWait:   delay + maxWaitSlack,
		notebooks: make(map[string]*view.Loader[[]model.NotebookPage]),
		resources: make(map[string]*view.Loader[[]model.ExternalResource]),
		mindmaps:  make(map[string]*view.Loader[*model.MindMapNode]),
	}
}

var ErrViewsClosed = errors.New("view service closed")

var _ ViewService = (*Views)(nil)

// mount returns the loader for doc, starting one when none exists yet.
func mount[T any](s *Views, loaders map[string]*view.Loader[T], doc model.Document, generate func(model.Document) T) (*view.Loader[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrViewsClosed
	}
	if l, ok := loaders[doc.ID]; ok {
		return l, nil
	}
	l := view.NewLoader(s.delay, func() (T, bool) { return generate(doc), true })
	loaders[doc.ID] = l
	return l, nil
}

// maxWaitSlack is how long past the simulated delay a waiting request may block.
// fasthttp does not cancel the request context when the client disconnects.
const maxWaitSlack = time.Second

func settle[T any](ctx context.Context, l *view.Loader[T], wait bool, limit time.Duration) (view.Result[T], error) {
	if !wait {
		return l.Result(), nil
	}
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()
	return l.Await(ctx)
}

func (s *Views) selectDocument(id string) (model.Document, error) {
	doc, ok := s.store.SelectDocument(id)
	if !ok {
		return model.Document{}, ErrNotFound
	}
	return doc, nil
}

func (s *Views) Notebook(ctx context.Context, docID string, wait bool) (view.Result[[]model.NotebookPage], error) {
	doc, err := s.selectDocument(docID)
	if err != nil {
		return view.Result[[]model.NotebookPage]{}, err
	}
	l, err := mount(s, s.notebooks, doc, view.Notebook)
	if err != nil {
		return view.Result[[]model.NotebookPage]{}, err
	}
	return settle(ctx, l, wait, s.maxWait)
}

func (s *Views) Resources(ctx context.Context, docID string, wait bool) (view.Result[[]model.ExternalResource], error) {
	doc, err := s.selectDocument(docID)
	if err != nil {
		return view.Result[[]model.ExternalResource]{}, err
	}
	l, err := mount(s, s.resources, doc, view.Resources)
	if err != nil {
		return view.Result[[]model.ExternalResource]{}, err
	}
	return settle(ctx, l, wait, s.maxWait)
}

func (s *Views) MindMap(ctx context.Context, docID string, wait bool) (view.Result[*model.MindMapNode], error) {
	doc, err := s.selectDocument(docID)
	if err != nil {
		return view.Result[*model.MindMapNode]{}, err
	}
	l, err := mount(s, s.mindmaps, doc, view.MindMap)
	if err != nil {
		return view.Result[*model.MindMapNode]{}, err
	}
	return settle(ctx, l, wait, s.maxWait)
}

func (s *Views) OpenChat(_ context.Context, docID string) (view.Snapshot, error) {
	doc, err := s.selectDocument(docID)
	if err != nil {
		return view.Snapshot{}, err
	}
	return s.chats.Open(doc).Snapshot(), nil
}

func (s *Views) Chat(_ context.Context, sessionID string) (view.Snapshot, error) {
	session, err := s.chats.Get(sessionID)
	if err != nil {
		return view.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *Views) SendChat(_ context.Context, sessionID, content string) (view.Snapshot, error) {
	session, err := s.chats.Get(sessionID)
	if err != nil {
		return view.Snapshot{}, err
	}
	if _, err := session.Send(content); err != nil {
		return view.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *Views) CloseChat(_ context.Context, sessionID string) error {
	return s.chats.Close(sessionID)
}

// Close stops every pending generation and chat reply.
func (s *Views) Close() {
	s.mu.Lock()
	s.closed = true
	for _, l := range s.notebooks {
		l.Stop()
	}
	for _, l := range s.resources {
		l.Stop()
	}
	for _, l := range s.mindmaps {
		l.Stop()
	}
	s.mu.Unlock()

	s.chats.CloseAll()
	s.logger.Info("views_closed")
}
