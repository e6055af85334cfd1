package view

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studydesk/internal/metrics"
	"studydesk/internal/model"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionClosed   = errors.New("chat session is closed")
	ErrSessionNotFound = errors.New("chat session not found")
)

// Greeting is the first message of every session.
func Greeting(doc model.Document) string {
	return fmt.Sprintf("Hello! I'm your AI learning assistant. I've analyzed \"%s\" and I'm ready to help you understand the content better. You can ask me questions about the document or test your knowledge.", doc.Name)
}

// ChatSession is one mounted chat view. Messages only grow; every Send adds a
// user message at once and one assistant reply after the delay.
type ChatSession struct {
	ID         string
	DocumentID string

	mu         sync.Mutex
	messages   []model.ChatMessage
	pending    map[uint64]*time.Timer
	nextReply  uint64
	closed     bool
	lastActive time.Time

	delay   time.Duration
	picker  ReplyPicker
	now     func() time.Time
	metrics *metrics.Recorder
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	SessionID  string              `json:"sessionId"`
	DocumentID string              `json:"documentId"`
	Messages   []model.ChatMessage `json:"messages"`
	Typing     bool                `json:"typing"`
}

func newChatSession(doc model.Document, delay time.Duration, picker ReplyPicker, now func() time.Time, rec *metrics.Recorder) *ChatSession {
	s := &ChatSession{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		pending:    make(map[uint64]*time.Timer),
		lastActive: now(),
		delay:      delay,
		picker:     picker,
		now:        now,
		metrics:    rec,
	}
	s.appendLocked(Greeting(doc), model.SenderAI)
	return s
}

func (s *ChatSession) appendLocked(content string, sender model.Sender) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    sender,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	s.metrics.ChatMessage(string(sender))
	return msg
}

// Send appends the user's message and schedules the assistant reply.
func (s *ChatSession) Send(content string) (model.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.ChatMessage{}, ErrSessionClosed
	}

	msg := s.appendLocked(content, model.SenderUser)
	s.lastActive = msg.Timestamp

	// the timer may fire before AfterFunc returns; it is found by id, not by *Timer
	id := s.nextReply
	s.nextReply++
	s.pending[id] = time.AfterFunc(s.delay, func() { s.reply(id) })
	return msg, nil
}

func (s *ChatSession) reply(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	delete(s.pending, id)
	s.appendLocked(s.picker.Pick(), model.SenderAI)
}

// Snapshot copies the messages and reports whether a reply is still pending.
func (s *ChatSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]model.ChatMessage, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{
		SessionID:  s.ID,
		DocumentID: s.DocumentID,
		Messages:   msgs,
		Typing:     len(s.pending) > 0,
	}
}

// Close stops pending replies. Replies that fire afterwards are dropped.
func (s *ChatSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
}

func (s *ChatSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// ChatHub keeps the open chat sessions by id.
type ChatHub struct {
	mu       sync.RWMutex
	sessions map[string]*ChatSession

	delay   time.Duration
	picker  ReplyPicker
	logger  *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func NewChatHub(delay time.Duration, picker ReplyPicker, logger *zap.Logger, rec *metrics.Recorder) *ChatHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHub{
		sessions: make(map[string]*ChatSession),
		delay:    delay,
		picker:   picker,
		logger:   logger,
		metrics:  rec,
		now:      time.Now,
	}
}

// Open mounts a new session for doc, starting with the greeting.
func (h *ChatHub) Open(doc model.Document) *ChatSession {
	s := newChatSession(doc, h.delay, h.picker, h.now, h.metrics)

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	h.logger.Debug("chat_opened", zap.String("session_id", s.ID), zap.String("document_id", doc.ID))
	return s
}

func (h *ChatHub) Get(id string) (*ChatSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close unmounts the session.
func (h *ChatHub) Close(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	h.logger.Debug("chat_closed", zap.String("session_id", id))
	return nil
}

// CloseIdle unmounts sessions with no activity for maxIdle.
func (h *ChatHub) CloseIdle(maxIdle time.Duration) int {
	cutoff := h.now().Add(-maxIdle)

	h.mu.Lock()
	var idle []*ChatSession
	for id, s := range h.sessions {
		if s.idleSince().Before(cutoff) {
			idle = append(idle, s)
			delete(h.sessions, id)
		}
	}
	h.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// CloseAll unmounts every session.
func (h *ChatHub) CloseAll() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*ChatSession)
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
