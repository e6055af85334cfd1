package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studydesk/internal/model"
	"studydesk/internal/service"
	"studydesk/internal/view"
)

type MockViewService struct {
	mock.Mock
}

var _ service.ViewService = (*MockViewService)(nil)

func (m *MockViewService) Notebook(ctx context.Context, docID string, wait bool) (view.Result[[]model.NotebookPage], error) {
	args := m.Called(ctx, docID, wait)
	return args.Get(0).(view.Result[[]model.NotebookPage]), args.Error(1)
}

func (m *MockViewService) Resources(ctx context.Context, docID string, wait bool) (view.Result[[]model.ExternalResource], error) {
	args := m.Called(ctx, docID, wait)
	return args.Get(0).(view.Result[[]model.ExternalResource]), args.Error(1)
}

func (m *MockViewService) MindMap(ctx context.Context, docID string, wait bool) (view.Result[*model.MindMapNode], error) {
	args := m.Called(ctx, docID, wait)
	return args.Get(0).(view.Result[*model.MindMapNode]), args.Error(1)
}

func (m *MockViewService) OpenChat(ctx context.Context, docID string) (view.Snapshot, error) {
	args := m.Called(ctx, docID)
	return args.Get(0).(view.Snapshot), args.Error(1)
}

func (m *MockViewService) Chat(ctx context.Context, sessionID string) (view.Snapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(view.Snapshot), args.Error(1)
}

func (m *MockViewService) SendChat(ctx context.Context, sessionID, content string) (view.Snapshot, error) {
	args := m.Called(ctx, sessionID, content)
	return args.Get(0).(view.Snapshot), args.Error(1)
}

func (m *MockViewService) CloseChat(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
