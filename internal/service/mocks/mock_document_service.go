package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studydesk/internal/service"
	"studydesk/internal/upload"
)

type MockDocumentService struct {
	mock.Mock
}

var _ service.DocumentService = (*MockDocumentService)(nil)

func (m *MockDocumentService) Landing(ctx context.Context) service.Landing {
	args := m.Called(ctx)
	return args.Get(0).(service.Landing)
}

func (m *MockDocumentService) List(ctx context.Context, q service.ListQuery) (*service.DocumentList, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentList), args.Error(1)
}

func (m *MockDocumentService) Open(ctx context.Context, id string) (*service.DocumentDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) StartUpload(ctx context.Context, req upload.Request) (upload.Job, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(upload.Job), args.Error(1)
}

func (m *MockDocumentService) UploadStatus(ctx context.Context, jobID string) (upload.Job, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(upload.Job), args.Error(1)
}
