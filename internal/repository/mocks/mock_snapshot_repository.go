package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studydesk/internal/repository"
)

type MockSnapshotRepository struct {
	mock.Mock
}

var _ repository.SnapshotRepository = (*MockSnapshotRepository)(nil)

func (m *MockSnapshotRepository) Read(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSnapshotRepository) Write(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
