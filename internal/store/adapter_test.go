package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studydesk/internal/model"
	"studydesk/internal/repository"
	"studydesk/internal/repository/memory"
	repoMocks "studydesk/internal/repository/mocks"
)

func sampleDocs() []model.Document {
	t0 := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return []model.Document{
		{ID: "1", Name: "notes.txt", Type: "text/plain", Content: "chapter one", DateAdded: t0, Source: model.SourceComputer},
		{ID: "2", Name: "slides.pdf", Type: "application/pdf", Content: "Sample content", DateAdded: t0.Add(time.Hour), Source: model.SourceGoogleDrive},
	}
}

func TestAdapter_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(m *repoMocks.MockSnapshotRepository)
		want       []model.Document
	}{
		{
			name: "missing snapshot",
			setupMocks: func(m *repoMocks.MockSnapshotRepository) {
				m.On("Read", ctx, "documents").Return(nil, repository.ErrSnapshotNotFound)
			},
			want: []model.Document{},
		},
		{
			name: "backend error degrades to empty",
			setupMocks: func(m *repoMocks.MockSnapshotRepository) {
				m.On("Read", ctx, "documents").Return(nil, errors.New("connection refused"))
			},
			want: []model.Document{},
		},
		{
			name: "corrupt payload degrades to empty",
			setupMocks: func(m *repoMocks.MockSnapshotRepository) {
				m.On("Read", ctx, "documents").Return([]byte(`{not json`), nil)
			},
			want: []model.Document{},
		},
		{
			name: "json null",
			setupMocks: func(m *repoMocks.MockSnapshotRepository) {
				m.On("Read", ctx, "documents").Return([]byte(`null`), nil)
			},
			want: []model.Document{},
		},
		{
			name: "browser era snapshot with millisecond dates",
			setupMocks: func(m *repoMocks.MockSnapshotRepository) {
				m.On("Read", ctx, "documents").Return([]byte(
					`[{"id":"1714555800000","name":"notes.txt","type":"text/plain","content":"hi","dateAdded":"2024-05-01T09:30:00.000Z","source":"computer"}]`,
				), nil)
			},
			want: []model.Document{{
				ID:        "1714555800000",
				Name:      "notes.txt",
				Type:      "text/plain",
				Content:   "hi",
				DateAdded: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
				Source:    model.SourceComputer,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockSnapshotRepository)
			tt.setupMocks(m)

			got := NewAdapter(m, "documents", nil, nil).Load(ctx)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID, got[i].ID)
				assert.Equal(t, tt.want[i].Name, got[i].Name)
				assert.True(t, tt.want[i].DateAdded.Equal(got[i].DateAdded))
			}
			m.AssertExpectations(t)
		})
	}
}

func TestAdapter_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes full snapshot with iso dates", func(t *testing.T) {
		m := new(repoMocks.MockSnapshotRepository)
		m.On("Write", ctx, "documents", mock.MatchedBy(func(p []byte) bool {
			return bytes.Contains(p, []byte(`"dateAdded":"2024-05-01T09:30:00Z"`)) &&
				bytes.Contains(p, []byte(`"source":"google-drive"`))
		})).Return(nil)

		err := NewAdapter(m, "documents", nil, nil).Save(ctx, sampleDocs())

		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("nil list is stored as empty array", func(t *testing.T) {
		m := new(repoMocks.MockSnapshotRepository)
		m.On("Write", ctx, "documents", []byte(`[]`)).Return(nil)

		assert.NoError(t, NewAdapter(m, "documents", nil, nil).Save(ctx, nil))
		m.AssertExpectations(t)
	})

	t.Run("write error is wrapped", func(t *testing.T) {
		m := new(repoMocks.MockSnapshotRepository)
		m.On("Write", ctx, "documents", mock.Anything).Return(errors.New("quota exceeded"))

		err := NewAdapter(m, "documents", nil, nil).Save(ctx, sampleDocs())

		assert.EqualError(t, err, "write snapshot: quota exceeded")
	})
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(memory.NewSnapshotMemory(), "documents", nil, nil)

	in := sampleDocs()
	require.NoError(t, a.Save(ctx, in))

	out := a.Load(ctx)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Type, out[i].Type)
		assert.Equal(t, in[i].Content, out[i].Content)
		assert.Equal(t, in[i].Source, out[i].Source)
		assert.True(t, in[i].DateAdded.Equal(out[i].DateAdded))
	}

	// save(load()) reproduces the same snapshot
	require.NoError(t, a.Save(ctx, out))
	again := a.Load(ctx)
	assert.Equal(t, out, again)
}
