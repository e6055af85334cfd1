package store

import (
	"context"
	"errors"
	"fmt"
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

func openMemory(t *testing.T) (*DocumentStore, *Adapter) {
	t.Helper()
	a := NewAdapter(memory.NewSnapshotMemory(), "documents", nil, nil)
	return Open(context.Background(), a, nil, nil), a
}

func TestDocumentStore_FreshStore(t *testing.T) {
	s, _ := openMemory(t)

	assert.Empty(t, s.Documents())
	_, ok := s.CurrentDocument()
	assert.False(t, ok)
}

func TestDocumentStore_AddAndSelect(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	doc1 := model.Document{ID: "1", Name: "notes.txt", Source: model.SourceComputer, DateAdded: t0}
	doc2 := model.Document{ID: "2", Name: "slides.pdf", Source: model.SourceComputer, DateAdded: t0.Add(time.Minute)}

	require.NoError(t, s.AddDocument(ctx, doc1))
	require.NoError(t, s.AddDocument(ctx, doc2))

	assert.Equal(t, []model.Document{doc1, doc2}, s.Documents())

	got, ok := s.SelectDocument("2")
	assert.True(t, ok)
	assert.Equal(t, doc2, got)
	cur, ok := s.CurrentDocument()
	assert.True(t, ok)
	assert.Equal(t, doc2, cur)

	_, ok = s.SelectDocument("9")
	assert.False(t, ok)
	_, ok = s.CurrentDocument()
	assert.False(t, ok)
}

func TestDocumentStore_PreservesCallOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	const n = 25
	for i := 0; i < n; i++ {
		require.NoError(t, s.AddDocument(ctx, model.Document{ID: fmt.Sprint(i), Name: fmt.Sprintf("doc-%d.txt", i)}))
	}

	docs := s.Documents()
	require.Len(t, docs, n)
	for i, d := range docs {
		assert.Equal(t, fmt.Sprint(i), d.ID)
	}
}

func TestDocumentStore_DuplicateIDsAreKept(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	first := model.Document{ID: "same", Name: "first.txt"}
	second := model.Document{ID: "same", Name: "second.txt"}
	require.NoError(t, s.AddDocument(ctx, first))
	require.NoError(t, s.AddDocument(ctx, second))

	docs := s.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "first.txt", docs[0].Name)
	assert.Equal(t, "second.txt", docs[1].Name)

	got, ok := s.SelectDocument("same")
	assert.True(t, ok)
	assert.Equal(t, first, got)
}

func TestDocumentStore_WriteThrough(t *testing.T) {
	ctx := context.Background()
	s, a := openMemory(t)

	doc := model.Document{ID: "1", Name: "notes.txt", DateAdded: time.Now().UTC(), Source: model.SourceImage}
	require.NoError(t, s.AddDocument(ctx, doc))

	persisted := a.Load(ctx)
	require.Len(t, persisted, 1)
	assert.Equal(t, "notes.txt", persisted[0].Name)

	// a second store over the same slot sees the document
	reopened := Open(ctx, a, nil, nil)
	assert.Len(t, reopened.Documents(), 1)
	_, ok := reopened.CurrentDocument()
	assert.False(t, ok)
}

func TestDocumentStore_SaveFailureKeepsDocument(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockSnapshotRepository)
	m.On("Read", mock.Anything, "documents").Return(nil, repository.ErrSnapshotNotFound)
	m.On("Write", mock.Anything, "documents", mock.Anything).Return(errors.New("quota exceeded"))

	s := Open(ctx, NewAdapter(m, "documents", nil, nil), nil, nil)
	err := s.AddDocument(ctx, model.Document{ID: "1", Name: "notes.txt"})

	assert.Error(t, err)
	assert.Len(t, s.Documents(), 1)
	_, ok := s.SelectDocument("1")
	assert.True(t, ok)
}

func TestDocumentStore_SelectDoesNoIO(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockSnapshotRepository)
	m.On("Read", mock.Anything, "documents").Return([]byte(`[{"id":"1","name":"notes.txt"}]`), nil).Once()

	s := Open(ctx, NewAdapter(m, "documents", nil, nil), nil, nil)
	_, ok := s.SelectDocument("1")
	assert.True(t, ok)
	_, ok = s.SelectDocument("404")
	assert.False(t, ok)

	// only the bootstrap read happened
	m.AssertExpectations(t)
	m.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentStore_DocumentsIsACopy(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	require.NoError(t, s.AddDocument(ctx, model.Document{ID: "1", Name: "notes.txt"}))

	docs := s.Documents()
	docs[0].Name = "changed"

	assert.Equal(t, "notes.txt", s.Documents()[0].Name)
}
