package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/model"
	"studydesk/internal/repository/memory"
	"studydesk/internal/store"
	"studydesk/internal/upload"
)

func newStore(t *testing.T, docs ...model.Document) *store.DocumentStore {
	t.Helper()
	ctx := context.Background()
	s := store.Open(ctx, store.NewAdapter(memory.NewSnapshotMemory(), "documents", nil, nil), nil, nil)
	for _, d := range docs {
		require.NoError(t, s.AddDocument(ctx, d))
	}
	return s
}

var base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func sampleDocs() []model.Document {
	return []model.Document{
		{ID: "1", Name: "biology.pdf", Source: model.SourceComputer, DateAdded: base},
		{ID: "2", Name: "Algebra notes.txt", Source: model.SourceGoogleDrive, DateAdded: base.Add(2 * time.Hour)},
		{ID: "3", Name: "cell diagram.png", Source: model.SourceImage, DateAdded: base.Add(time.Hour)},
		{ID: "4", Name: "Lecture.mp4", Source: model.SourceVideo, DateAdded: base.Add(3 * time.Hour)},
		{ID: "5", Name: "marine biology.pdf", Source: model.SourceComputer, DateAdded: base.Add(4 * time.Hour)},
	}
}

func ids(docs []model.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func newDocumentService(t *testing.T, docs ...model.Document) (DocumentService, *store.DocumentStore, *upload.Manager) {
	t.Helper()
	s := newStore(t, docs...)
	m := upload.NewManager(s, upload.Config{Tick: time.Millisecond, Step: 25, Threshold: 100}, nil, nil)
	t.Cleanup(m.Close)
	svc, err := NewDocumentService(s, m, nil, nil)
	require.NoError(t, err)
	return svc, s, m
}

func TestNewDocumentService_SharedValidator(t *testing.T) {
	s := newStore(t)
	validate := validator.New()

	_, err := NewDocumentService(s, nil, validate, nil)
	require.NoError(t, err)

	assert.NoError(t, validate.Struct(ListQuery{Source: "video"}))
	assert.Error(t, validate.Struct(ListQuery{Source: "dropbox"}))
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDocumentService(t, sampleDocs()...)

	tests := []struct {
		name  string
		query ListQuery
		want  []string
		total int
	}{
		{name: "default is newest first", query: ListQuery{}, want: []string{"5", "4", "2", "3", "1"}, total: 5},
		{name: "date ascending", query: ListQuery{Sort: "date", Order: "asc"}, want: []string{"1", "3", "2", "4", "5"}, total: 5},
		{name: "name ascending ignores case", query: ListQuery{Sort: "name", Order: "asc"}, want: []string{"2", "1", "3", "4", "5"}, total: 5},
		{name: "name descending", query: ListQuery{Sort: "name", Order: "desc"}, want: []string{"5", "4", "3", "1", "2"}, total: 5},
		{name: "search is case insensitive", query: ListQuery{Q: "BIOLOGY"}, want: []string{"5", "1"}, total: 2},
		{name: "source filter", query: ListQuery{Source: "image"}, want: []string{"3"}, total: 1},
		{name: "search and source", query: ListQuery{Q: "notes", Source: "computer"}, want: []string{}, total: 0},
		{name: "limit and offset", query: ListQuery{Limit: 2, Offset: 1}, want: []string{"4", "2"}, total: 5},
		{name: "offset past the end", query: ListQuery{Offset: 10}, want: []string{}, total: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res.Items))
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, []model.Source{model.SourceComputer, model.SourceGoogleDrive, model.SourceImage, model.SourceVideo}, res.Sources)
		})
	}
}

func TestDocumentService_ListInvalidQuery(t *testing.T) {
	svc, _, _ := newDocumentService(t)

	for _, q := range []ListQuery{
		{Sort: "size"},
		{Order: "up"},
		{Source: "dropbox"},
		{Limit: -1},
		{Limit: 101},
		{Offset: -3},
	} {
		_, err := svc.List(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidQuery, "%+v", q)
	}
}

func TestDocumentService_ListEmpty(t *testing.T) {
	svc, _, _ := newDocumentService(t)

	res, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Sources)
	assert.Equal(t, 0, res.Total)
}

func TestDocumentService_Landing(t *testing.T) {
	svc, _, _ := newDocumentService(t, sampleDocs()...)

	l := svc.Landing(context.Background())
	assert.Equal(t, []string{"1", "2", "3"}, ids(l.Recent))
	assert.Equal(t, 2, l.More)
	require.Len(t, l.Sources, 4)
	assert.Equal(t, "Google Drive", l.Sources[1].Label)
	assert.Equal(t, "image/*", l.Sources[2].Accept)
	assert.Equal(t, "PDF, DOCX, TXT, JPG, PNG, MP4, MOV", l.Sources[3].Formats)
	assert.Equal(t, ".pdf,.docx,.txt,.md", l.Sources[0].Accept)
	assert.Len(t, l.Features, 4)

	empty, _, _ := newDocumentService(t)
	l = empty.Landing(context.Background())
	assert.Empty(t, l.Recent)
	assert.Equal(t, 0, l.More)
}

func TestDocumentService_Open(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newDocumentService(t, sampleDocs()...)

	detail, err := svc.Open(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Algebra notes.txt", detail.Document.Name)
	assert.Equal(t, "notebook", detail.DefaultTab)
	assert.Len(t, detail.Tabs, 4)

	cur, ok := s.CurrentDocument()
	require.True(t, ok)
	assert.Equal(t, "2", cur.ID)

	_, err = svc.Open(ctx, "9")
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok = s.CurrentDocument()
	assert.False(t, ok)
}

func TestDocumentService_UploadFlow(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newDocumentService(t)

	job, err := svc.StartUpload(ctx, upload.Request{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Source:      model.SourceComputer,
		Data:        []byte("Photosynthesis converts light."),
	})
	require.NoError(t, err)

	var done upload.Job
	require.Eventually(t, func() bool {
		done, err = svc.UploadStatus(ctx, job.ID)
		return err == nil && done.Status == upload.StatusComplete
	}, 2*time.Second, 5*time.Millisecond)

	docs := s.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "/document/"+docs[0].ID, done.Redirect)

	detail, err := svc.Open(ctx, done.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light.", detail.Document.Content)
}

func TestDocumentService_UploadErrors(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newDocumentService(t)

	_, err := svc.StartUpload(ctx, upload.Request{Source: model.SourceComputer})
	assert.ErrorIs(t, err, ErrFileRequired)
	assert.Empty(t, s.Documents())

	_, err = svc.UploadStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}
