package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/model"
	"studydesk/internal/view"
)

func newViews(t *testing.T, delay time.Duration) *Views {
	t.Helper()
	s := newStore(t, sampleDocs()...)
	v := NewViewService(s, view.NewChatHub(delay, view.FixedPicker(0), nil, nil), delay, nil)
	t.Cleanup(v.Close)
	return v
}

func TestViews_NotebookWait(t *testing.T) {
	v := newViews(t, 5*time.Millisecond)

	res, err := v.Notebook(context.Background(), "1", true)
	require.NoError(t, err)
	assert.Equal(t, view.StateReady, res.State)
	require.Len(t, res.Value, 4)
	assert.Contains(t, res.Value[0].Content, `"biology.pdf"`)
}

func TestViews_PendingThenReady(t *testing.T) {
	ctx := context.Background()
	v := newViews(t, 30*time.Millisecond)

	res, err := v.MindMap(ctx, "4", false)
	require.NoError(t, err)
	assert.Equal(t, view.StatePending, res.State)

	require.Eventually(t, func() bool {
		res, err = v.MindMap(ctx, "4", false)
		return err == nil && res.State == view.StateReady
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Lecture", res.Value.Label)
}

func TestViews_UnknownDocument(t *testing.T) {
	ctx := context.Background()
	v := newViews(t, time.Millisecond)

	_, err := v.Notebook(ctx, "9", true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = v.Resources(ctx, "9", true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = v.MindMap(ctx, "9", true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = v.OpenChat(ctx, "9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViews_ResourcesSelectsDocument(t *testing.T) {
	v := newViews(t, time.Millisecond)

	res, err := v.Resources(context.Background(), "3", true)
	require.NoError(t, err)
	assert.Len(t, res.Value, 5)

	cur, ok := v.store.CurrentDocument()
	require.True(t, ok)
	assert.Equal(t, "3", cur.ID)
}

func TestViews_WaitHonoursContext(t *testing.T) {
	v := newViews(t, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res, err := v.Notebook(ctx, "1", true)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, view.StatePending, res.State)
}

func TestViews_WaitIsBounded(t *testing.T) {
	v := newViews(t, time.Hour)
	v.maxWait = 20 * time.Millisecond

	start := time.Now()
	res, err := v.Resources(context.Background(), "2", true)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, view.StatePending, res.State)
	assert.Less(t, time.Since(start), time.Second)
}

func TestViews_ClosedRejectsNewViews(t *testing.T) {
	v := newViews(t, time.Hour)
	_, err := v.Notebook(context.Background(), "1", false)
	require.NoError(t, err)

	v.Close()

	_, err = v.Notebook(context.Background(), "2", false)
	assert.ErrorIs(t, err, ErrViewsClosed)
}

func TestViews_ChatConversation(t *testing.T) {
	ctx := context.Background()
	v := newViews(t, 20*time.Millisecond)

	snap, err := v.OpenChat(ctx, "2")
	require.NoError(t, err)
	require.Len(t, snap.Messages, 1)
	id := snap.SessionID

	snap, err = v.SendChat(ctx, id, "What is this about?")
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 2)
	assert.Equal(t, model.SenderUser, snap.Messages[1].Sender)

	require.Eventually(t, func() bool {
		snap, err = v.Chat(ctx, id)
		return err == nil && len(snap.Messages) == 3
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, view.CannedReplies[0], snap.Messages[2].Content)

	_, err = v.SendChat(ctx, id, "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	require.NoError(t, v.CloseChat(ctx, id))
	_, err = v.Chat(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, v.CloseChat(ctx, id), ErrSessionNotFound)
}
