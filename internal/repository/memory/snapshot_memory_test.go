package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/repository"
)

func TestSnapshotMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotMemory()

	_, err := repo.Read(ctx, "documents")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, repo.Write(ctx, "documents", payload))

	// the stored payload must not alias the caller's buffer
	payload[0] = 'x'

	got, err := repo.Read(ctx, "documents")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, repo.Write(ctx, "documents", []byte(`[]`)))
	got, err = repo.Read(ctx, "documents")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	assert.NoError(t, repo.Ping(ctx))
}
