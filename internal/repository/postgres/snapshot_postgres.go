package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studydesk/internal/repository"
)

// SnapshotPostgres is a PostgreSQL implementation of repository.SnapshotRepository.
// It uses database/sql with parameterized queries against the snapshots table.
type SnapshotPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewSnapshotPostgres creates a new SnapshotPostgres repository.
func NewSnapshotPostgres(db *sql.DB) *SnapshotPostgres {
	return &SnapshotPostgres{db: db, now: time.Now}
}

var _ repository.SnapshotRepository = (*SnapshotPostgres)(nil)

// Read fetches the payload stored under key.
func (r *SnapshotPostgres) Read(ctx context.Context, key string) ([]byte, error) {
	const q = `
		SELECT payload
		FROM snapshots
		WHERE key = $1
	`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Write upserts the payload under key, replacing any previous snapshot.
func (r *SnapshotPostgres) Write(ctx context.Context, key string, payload []byte) error {
	const q = `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, key, string(payload), r.now().UTC())
	return err
}

// Ping checks database connectivity.
func (r *SnapshotPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
