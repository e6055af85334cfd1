package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"studydesk/internal/config"
	"studydesk/internal/database"
	"studydesk/internal/database/migration"
	"studydesk/internal/repository"
	"studydesk/internal/repository/memory"
	"studydesk/internal/repository/objectstore"
	"studydesk/internal/repository/postgres"
	"studydesk/internal/repository/redis"
	"studydesk/internal/storage"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSnapshots builds the snapshot backend selected by SNAPSHOT_BACKEND. The
// returned closer releases the backend connection on shutdown.
func openSnapshots(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.SnapshotRepository, io.Closer, error) {
	switch cfg.Snapshot.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return postgres.NewSnapshotPostgres(db), db, nil

	case config.BackendRedis:
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redis.NewSnapshotRedis(client, cfg.Redis.KeyPrefix), client, nil

	case config.BackendMinIO:
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		return objectstore.NewSnapshotObject(objStore, cfg.MinIO.Prefix), nopCloser{}, nil

	default:
		return memory.NewSnapshotMemory(), nopCloser{}, nil
	}
}
