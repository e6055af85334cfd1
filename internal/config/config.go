package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Snapshot backends selectable through SNAPSHOT_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMinIO    = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// RedisConfig holds connection settings for the redis snapshot backend.
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// SnapshotConfig selects where the document list snapshot lives.
type SnapshotConfig struct {
	Backend string
	Key     string
}

type LogConfig struct {
	Level  string
	Format string
}

// SimulationConfig tunes the timers that stand in for the absent backend work.
type SimulationConfig struct {
	Delay           time.Duration
	UploadTick      time.Duration
	UploadStep      int
	UploadThreshold int
	ChatSeed        int64
}

// RetentionConfig bounds how long finished upload jobs and idle chat sessions are kept.
type RetentionConfig struct {
	UploadJobTTL   time.Duration
	ChatSessionTTL time.Duration
	SweepInterval  time.Duration
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	Env         string
	Port        string
	BodyLimitMB int
	Snapshot    SnapshotConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	Log         LogConfig
	Simulation  SimulationConfig
	Retention   RetentionConfig
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &AppConfig{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		BodyLimitMB: v.GetInt("BODY_LIMIT_MB"),
		Snapshot: SnapshotConfig{
			Backend: strings.ToLower(v.GetString("SNAPSHOT_BACKEND")),
			Key:     v.GetString("SNAPSHOT_KEY"),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
		},
		Redis: RedisConfig{
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetInt("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			Prefix:    v.GetString("MINIO_PREFIX"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Simulation: SimulationConfig{
			Delay:           v.GetDuration("SIM_DELAY"),
			UploadTick:      v.GetDuration("UPLOAD_TICK"),
			UploadStep:      v.GetInt("UPLOAD_STEP"),
			UploadThreshold: v.GetInt("UPLOAD_THRESHOLD"),
			ChatSeed:        v.GetInt64("CHAT_SEED"),
		},
		Retention: RetentionConfig{
			UploadJobTTL:   v.GetDuration("UPLOAD_JOB_TTL"),
			ChatSessionTTL: v.GetDuration("CHAT_SESSION_TTL"),
			SweepInterval:  v.GetDuration("SWEEP_INTERVAL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *AppConfig) Validate() error {
	switch c.Snapshot.Backend {
	case BackendMemory, BackendPostgres, BackendRedis, BackendMinIO:
	default:
		return fmt.Errorf("unsupported snapshot backend %q", c.Snapshot.Backend)
	}
	if c.Snapshot.Key == "" {
		return errors.New("snapshot key is required")
	}
	if c.Simulation.Delay < 0 {
		return errors.New("simulated delay must not be negative")
	}
	if c.Simulation.UploadStep <= 0 {
		return errors.New("upload step must be positive")
	}
	if c.Simulation.UploadThreshold <= 0 {
		return errors.New("upload threshold must be positive")
	}
	if c.Simulation.UploadTick <= 0 {
		return errors.New("upload tick must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvProduction)
	v.SetDefault("PORT", "8080")
	v.SetDefault("BODY_LIMIT_MB", 20)

	v.SetDefault("SNAPSHOT_BACKEND", BackendMemory)
	v.SetDefault("SNAPSHOT_KEY", "documents")

	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SEC", 300)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "studydesk:")

	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "")
	v.SetDefault("MINIO_PREFIX", "snapshots")
	v.SetDefault("MINIO_USE_SSL", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SIM_DELAY", "1500ms")
	v.SetDefault("UPLOAD_TICK", "100ms")
	v.SetDefault("UPLOAD_STEP", 5)
	v.SetDefault("UPLOAD_THRESHOLD", 100)
	v.SetDefault("CHAT_SEED", 0)

	v.SetDefault("UPLOAD_JOB_TTL", "10m")
	v.SetDefault("CHAT_SESSION_TTL", "30m")
	v.SetDefault("SWEEP_INTERVAL", "1m")
}
