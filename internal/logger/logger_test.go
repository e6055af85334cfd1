package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"studydesk/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("production json", func(t *testing.T) {
		l, err := New(config.EnvProduction, config.LogConfig{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		l, err := New(config.EnvProduction, config.LogConfig{Level: "loud"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("development console", func(t *testing.T) {
		l, err := New(config.EnvDevelopment, config.LogConfig{Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}
