package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/rjongens/dnswatch/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_AllLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "debug", "invalid", ""}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger := logging.Configure(logging.Config{Level: level})
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_DebugEnablesDebug(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "DEBUG"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestConfigure_DefaultLevelIsInfo(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "bogus"})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestConfigure_SetsDefault(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INFO", JSON: true})
	assert.Equal(t, logger, slog.Default())
}
