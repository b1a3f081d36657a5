package logger

import (
	"testing"

	"github.com/chanakya-dev/campustore/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutNewRelic(t *testing.T) {
	cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}

	log, service, err := New(cfg)

	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Nil(t, service.GetApplication())
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	// Shutdown must be safe with no agent configured.
	service.Shutdown(0)
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}
	cfg.Observability.Logging.Level = "noisy"

	_, _, err := New(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoggerServiceNilReceiver(t *testing.T) {
	var service *LoggerService

	assert.Nil(t, service.GetApplication())
	service.Shutdown(0)
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()
	got := WithTraceContext(base, nil)
	assert.Equal(t, base, got)
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  int
	}{
		{zerolog.TraceLevel, 6},
		{zerolog.DebugLevel, 5},
		{zerolog.InfoLevel, 4},
		{zerolog.WarnLevel, 3},
		{zerolog.ErrorLevel, 2},
		{zerolog.FatalLevel, 2},
		{zerolog.Disabled, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPgxTraceLogLevel(tt.level), "level %s", tt.level)
	}
}
