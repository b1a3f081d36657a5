package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultObservabilityConfigIsValid(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "campustore", cfg.ServiceName)
	assert.Equal(t, 100*time.Millisecond, cfg.Logging.SlowQueryThreshold)
	assert.Empty(t, cfg.NewRelic.LicenseKey)
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr string
	}{
		{
			name:    "missing service name",
			mutate:  func(c *ObservabilityConfig) { c.ServiceName = "" },
			wantErr: "service_name is required",
		},
		{
			name:    "bad level",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad format",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
		{
			name:    "negative slow query threshold",
			mutate:  func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second },
			wantErr: "slow_query_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetLogLevelDefaults(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  string
	}{
		{"production", "", "info"},
		{"development", "", "debug"},
		{"local", "", "debug"},
		{"production", "debug", "debug"},
		{"development", "warn", "warn"},
		{"staging", "", ""},
	}

	for _, tt := range tests {
		cfg := &ObservabilityConfig{Environment: tt.env}
		cfg.Logging.Level = tt.level
		assert.Equal(t, tt.want, cfg.GetLogLevel(), "env=%s level=%s", tt.env, tt.level)
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&ObservabilityConfig{Environment: "production"}).IsProduction())
	assert.False(t, (&ObservabilityConfig{Environment: "local"}).IsProduction())
}
