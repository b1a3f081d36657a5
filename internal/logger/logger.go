// Package logger configures the application's logging and
// observability plumbing.
//
// It builds the zerolog application logger from observability config
// and, when a New Relic license key is present, wires the agent in so
// logs, traces, and metrics are forwarded for debugging.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chanakya-dev/campustore/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is disabled the service still exists but its nrApp is
// nil, and every consumer must treat GetApplication() == nil as "no
// instrumentation".
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when the
// agent is not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes buffered agent data. It is a no-op when the agent
// is not configured.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s == nil || s.nrApp == nil {
		return
	}
	s.nrApp.Shutdown(timeout)
}

// New builds the application logger and the LoggerService.
//
// Behavior:
//   - Log level comes from observability config (with per-environment
//     defaults).
//   - Format "console" writes human-friendly output; "json" writes
//     machine-parseable lines.
//   - When a New Relic license key is configured, the agent is started
//     and (if enabled) log forwarding is wired through zerologWriter so
//     each line carries trace linking metadata.
//
// A missing license key is not an error: the returned LoggerService
// simply carries a nil application.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", obs.GetLogLevel(), err)
	}

	service := &LoggerService{}

	if obs.NewRelic.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
		}

		nrApp, err := newrelic.NewApplication(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize newrelic application: %w", err)
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	// Log forwarding only makes sense for JSON output; the console
	// writer's decorated lines would pollute the New Relic pipeline.
	if service.nrApp != nil && obs.NewRelic.AppLogForwardingEnabled && obs.Logging.Format == "json" {
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &logger, service, nil
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span IDs so log lines can be correlated with traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	md := txn.GetTraceMetadata()
	if md.TraceID == "" {
		return logger
	}
	return logger.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL logging is noisy, so it gets its own component field and the
// console format regardless of the application format.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level
// scale (tracelog counts upward with verbosity; zerolog counts down).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
