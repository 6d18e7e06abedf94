// Package logger configures zerolog and the optional New Relic agent.
//
// In production with JSON format, log lines are forwarded to New Relic
// through the zerologWriter integration when the agent is enabled; every
// other environment gets a console writer. SQL statements are only traced in
// the "local" environment, through NewPgxLogger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/records-api/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const timeFormat = "2006-01-02 15:04:05"

// LoggerService owns the New Relic application, nil when disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts the New Relic agent when a license key is
// configured. Agent start-up failures disable the agent instead of failing
// the service.
func NewLoggerService(cfg *config.ObservabilityConfig) *LoggerService {
	service := &LoggerService{}

	if cfg.NewRelic.LicenseKey == "" {
		fmt.Fprintln(os.Stderr, "New Relic license key not provided, skipping initialization")
		return service
	}

	configOptions := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}

	if cfg.NewRelic.DebugLogging {
		configOptions = append(configOptions, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(configOptions...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize New Relic: %v\n", err)
		return service
	}

	service.nrApp = app
	fmt.Fprintf(os.Stderr, "New Relic initialized for app: %s\n", cfg.ServiceName)
	return service
}

// Shutdown flushes and stops the agent.
func (ls *LoggerService) Shutdown() {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// GetApplication returns the New Relic application, or nil.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// NewLogger builds a logger without New Relic forwarding.
func NewLogger(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewLoggerWithService(cfg, nil)
}

// NewLoggerWithService builds the application logger.
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	level := parseLevel(cfg.GetLogLevel())

	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer
	if cfg.IsProduction() && cfg.Logging.Format == "json" {
		writer = os.Stdout
		if loggerService != nil && loggerService.nrApp != nil {
			writer = zerologWriter.New(os.Stdout, loggerService.nrApp)
		}
	} else {
		writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Stack().Logger()
	}

	return logger
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTraceContext adds the transaction's trace and span ids to logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

// NewPgxLogger builds the console logger used for local SQL tracing.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				if len(v) > 200 {
					return v[:200] + "..."
				}
				return v
			case []byte:
				return string(v)
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("database", "postgres").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
