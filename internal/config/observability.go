package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups logging, APM and health check settings.
type ObservabilityConfig struct {
	// ServiceName and Environment are always overwritten by LoadConfig.
	ServiceName string `koanf:"service_name" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"required"`

	// Format is "json" or "console". JSON is only honoured in production.
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold logs SQL statements slower than this as warnings.
	// Zero disables it. Parsed from duration strings like "250ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds New Relic APM settings. An empty LicenseKey disables
// the agent entirely.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the /status dependency checks.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout bounds each dependency check.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

// DefaultObservabilityConfig is used for every field not set through the
// environment.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixes agent output into our log format
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
		},
	}
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate applies the rules struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Timeout < time.Second {
		return fmt.Errorf("health_checks timeout must be at least 1s")
	}

	return nil
}

// GetLogLevel returns the configured level, defaulting by environment when
// none is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development", "local":
		if c.Logging.Level == "" {
			return "debug"
		}
	}
	return c.Logging.Level
}

// IsProduction reports whether the service runs in production.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
