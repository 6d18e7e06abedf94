// Package config loads the service configuration from the environment.
//
// Variables carry the RECORDS_ prefix and use "." for nesting, e.g.
// RECORDS_DATABASE.HOST -> database.host -> Config.Database.Host. A `.env`
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "RECORDS_"

// ServiceName tags logs and traces.
const ServiceName = "records-api"

// Config is the root configuration object.
//
// Observability is optional; variables under observability.* override
// DefaultObservabilityConfig field by field.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development",
// "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`

	// BodyLimit caps request bodies, in echo's size notation ("1M").
	BodyLimit string `koanf:"body_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// LoadConfig reads RECORDS_* variables, validates them and applies
// observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	return fromKoanf(k)
}

// listKeys are comma-separated in the environment.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

func envValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Server.BodyLimit == "" {
		mainConfig.Server.BodyLimit = "1M"
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// DSN builds the postgres:// connection string, escaping the credentials.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}
