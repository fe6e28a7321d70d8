package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	minJWTSecretLength = 16
)

type Config struct {
	HTTPPort    int    `koanf:"http_port"`
	DataBackend string `koanf:"data_backend"`

	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`
	MigrateOnStart   bool   `koanf:"migrate_on_start"`

	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
	Timezone  string        `koanf:"timezone"`
	LogLevel  string        `koanf:"log_level"`

	AMQPURL        string `koanf:"amqp_url"`
	AMQPExchange   string `koanf:"amqp_exchange"`
	EventWorkers   int    `koanf:"event_workers"`
	EventQueueSize int    `koanf:"event_queue_size"`
}

// In all cases the default behavior should be for the docker compose setup.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http_port":         9446,
		"data_backend":      BackendPostgres,
		"postgres_address":  "localhost",
		"postgres_port":     "5433",
		"postgres_db":       "postgres",
		"postgres_username": "postgres",
		"postgres_password": "testpassword",
		"migrate_on_start":  false,
		"token_ttl":         "720h",
		"timezone":          "Local",
		"log_level":         "info",
		"amqp_exchange":     "expense-tracker.events",
		"event_workers":     2,
		"event_queue_size":  1000,
	}
}

// Load reads configuration from, in increasing precedence: built-in defaults,
// the optional YAML file at path, and environment variables (a .env file in the
// working directory is loaded into the environment first).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ProcessEnvironmentVariables loads the config named by CONFIG_FILE, if any,
// and validates it.
func ProcessEnvironmentVariables() (*Config, error) {
	cfg, err := Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http_port %d out of range", c.HTTPPort))
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("jwt_secret must be at least %d bytes", minJWTSecretLength))
	}
	switch c.DataBackend {
	case BackendPostgres, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("data_backend %q must be %q or %q", c.DataBackend, BackendPostgres, BackendMemory))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	if c.EventWorkers < 1 {
		errs = append(errs, errors.New("event_workers must be at least 1"))
	}
	if c.EventQueueSize < 1 {
		errs = append(errs, errors.New("event_queue_size must be at least 1"))
	}
	if c.AMQPURL != "" {
		u, err := url.Parse(c.AMQPURL)
		if err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			errs = append(errs, fmt.Errorf("amqp_url must use the amqp or amqps scheme"))
		}
	}

	return errors.Join(errs...)
}

// Location returns the timezone used for period arithmetic.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
