// Package config handles configuration loading for studio-mcp.
//
// Configuration comes from an optional YAML file plus environment
// variables. The two secrets, AUTH_TOKEN and MY_NUMBER, are environment
// only and required; the process refuses to start without them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the reference deployment.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 8086
	DefaultTransport = "http"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	defaultHandlerTimeout = 30 * time.Second
)

// Config is the complete studio-mcp configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`

	// Secrets, environment only.
	AuthToken string `yaml:"-"`
	MyNumber  string `yaml:"-"`
}

// ServerConfig holds transport and timing configuration.
type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"` // "http" or "stdio"

	HandlerTimeout    time.Duration `yaml:"-"`
	HandlerTimeoutRaw string        `yaml:"handler_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from an optional YAML file at path, applies
// defaults, then applies environment overrides. An empty path skips the
// file entirely.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		expanded := os.Expand(string(data), func(name string) string {
			return os.Getenv(name)
		})
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if raw := cfg.Server.HandlerTimeoutRaw; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing handler_timeout: %w", err)
		}
		cfg.Server.HandlerTimeout = d
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           DefaultHost,
			Port:           DefaultPort,
			Transport:      DefaultTransport,
			HandlerTimeout: defaultHandlerTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.AuthToken = os.Getenv("AUTH_TOKEN")
	cfg.MyNumber = os.Getenv("MY_NUMBER")

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.AuthToken == "" {
		return errors.New("AUTH_TOKEN must be set")
	}
	if c.MyNumber == "" {
		return errors.New("MY_NUMBER must be set")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Server.Transport {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport: %q", c.Server.Transport)
	}
	if c.Server.HandlerTimeout <= 0 {
		return fmt.Errorf("handler timeout must be positive, got %s", c.Server.HandlerTimeout)
	}
	return nil
}
