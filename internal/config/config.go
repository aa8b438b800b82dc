// Package config provides configuration loading and validation for the dashboard.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no config path is given and it exists.
const DefaultConfigFile = "config.yaml"

// Config is the complete dashboard configuration.
// Precedence, lowest first: Default, YAML file, environment, CLI flags.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Data      DataConfig      `yaml:"data"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host" validate:"required"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	TemplatesDir    string        `yaml:"templates_dir"` // read on every request in debug mode
	TrustProxy      bool          `yaml:"trust_proxy"`   // take the client IP from X-Forwarded-For / X-Real-IP
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// DataConfig locates the job postings CSV.
type DataConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// RateLimitConfig controls per-client request limits.
type RateLimitConfig struct {
	Enabled                bool     `yaml:"enabled"`
	RequestsPerMinute      int      `yaml:"requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	ChartRequestsPerMinute int      `yaml:"chart_requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	Burst                  int      `yaml:"burst" validate:"gte=0"`
	Whitelist              []string `yaml:"whitelist" validate:"dive,ip"`
}

// TracingConfig controls OpenTelemetry export. An empty endpoint disables export.
type TracingConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" validate:"omitempty,hostname_port"`
	ServiceName  string `yaml:"service_name" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			TemplatesDir:    "internal/views/templates",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{Path: "data/ai_job_market.csv"},
		Log:  LogConfig{Level: "info", Format: "console"},
		RateLimit: RateLimitConfig{
			Enabled:                true,
			RequestsPerMinute:      600,
			ChartRequestsPerMinute: 60,
			Burst:                  20,
		},
		Tracing: TracingConfig{ServiceName: "jobdash"},
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. When path is empty, JOBDASH_CONFIG and then DefaultConfigFile
// are tried; a missing default file is not an error. The result is not
// validated so callers can apply flag overrides first.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env, ok := os.LookupEnv(EnvConfig); ok && env != "" {
			path, explicit = env, true
		} else {
			path = DefaultConfigFile
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(bytes.NewReader(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decode overlays YAML from r onto cfg. Unknown keys are rejected.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks struct constraints and returns a *ValidationError
// naming every failing field.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: "invalid configuration", Cause: err}
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
	}
	return &ValidationError{Fields: fields, Message: "invalid configuration", Cause: err}
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
