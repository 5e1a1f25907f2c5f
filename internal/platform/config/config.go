// Package config loads service configuration from an optional .env file,
// an optional YAML file and JAVA_SERVICE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment.
const EnvPrefix = "JAVA_SERVICE"

// Config is the root configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Docs   DocsConfig   `mapstructure:"docs"`
	API    APIConfig    `mapstructure:"api"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DocsConfig struct {
	Path string `mapstructure:"path"`
}

// APIConfig overrides the documentation metadata. Empty values keep the built-in defaults.
type APIConfig struct {
	Title        string `mapstructure:"title"`
	Description  string `mapstructure:"description"`
	ContactName  string `mapstructure:"contact_name"`
	ContactEmail string `mapstructure:"contact_email"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Load reads .env from the working directory when present, then the optional
// YAML file at path, then overlays environment variables
// (e.g. JAVA_SERVICE_SERVER_PORT). A bare PORT variable wins over the
// prefixed one, matching what Cloud Run and similar platforms inject.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range 1-65535", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if !strings.HasPrefix(c.Docs.Path, "/") {
		return fmt.Errorf("docs path %q must start with /", c.Docs.Path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("docs.path", "/api-docs")

	v.SetDefault("api.title", "")
	v.SetDefault("api.description", "")
	v.SetDefault("api.contact_name", "")
	v.SetDefault("api.contact_email", "")

	v.SetDefault("log.level", "info")
}
