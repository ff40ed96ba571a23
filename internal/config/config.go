package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var configFile string

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Session  SessionConfig  `mapstructure:"session"`
	Database DatabaseConfig `mapstructure:"database"`
	Report   ReportConfig   `mapstructure:"report"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig points the client at the Boxful backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig selects where the signed-in session is kept.
// Driver is "sqlite" or "postgres"; DSN is a file path for sqlite.
type SessionConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ReportConfig struct {
	Addr string `mapstructure:"addr"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func SetConfigFile(file string) {
	configFile = file
}

// LoadConfig reads defaults, then the YAML config file if any, then
// BOXFUL_* environment variables (BOXFUL_API_BASE_URL and so on).
func LoadConfig() (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetConfigName("boxful")
	}

	v.SetEnvPrefix("BOXFUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error loading configuration: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	if cfg.Session.Driver != "sqlite" && cfg.Session.Driver != "postgres" {
		return cfg, fmt.Errorf("invalid session.driver %q: want sqlite or postgres", cfg.Session.Driver)
	}
	if cfg.Session.Driver == "postgres" && strings.TrimSpace(cfg.Database.URL) == "" {
		return cfg, errors.New("database.url is required when session.driver is postgres")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// API
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", "10s")

	// Session
	v.SetDefault("session.driver", "sqlite")
	v.SetDefault("session.dsn", "data/session.db")

	// Database
	v.SetDefault("database.url", "")

	// Report server
	v.SetDefault("report.addr", "127.0.0.1:0")

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Get returns the environment variable key, or fallback when it is unset
// or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
