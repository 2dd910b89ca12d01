package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. LEDGERDASH_SERVER_ADDR.
const EnvPrefix = "LEDGERDASH"

// Config represents the top-level ledgerdash.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger" mapstructure:"ledger"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// LedgerConfig points at the GnuCash book.
type LedgerConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig controls the dashboard HTTP server.
type ServerConfig struct {
	Addr                   string `yaml:"addr" mapstructure:"addr"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// DisplayConfig controls presentation.
type DisplayConfig struct {
	Currency         string `yaml:"currency" mapstructure:"currency"`
	DefaultRangeDays int    `yaml:"default_range_days" mapstructure:"default_range_days"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "console" or "json"
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   "127.0.0.1:8050",
			ShutdownTimeoutSeconds: 10,
		},
		Display: DisplayConfig{
			Currency:         "€",
			DefaultRangeDays: 365,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// LEDGERDASH_* environment variables, in increasing priority. A .env file in
// the working directory is read first if present. An empty path skips the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr != nil {
				return nil, fmt.Errorf("reading config: %w", statErr)
			}
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server.addr must not be empty")
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout_seconds must be positive, got %d", c.Server.ShutdownTimeoutSeconds)
	}
	if c.Display.DefaultRangeDays <= 0 {
		return fmt.Errorf("config: display.default_range_days must be positive, got %d", c.Display.DefaultRangeDays)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it on Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("ledger.path", d.Ledger.Path)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.shutdown_timeout_seconds", d.Server.ShutdownTimeoutSeconds)
	v.SetDefault("display.currency", d.Display.Currency)
	v.SetDefault("display.default_range_days", d.Display.DefaultRangeDays)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
