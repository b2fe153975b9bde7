// Package config loads the settings of the hresult binaries from a .env file, an optional
// YAML file and HRESULT_ prefixed environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HRESULT"

// Config is the full configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the lookup service.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	RateRPS         float64       `yaml:"rate_rps" mapstructure:"rate_rps"`
	RateBurst       int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string        `yaml:"level" mapstructure:"level"`
	Format string        `yaml:"format" mapstructure:"format"`
	File   LogFileConfig `yaml:"file" mapstructure:"file"`
}

// LogFileConfig configures the rotated log file. It is disabled by default.
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// LoadOptions controls where Load looks for files.
type LoadOptions struct {
	ConfigPath string // directory holding hresult.yaml, default "."
	EnvFile    string // .env file, default ".env"
}

// Load reads the configuration. Missing .env and YAML files are not errors.
func Load(opts LoadOptions) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s failed: %w", envFile, err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = "."
	}

	v := viper.New()
	v.SetConfigName("hresult")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config failed: %w", err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the binaries cannot run with.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Server.RateRPS < 0 {
		return fmt.Errorf("invalid config: server.rate_rps must not be negative, got %v", c.Server.RateRPS)
	}
	if c.Server.Addr == "" {
		return errors.New("invalid config: server.addr is empty")
	}
	return nil
}
