package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateRPS         = 20
	DefaultRateBurst       = 40
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "./logs"
	DefaultLogFilename     = "hresult"
	DefaultLogMaxAgeDays   = 7
	DefaultLogRotationDays = 1
)

// setDefaults registers every key so that AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.rate_rps", DefaultRateRPS)
	v.SetDefault("server.rate_burst", DefaultRateBurst)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.dir", DefaultLogDir)
	v.SetDefault("log.file.filename", DefaultLogFilename)
	v.SetDefault("log.file.max_age_days", DefaultLogMaxAgeDays)
	v.SetDefault("log.file.rotation_days", DefaultLogRotationDays)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// ApplyDefaults fills zero values.
func (s *ServerConfig) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = DefaultReadTimeout
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = DefaultWriteTimeout
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = DefaultShutdownTimeout
	}
	if s.RateRPS == 0 {
		s.RateRPS = DefaultRateRPS
	}
	if s.RateBurst <= 0 {
		s.RateBurst = DefaultRateBurst
	}
}

// ApplyDefaults fills zero values.
func (l *LogConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if l.Format == "" {
		l.Format = DefaultLogFormat
	}
	if l.File.Dir == "" {
		l.File.Dir = DefaultLogDir
	}
	if l.File.Filename == "" {
		l.File.Filename = DefaultLogFilename
	}
	if l.File.MaxAgeDays <= 0 {
		l.File.MaxAgeDays = DefaultLogMaxAgeDays
	}
	if l.File.RotationDays <= 0 {
		l.File.RotationDays = DefaultLogRotationDays
	}
}
