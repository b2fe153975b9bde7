// Package logger configures logrus for the hresult binaries. The library packages never log.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/cloudsoda/go-hresult/internal/config"
)

// New builds a logger from cfg. Output goes to stderr, and also to a daily rotated file when
// cfg.File.Enabled is set. The returned Closer releases the log file and must be closed once
// the logger is no longer used.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	return newWithOutput(cfg, os.Stderr)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newWithOutput(cfg config.LogConfig, out io.Writer) (*log.Logger, io.Closer, error) {
	l := log.New()

	switch cfg.Format {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	default:
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	l.SetLevel(lvl)

	if !cfg.File.Enabled {
		l.SetOutput(out)
		return l, nopCloser{}, nil
	}

	w, err := fileWriter(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	l.SetOutput(io.MultiWriter(out, w))
	return l, w, nil
}

func fileWriter(cfg config.LogFileConfig) (*rotatelogs.RotateLogs, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	pattern := filepath.Join(cfg.Dir, cfg.Filename+".%Y%m%d.log")
	link := filepath.Join(cfg.Dir, cfg.Filename+".log")

	w, err := rotatelogs.New(
		pattern,
		rotatelogs.WithLinkName(link),
		rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(cfg.RotationDays)*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("open rotated log: %w", err)
	}
	return w, nil
}
