package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cloudsoda/go-hresult/internal/config"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, closer, err := newWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()
	require.Equal(t, log.DebugLevel, l.GetLevel())

	l.WithField("value", "0x80004005").Debug("decoded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "decoded", entry["msg"])
	require.Equal(t, "0x80004005", entry["value"])
	require.Equal(t, "debug", entry["level"])
}

func TestNewText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, closer, err := newWithOutput(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	require.IsType(t, nopCloser{}, closer)
	require.NoError(t, closer.Close())

	l.Info("hidden")
	require.Zero(t, buf.Len())

	l.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestNewInvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := newWithOutput(config.LogConfig{Level: "loud", Format: "text"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewWithFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := config.LogConfig{
		Level:  "info",
		Format: "json",
		File: config.LogFileConfig{
			Enabled:      true,
			Dir:          dir,
			Filename:     "hresult",
			MaxAgeDays:   7,
			RotationDays: 1,
		},
	}

	var buf bytes.Buffer
	l, closer, err := newWithOutput(cfg, &buf)
	require.NoError(t, err)
	l.Info("to file")
	require.IsType(t, &rotatelogs.RotateLogs{}, closer)
	require.NoError(t, closer.Close())

	require.Contains(t, buf.String(), "to file")
	matches, err := filepath.Glob(filepath.Join(dir, "hresult.*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	bs, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	require.Contains(t, string(bs), "to file")
}
