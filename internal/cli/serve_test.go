package cli

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/clubhouse/internal/config"
)

func TestServeConfigUsesLogFormat(t *testing.T) {
	orig := config.Logger.Formatter
	t.Cleanup(func() { config.Logger.SetFormatter(orig) })

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HTTP_ADDRESS", ":9000")
	dir := t.TempDir()

	cfg := serveConfig(&RootOptions{DataDir: dir, LogLevel: "debug"}, "")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9000", cfg.HTTPAddress)
	assert.Equal(t, dir, cfg.DataDir)
	assert.IsType(t, &logrus.JSONFormatter{}, config.Logger.Formatter)
	assert.Equal(t, logrus.DebugLevel, config.Logger.GetLevel())

	t.Setenv("LOG_FORMAT", "text")
	cfg = serveConfig(&RootOptions{DataDir: dir, LogLevel: "info"}, "127.0.0.1:8081")
	assert.Equal(t, "127.0.0.1:8081", cfg.HTTPAddress)
	assert.IsType(t, &logrus.TextFormatter{}, config.Logger.Formatter)
}
