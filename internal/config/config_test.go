package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 4242, cfg.Port)
	assert.False(t, cfg.Encryption)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte("port: 9999\nmax_clients: 2\nencryption: true\nlog_level: debug\nwebsocket:\n  enabled: true\n  port: 8080\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 2, cfg.MaxClients)
	assert.True(t, cfg.Encryption)
	assert.True(t, cfg.WebSocket.Enabled)
	assert.Equal(t, 8080, cfg.WebSocket.Port)
	// untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, "/golf", cfg.WebSocket.Path)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "chatty"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
