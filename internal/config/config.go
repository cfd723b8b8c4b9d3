package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the minigolf server.
type Server struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Capacity
	MaxClients int `yaml:"max_clients"`

	// Wire obfuscation. Off reproduces the plaintext captures most
	// clients and the proxy were recorded with.
	Encryption bool `yaml:"encryption"`

	// WebSocket bridge for browser clients
	WebSocket WebSocket `yaml:"websocket"`

	// Timeouts / queues
	ReadTimeout   time.Duration `yaml:"read_timeout"`    // idle client disconnect (default: 10s)
	WriteTimeout  time.Duration `yaml:"write_timeout"`   // per-write deadline (default: 5s)
	SendQueueSize int           `yaml:"send_queue_size"` // per-client outbox capacity (default: 256)

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// WebSocket holds the optional browser bridge listener settings.
type WebSocket struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	Path        string `yaml:"path"`
}

// Default returns Server config with sensible defaults.
func Default() Server {
	return Server{
		BindAddress:   "0.0.0.0",
		Port:          4242,
		MaxClients:    200,
		Encryption:    false,
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  5 * time.Second,
		SendQueueSize: 256,
		LogLevel:      "info",
		WebSocket: WebSocket{
			Enabled:     false,
			BindAddress: "0.0.0.0",
			Port:        4243,
			Path:        "/golf",
		},
	}
}

// Load loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel converts the configured log level string to a slog.Level.
// Unknown values fall back to info.
func (s Server) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
