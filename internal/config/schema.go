// SPDX-License-Identifier: MIT
//
// File: schema.go
// Role: Config schema and defaults.

package config

import "time"

// Config is the full pathboard configuration.
type Config struct {
	Session   SessionConfig   `yaml:"session"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SessionConfig tunes run behaviour.
type SessionConfig struct {
	StepDelayMs        int  `yaml:"step_delay_ms"`
	LockEditsDuringRun bool `yaml:"lock_edits_during_run"`
	StopAtUnreachable  bool `yaml:"stop_at_unreachable"`
}

// StepDelay returns StepDelayMs as a duration.
func (s SessionConfig) StepDelay() time.Duration {
	return time.Duration(s.StepDelayMs) * time.Millisecond
}

// CanvasConfig tunes editing.
type CanvasConfig struct {
	NodeRadius    float64 `yaml:"node_radius"`
	DefaultWeight int64   `yaml:"default_weight"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig configures tracing export. An empty endpoint discards spans.
type TelemetryConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			StepDelayMs:        600,
			LockEditsDuringRun: true,
			StopAtUnreachable:  false,
		},
		Canvas: CanvasConfig{
			NodeRadius:    25,
			DefaultWeight: 1,
		},
		Server:    ServerConfig{Addr: ":8080"},
		Log:       LogConfig{Level: "info", Format: "text"},
		Telemetry: TelemetryConfig{Endpoint: ""},
	}
}
