// SPDX-License-Identifier: MIT
//
// File: validator.go
// Role: Config validation.

package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges and enumerations, reporting every problem at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Session.StepDelayMs <= 0 {
		errs = append(errs, fmt.Sprintf("session.step_delay_ms must be positive, got %d", cfg.Session.StepDelayMs))
	}
	if cfg.Canvas.NodeRadius <= 0 {
		errs = append(errs, fmt.Sprintf("canvas.node_radius must be positive, got %g", cfg.Canvas.NodeRadius))
	}
	if cfg.Canvas.DefaultWeight < 1 {
		errs = append(errs, fmt.Sprintf("canvas.default_weight must be at least 1, got %d", cfg.Canvas.DefaultWeight))
	}
	if cfg.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q is not one of text, json", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
