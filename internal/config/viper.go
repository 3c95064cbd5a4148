// SPDX-License-Identifier: MIT
//
// File: viper.go
// Role: flag and environment overlay via viper.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: PATHBOARD_SESSION_STEP_DELAY_MS.
const EnvPrefix = "PATHBOARD"

// Config keys shared by YAML, flags and environment.
const (
	KeyStepDelayMs        = "session.step_delay_ms"
	KeyLockEditsDuringRun = "session.lock_edits_during_run"
	KeyStopAtUnreachable  = "session.stop_at_unreachable"
	KeyNodeRadius         = "canvas.node_radius"
	KeyDefaultWeight      = "canvas.default_weight"
	KeyServerAddr         = "server.addr"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
	KeyTelemetryEndpoint  = "telemetry.endpoint"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"step-delay-ms":       KeyStepDelayMs,
	"lock-edits":          KeyLockEditsDuringRun,
	"stop-at-unreachable": KeyStopAtUnreachable,
	"node-radius":         KeyNodeRadius,
	"default-weight":      KeyDefaultWeight,
	"addr":                KeyServerAddr,
	"log-level":           KeyLogLevel,
	"log-format":          KeyLogFormat,
	"otlp-endpoint":       KeyTelemetryEndpoint,
}

// RegisterFlags declares the override flags on fs with the built-in defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("step-delay-ms", d.Session.StepDelayMs, "pause between animated steps, in milliseconds")
	fs.Bool("lock-edits", d.Session.LockEditsDuringRun, "refuse graph edits while a run is in progress")
	fs.Bool("stop-at-unreachable", d.Session.StopAtUnreachable, "finish a run once only unreachable nodes remain")
	fs.Float64("node-radius", d.Canvas.NodeRadius, "hit-test radius of nodes")
	fs.Int64("default-weight", d.Canvas.DefaultWeight, "initial edge weight")
	fs.String("addr", d.Server.Addr, "HTTP listen address")
	fs.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
	fs.String("log-format", d.Log.Format, "log format: text or json")
	fs.String("otlp-endpoint", d.Telemetry.Endpoint, "OTLP/HTTP trace endpoint URL")
}

// NewViper returns a viper instance bound to the flags in fs (when present)
// and to PATHBOARD_* environment variables.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	return v, nil
}

// Overlay returns a function that copies every key explicitly set in v
// (a changed flag or a present environment variable) onto a Config.
func Overlay(v *viper.Viper) func(*Config) {
	return func(cfg *Config) {
		if v.IsSet(KeyStepDelayMs) {
			cfg.Session.StepDelayMs = v.GetInt(KeyStepDelayMs)
		}
		if v.IsSet(KeyLockEditsDuringRun) {
			cfg.Session.LockEditsDuringRun = v.GetBool(KeyLockEditsDuringRun)
		}
		if v.IsSet(KeyStopAtUnreachable) {
			cfg.Session.StopAtUnreachable = v.GetBool(KeyStopAtUnreachable)
		}
		if v.IsSet(KeyNodeRadius) {
			cfg.Canvas.NodeRadius = v.GetFloat64(KeyNodeRadius)
		}
		if v.IsSet(KeyDefaultWeight) {
			cfg.Canvas.DefaultWeight = v.GetInt64(KeyDefaultWeight)
		}
		if v.IsSet(KeyServerAddr) {
			cfg.Server.Addr = v.GetString(KeyServerAddr)
		}
		if v.IsSet(KeyLogLevel) {
			cfg.Log.Level = v.GetString(KeyLogLevel)
		}
		if v.IsSet(KeyLogFormat) {
			cfg.Log.Format = v.GetString(KeyLogFormat)
		}
		if v.IsSet(KeyTelemetryEndpoint) {
			cfg.Telemetry.Endpoint = v.GetString(KeyTelemetryEndpoint)
		}
	}
}
