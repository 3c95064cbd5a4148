// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: YAML loading, validation and fsnotify hot reload.

// Package config loads pathboard settings from YAML, hot-reloads them with
// fsnotify and overlays command-line flags and PATHBOARD_* environment
// variables through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ErrNoFile is returned by Watch when the loader has no backing file.
var ErrNoFile = errors.New("config: no file to watch")

// Loader reads a YAML config file and watches it for changes.
type Loader struct {
	path     string
	log      *slog.Logger
	overlay  func(*Config)
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithOverlay registers fn to adjust every loaded config before validation,
// typically to apply flag and environment overrides.
func WithOverlay(fn func(*Config)) LoaderOption {
	return func(ld *Loader) { ld.overlay = fn }
}

// NewLoader creates a Loader and performs the initial load. An empty path
// yields the defaults and disables Watch.
func NewLoader(path string, opts ...LoaderOption) (*Loader, error) {
	l := &Loader{path: path, log: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// SetLogger replaces the logger used to report rejected reloads.
// Call it before Watch.
func (l *Loader) SetLogger(log *slog.Logger) {
	if log != nil {
		l.log = log
	}
}

// Path returns the backing file, or "" when running on defaults.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the config on file changes.
// A file that fails to parse or validate is logged and the old config kept.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	// 1) Register the file with a new watcher.
	if l.path == "" {
		return nil, ErrNoFile
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	// 2) Reload on write or create until stopped.
	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.log.Warn("config reload rejected", slog.String("path", l.path), slog.String("error", err.Error()))
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn("config watcher error", slog.String("error", err.Error()))
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the config file and notifies
// subscribers on success.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// load reads the file over the defaults, applies the overlay and validates.
func (l *Loader) load() (*Config, error) {
	// 1) Defaults, then the file.
	cfg := Default()
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", l.path, err)
		}
	}
	// 2) Flags and environment win over the file.
	if l.overlay != nil {
		l.overlay(cfg)
	}

	// 3) Validate the merged result.
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
