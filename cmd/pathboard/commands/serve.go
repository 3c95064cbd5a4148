// SPDX-License-Identifier: MIT
//
// File: serve.go
// Role: serve command: HTTP server with config hot reload.

package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathboard/internal/api"
	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/telemetry"
	"github.com/katalvlaran/pathboard/session"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the editing API and the websocket event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, *cfgFile)
		},
	}
}

func runServe(cmd *cobra.Command, cfgFile string) error {
	loader, log, err := loadConfig(cmd, cfgFile, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	cfg := loader.Config()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// ── Tracing ───────────────────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Init(ctx, "pathboard", Version, cfg.Telemetry.Endpoint)
	if err != nil {
		log.Warn("tracing disabled", "err", err)
	} else {
		defer func() {
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutCancel()
			_ = shutdownTracing(shutCtx)
		}()
	}

	// ── Sessions ──────────────────────────────────────────────────────────────
	hub := api.NewHub(func() *session.Session {
		return session.New(sessionOptions(loader.Config(), log)...)
	})
	defer hub.Close()

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		hub.Each(func(s *session.Session) { s.SetStepDelay(newCfg.Session.StepDelay()) })
		log.Info("config hot-reloaded",
			"step_delay", newCfg.Session.StepDelay(),
			"sessions", hub.Len())
	})
	if stopWatch, err := loader.Watch(); err != nil {
		log.Info("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.New(hub, log),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting",
			"addr", cfg.Server.Addr,
			"config", loader.Path(),
			"session", hub.Default().ID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	case <-ctx.Done():
	}
	log.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Warn("server shutdown incomplete", "err", err)
	}
	log.Info("goodbye")

	return nil
}
