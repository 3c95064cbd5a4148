// SPDX-License-Identifier: MIT
//
// File: middleware.go
// Role: request logging middleware.

package api

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/pathboard/internal/ctxlog"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// Hijack passes through to the underlying writer so websocket upgrades work.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("api: %T does not support hijacking", r.ResponseWriter)
	}
	r.status = http.StatusSwitchingProtocols

	return h.Hijack()
}

// loggingMiddleware attaches a request-scoped logger to the context and logs
// every request once it completes.
func loggingMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLog := log.With(slog.String("method", r.Method), slog.String("path", r.URL.Path))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctxlog.WithLogger(r.Context(), reqLog)))

		reqLog.Debug("request served",
			slog.Int("status", rec.status),
			slog.Duration("elapsed", time.Since(start)))
	})
}
