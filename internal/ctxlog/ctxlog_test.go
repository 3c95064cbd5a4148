// SPDX-License-Identifier: MIT
//
// File: ctxlog_test.go
// Role: tests for logger construction and context round-trips.

package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/internal/ctxlog"
)

func TestNew_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := ctxlog.New("warn", "json", &buf)

	l.Info("hidden")
	l.Warn("shown", slog.Int("node", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.EqualValues(t, 3, rec["node"])
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	ctxlog.New("bogus", "", &buf).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestContextRoundTrip(t *testing.T) {
	l := ctxlog.Discard()
	ctx := ctxlog.WithLogger(context.Background(), l)
	require.Same(t, l, ctxlog.FromContext(ctx))
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ctxlog.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ctxlog.ParseLevel("warning"))
	require.Equal(t, slog.LevelInfo, ctxlog.ParseLevel(""))
}

func TestFromContextOr(t *testing.T) {
	fallback := ctxlog.Discard()
	require.Same(t, fallback, ctxlog.FromContextOr(context.Background(), fallback))

	inCtx := ctxlog.Discard()
	ctx := ctxlog.WithLogger(context.Background(), inCtx)
	require.Same(t, inCtx, ctxlog.FromContextOr(ctx, fallback))
	require.Same(t, slog.Default(), ctxlog.FromContextOr(context.Background(), nil))
}
