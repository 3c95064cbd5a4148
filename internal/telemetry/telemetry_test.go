// SPDX-License-Identifier: MIT
//
// File: telemetry_test.go
// Role: tests for tracer provider setup and shutdown.

package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/internal/telemetry"
)

func TestInit_DiscardExporter(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	ctx := context.Background()

	shutdown, err := telemetry.Init(ctx, "pathboard-test", "0.0.0", "")
	require.NoError(t, err)

	_, span := telemetry.Tracer().Start(ctx, "probe")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(ctx))
}
