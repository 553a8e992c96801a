package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(Config{ServiceName: "pipeline-demo"})

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	shutdown, err := InitTracer(Config{
		ServiceName:    "pipeline-demo",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Endpoint:       "http://127.0.0.1:4318/v1/traces",
	})
	require.NoError(t, err)

	_, span := otel.GetTracerProvider().Tracer("tracing_test").Start(context.Background(), "noop")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	// Nothing listens on the endpoint, so only make sure shutdown returns.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}
