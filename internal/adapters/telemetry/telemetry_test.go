package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/vitetag/internal/adapters/telemetry"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/vitetag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupMonitor(t *testing.T) (*tracetest.SpanRecorder, *trace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr, tp := setupMonitor(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "vite.tags",
		ports.WithAttributes(map[string]any{"vite.build_directory": "build"}))
	span.SetAttribute("vite.hot", false)
	span.SetAttribute("vite.tags", 9)
	span.SetAttribute("vite.size", int64(42))
	span.SetAttribute("vite.ratio", 0.5)
	span.SetAttribute("vite.entries", []string{"app.js"})
	span.SetAttribute("vite.other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "vite.tags", spans[0].Name())

	got := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes() {
		got[kv.Key] = kv.Value
	}
	assert.Equal(t, "build", got["vite.build_directory"].AsString())
	assert.False(t, got["vite.hot"].AsBool())
	assert.Equal(t, int64(9), got["vite.tags"].AsInt64())
	assert.Equal(t, int64(42), got["vite.size"].AsInt64())
	assert.InDelta(t, 0.5, got["vite.ratio"].AsFloat64(), 0)
	assert.Equal(t, []string{"app.js"}, got["vite.entries"].AsStringSlice())
	assert.Equal(t, "{1}", got["vite.other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tp := setupMonitor(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "vite.asset")
	span.RecordError(errors.New("unable to locate file in vite manifest"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "unable to locate file in vite manifest", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var infos, warns []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) })
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) })

	tp := trace.NewTracerProvider(trace.WithSpanProcessor(telemetry.NewLogBridge(logger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "vite.tags")
	span.SetAttribute("vite.tags", 3)
	span.SetAttribute("vite.hot", false)
	span.End()

	_, span = tracer.Start(context.Background(), "vite.asset")
	span.RecordError(errors.New("boom"))
	span.End()

	require.Len(t, infos, 1)
	assert.True(t, strings.HasPrefix(infos[0], "vite.tags "))
	assert.True(t, strings.HasSuffix(infos[0], " vite.hot=false vite.tags=3"), infos[0])

	require.Len(t, warns, 1)
	assert.True(t, strings.HasPrefix(warns[0], "vite.asset "))
	assert.True(t, strings.HasSuffix(warns[0], "error=boom"), warns[0])
}
