package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/rodata/internal/adapters/telemetry"
	"go.trai.ch/rodata/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func attrs(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_Start(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)
	ctx := context.Background()
	t.Cleanup(func() { _ = tracer.Shutdown(ctx) })

	_, span := tracer.Start(ctx, "assets:logo.bin", ports.WithAttribute(ports.SpanAttrDescr, "AS $S/logo.bin"))
	span.SetAttribute("size", 42)
	span.SetAttribute("outputs", []string{"a.o"})
	span.SetAttribute(ports.SpanAttrCached, false)
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "assets:logo.bin", ended[0].Name())

	got := attrs(ended[0].Attributes())
	assert.Equal(t, "AS $S/logo.bin", got[ports.SpanAttrDescr].AsString())
	assert.Equal(t, int64(42), got["size"].AsInt64())
	assert.Equal(t, []string{"a.o"}, got["outputs"].AsStringSlice())
	assert.False(t, got[ports.SpanAttrCached].AsBool())

	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)

	_, span := tracer.Start(context.Background(), "step")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)

	// Without a span in the context the plan is dropped.
	tracer.EmitPlan(context.Background(), []string{"a", "b"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(context.Background(), "build")
	tracer.EmitPlan(ctx, []string{"a", "b"})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []string{"a", "b"}, attrs(events[0].Attributes)["steps"].AsStringSlice())
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	gotCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()

	tracer.EmitPlan(ctx, []string{"a"})
	require.NoError(t, tracer.Shutdown(ctx))
}
