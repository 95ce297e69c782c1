package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rodata/internal/adapters/logger"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/ui/style"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to report finished step spans to the logger.
// Spans without a build description are ignored.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{logger: log}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug("span started", "span", s.Name())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	var descr, color string
	var cached bool
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key(ports.SpanAttrDescr):
			descr = kv.Value.AsString()
		case attribute.Key(ports.SpanAttrColor):
			color = kv.Value.AsString()
		case attribute.Key(ports.SpanAttrCached):
			cached = kv.Value.AsBool()
		}
	}
	if descr == "" {
		return
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "step failed"
		}
		b.logger.Warn(descr+" failed", "error", desc)
		return
	}

	if cached {
		b.logger.Info(style.Check+" "+descr, "cached", true, logger.ColorKey, color)
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.logger.Info(style.Check+" "+descr, "duration", elapsed.String(), logger.ColorKey, color)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
