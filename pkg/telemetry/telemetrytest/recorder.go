// Package telemetrytest provides an in-memory tracer provider that
// records the spans fsroutes emits.
package telemetrytest

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span is a recorded span.
type Span struct {
	trace.Span

	mu         sync.Mutex
	Name       string
	Attributes []attribute.KeyValue
	Events     []string
	Errors     []error
	Status     codes.Code
	Ended      bool
}

// SetAttributes records kv.
func (s *Span) SetAttributes(kv ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Attributes = append(s.Attributes, kv...)
}

// AddEvent records the event name.
func (s *Span) AddEvent(name string, _ ...trace.EventOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, name)
}

// RecordError records err.
func (s *Span) RecordError(err error, _ ...trace.EventOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, err)
}

// SetStatus records the status code.
func (s *Span) SetStatus(code codes.Code, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = code
}

// End marks the span ended.
func (s *Span) End(...trace.SpanEndOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ended = true
}

// Attribute returns the last recorded value for key.
func (s *Span) Attribute(key attribute.Key) (attribute.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.Attributes) - 1; i >= 0; i-- {
		if s.Attributes[i].Key == key {
			return s.Attributes[i].Value, true
		}
	}
	return attribute.Value{}, false
}

// Provider is a trace.TracerProvider recording every started span.
type Provider struct {
	trace.TracerProvider

	mu    sync.Mutex
	spans []*Span
}

// NewProvider creates an empty Provider.
func NewProvider() *Provider {
	return &Provider{TracerProvider: noop.NewTracerProvider()}
}

// Tracer implements trace.TracerProvider.
func (p *Provider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &tracer{Tracer: noop.NewTracerProvider().Tracer(""), provider: p}
}

// Spans returns the spans started so far.
func (p *Provider) Spans() []*Span {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Span(nil), p.spans...)
}

type tracer struct {
	trace.Tracer
	provider *Provider
}

func (t *tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &Span{
		Span:       noop.Span{},
		Name:       name,
		Attributes: append([]attribute.KeyValue(nil), cfg.Attributes()...),
	}

	t.provider.mu.Lock()
	t.provider.spans = append(t.provider.spans, span)
	t.provider.mu.Unlock()

	return trace.ContextWithSpan(ctx, span), span
}
