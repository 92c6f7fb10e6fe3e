package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of fsroutes spans.
const TracerName = "github.com/vango-dev/fsroutes"

// Tracer resolves the fsroutes tracer from tp, or from the global
// provider when tp is nil.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		return otel.Tracer(TracerName)
	}
	return tp.Tracer(TracerName)
}

// StartBuild starts the span covering one discovery run.
func StartBuild(ctx context.Context, tracer trace.Tracer, root string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "fsroutes.BuildRoutes",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("fsroutes.root", root)),
	)
}

// RecordGroup adds an event for one endpoints group.
func RecordGroup(span trace.Span, root string, files int) {
	span.AddEvent("endpoints group", trace.WithAttributes(
		attribute.String("fsroutes.group", root),
		attribute.Int("fsroutes.files", files),
	))
}

// EndBuild records the outcome on span and ends it.
func EndBuild(span trace.Span, routes int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("fsroutes.routes", routes))
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
