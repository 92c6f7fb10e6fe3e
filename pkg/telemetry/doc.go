// Package telemetry instruments route discovery with Prometheus metrics
// and OpenTelemetry spans.
//
// Metrics are opt-in: create them once per registry and hand them to the
// builder through router.Config.Metrics.
//
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	routes, err := router.BuildRoutes(ctx, "./api", &router.Config{Metrics: m})
//
// Spans use the global tracer provider unless router.Config.TracerProvider
// is set.
package telemetry
