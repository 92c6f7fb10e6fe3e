package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the discovery metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "fsroutes").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the discovery metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "fsroutes",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the discovery collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	buildsTotal      *prometheus.CounterVec
	buildDuration    prometheus.Histogram
	filesWalked      prometheus.Counter
	filesMatched     prometheus.Counter
	modulesLoaded    prometheus.Counter
	loadErrors       prometheus.Counter
	routesDiscovered *prometheus.CounterVec
}

// NewMetrics registers the discovery collectors. Registering twice with
// the same registry panics, so call it once per registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "builds_total",
			Help:        "Total number of route discovery runs",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Route discovery duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		filesWalked: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "files_walked_total",
			Help:        "Total number of files found while walking roots",
			ConstLabels: config.ConstLabels,
		}),

		filesMatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "files_matched_total",
			Help:        "Total number of files that passed the include and exclude patterns",
			ConstLabels: config.ConstLabels,
		}),

		modulesLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "modules_loaded_total",
			Help:        "Total number of endpoint modules loaded",
			ConstLabels: config.ConstLabels,
		}),

		loadErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "load_errors_total",
			Help:        "Total number of endpoint modules that failed to load",
			ConstLabels: config.ConstLabels,
		}),

		routesDiscovered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_discovered_total",
			Help:        "Total number of route descriptors produced",
			ConstLabels: config.ConstLabels,
		}, []string{"method"}),
	}
}

// ObserveBuild records one finished discovery run.
func (m *Metrics) ObserveBuild(d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.buildsTotal.WithLabelValues(outcome).Inc()
	m.buildDuration.Observe(d.Seconds())
}

// AddFilesWalked counts files found by the walker.
func (m *Metrics) AddFilesWalked(n int) {
	if m == nil {
		return
	}
	m.filesWalked.Add(float64(n))
}

// AddFilesMatched counts files accepted by the path filter.
func (m *Metrics) AddFilesMatched(n int) {
	if m == nil {
		return
	}
	m.filesMatched.Add(float64(n))
}

// IncModulesLoaded counts one loaded module.
func (m *Metrics) IncModulesLoaded() {
	if m == nil {
		return
	}
	m.modulesLoaded.Inc()
}

// IncLoadErrors counts one module that failed to load.
func (m *Metrics) IncLoadErrors() {
	if m == nil {
		return
	}
	m.loadErrors.Inc()
}

// AddRoute counts one produced route.
func (m *Metrics) AddRoute(method string) {
	if m == nil {
		return
	}
	m.routesDiscovered.WithLabelValues(method).Inc()
}
