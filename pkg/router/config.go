package router

import (
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/fsroutes/internal/logging"
	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/pathfilter"
	"github.com/vango-dev/fsroutes/pkg/telemetry"
)

// DefaultHTTPMethods is the verb vocabulary used when none is configured.
var DefaultHTTPMethods = []string{"post", "get", "put", "patch", "delete"}

// Config configures BuildRoutes. The zero value is ready to use.
type Config struct {
	// HTTPMethods is the verb vocabulary for both file-name and export
	// matching. Values are lower-cased. Default: DefaultHTTPMethods.
	HTTPMethods []string

	// FileExclusionPatterns reject candidate files. nil means
	// pathfilter.DefaultExclusionPatterns; an empty slice excludes nothing.
	FileExclusionPatterns []string

	// FileInclusionPattern selects candidate files.
	// Default: pathfilter.DefaultInclusionPattern.
	FileInclusionPattern string

	// CustomRouteMatchers are tried, in order, before the built-in ones.
	CustomRouteMatchers []Matcher

	// Loader loads candidate files. Default: module.NewDefaultLoader.
	Loader module.Loader

	// FS is the filesystem to walk. Default: the OS filesystem.
	FS afero.Fs

	// Logger receives debug records about discovery. Default: discarded.
	Logger *slog.Logger

	// Metrics records discovery metrics when set.
	Metrics *telemetry.Metrics

	// TracerProvider provides the discovery tracer. Default: global.
	TracerProvider trace.TracerProvider

	// OnLoadError is called when a candidate file fails to load. Returning
	// nil skips the file; returning an error aborts discovery with it.
	// When unset, the first load error aborts discovery.
	OnLoadError func(path string, err error) error
}

// resolved is a Config with every default applied.
type resolved struct {
	Config
	filter   *pathfilter.Filter
	matchers []Matcher
}

func (c *Config) resolve() (*resolved, error) {
	var cfg Config
	if c != nil {
		cfg = *c
	}

	methods := cfg.HTTPMethods
	if len(methods) == 0 {
		methods = DefaultHTTPMethods
	}
	cfg.HTTPMethods = make([]string, len(methods))
	for i, m := range methods {
		cfg.HTTPMethods[i] = strings.ToLower(m)
	}

	if cfg.FileInclusionPattern == "" {
		cfg.FileInclusionPattern = pathfilter.DefaultInclusionPattern
	}
	if cfg.FileExclusionPatterns == nil {
		cfg.FileExclusionPatterns = pathfilter.DefaultExclusionPatterns
	}
	filter, err := pathfilter.New([]string{cfg.FileInclusionPattern}, cfg.FileExclusionPatterns)
	if err != nil {
		return nil, err
	}

	if cfg.Loader == nil {
		cfg.Loader = module.NewDefaultLoader(cfg.HTTPMethods)
	}
	if cfg.FS == nil {
		cfg.FS = afero.NewOsFs()
	}
	cfg.Logger = logging.OrDiscard(cfg.Logger)

	return &resolved{
		Config:   cfg,
		filter:   filter,
		matchers: Suite(cfg.CustomRouteMatchers...),
	}, nil
}
