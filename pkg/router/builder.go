package router

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/fsroutes/internal/errors"
	"github.com/vango-dev/fsroutes/pkg/fswalk"
	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/routepath"
	"github.com/vango-dev/fsroutes/pkg/telemetry"
)

// BuildRoutes discovers the routes below root.
//
// Files are walked from root, filtered by the inclusion and exclusion
// patterns, grouped by their endpoints directory, loaded, and handed to
// the matcher suite. The result lists routes by group discovery order,
// then file order, then matcher output order.
//
// Any walk or load failure aborts the whole call and returns no routes,
// unless cfg.OnLoadError decides to skip a failing file. A nil cfg uses
// the defaults.
func BuildRoutes(ctx context.Context, root string, cfg *Config) (routes []Route, err error) {
	c, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := telemetry.StartBuild(ctx, telemetry.Tracer(c.TracerProvider), root)
	defer func() {
		if err != nil {
			routes = nil
		}
		telemetry.EndBuild(span, len(routes), err)
		c.Metrics.ObserveBuild(time.Since(start), err)
	}()

	return c.build(ctx, root)
}

func (c *resolved) build(ctx context.Context, root string) ([]Route, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.New("E101").WithPath(root).Wrap(err)
	}
	abs = routepath.ToSlash(abs)

	files, err := fswalk.New(c.FS, c.Logger).Files(ctx, abs)
	if err != nil {
		return nil, err
	}
	c.Metrics.AddFilesWalked(len(files))

	var candidates []string
	for _, f := range files {
		ok := c.filter.Match(f)
		c.Logger.Debug("is path a match for an endpoint", "path", f, "match", ok)
		if ok {
			candidates = append(candidates, f)
		}
	}
	c.Metrics.AddFilesMatched(len(candidates))

	span := trace.SpanFromContext(ctx)
	var routes []Route
	for _, group := range fswalk.Locate(abs, candidates) {
		telemetry.RecordGroup(span, group.Root, len(group.Files))
		for _, file := range group.Files {
			found, err := c.extract(ctx, group.Root, file)
			if err != nil {
				return nil, err
			}
			routes = append(routes, found...)
		}
	}

	c.Logger.Debug("route discovery finished", "root", abs, "routes", len(routes))
	return routes, nil
}

// extract loads one file and runs the matcher suite on it.
func (c *resolved) extract(ctx context.Context, root, file string) ([]Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.New("E150").WithPath(file).Wrap(err)
	}

	mod, err := c.Loader.Load(ctx, file)
	if err != nil {
		c.Metrics.IncLoadErrors()
		lerr := errors.FromError(err, "E110")
		if lerr.Path == "" {
			lerr.Path = file
		}
		if c.OnLoadError == nil {
			return nil, lerr
		}
		if herr := c.OnLoadError(file, lerr); herr != nil {
			return nil, herr
		}
		c.Logger.Warn("skipping endpoint that failed to load", "path", file, "error", lerr)
		return nil, nil
	}
	if mod == nil {
		mod = module.New(file)
	}
	c.Metrics.IncModulesLoaded()
	if mod.Len() == 0 && ignoredByGoTool(file) {
		c.Logger.Warn("go source file is ignored by the go tool and cannot register exports; use a parameter directory or a plugin",
			"path", file,
		)
	}

	meta, err := routepath.Extract(root, file)
	if err != nil {
		return nil, errors.New("E102").WithPath(file).Wrap(err)
	}

	routes := Match(c.matchers, &MatchContext{
		Module:   mod,
		Metadata: meta,
		Root:     root,
		Methods:  c.HTTPMethods,
		Logger:   c.Logger,
	})
	for i := range routes {
		if routes[i].File == "" {
			routes[i].File = file
		}
		c.Metrics.AddRoute(routes[i].Method)
	}
	return routes, nil
}

// ignoredByGoTool reports whether file is a Go source the go tool never
// compiles: names starting with "_" or ".".
func ignoredByGoTool(file string) bool {
	base := path.Base(file)
	return path.Ext(base) == ".go" && (strings.HasPrefix(base, "_") || strings.HasPrefix(base, "."))
}
