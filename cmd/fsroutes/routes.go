package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/fsroutes/internal/logging"
	"github.com/vango-dev/fsroutes/pkg/router"
	"github.com/vango-dev/fsroutes/pkg/telemetry"
)

type routesOptions struct {
	projectFlags

	json     bool
	verbose  bool
	timeout  time.Duration
	sort     bool
	validate bool
	metrics  bool
}

func routesCmd() *cobra.Command {
	var opts routesOptions

	cmd := &cobra.Command{
		Use:   "routes [dir]",
		Short: "List the routes discovered below a directory",
		Long: `Walk a directory, load every endpoint file and print the routes found.

Only files below a directory named "endpoints" are considered. Underscore
segments become parameters (_id → :id) and index files are folded into
their folder.

Examples:
  fsroutes routes ./api
  fsroutes routes ./api --json
  fsroutes routes ./api --method get,head --sort --validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(cmd, args, opts)
		},
	}

	opts.register(cmd)
	flags := cmd.Flags()
	flags.BoolVar(&opts.json, "json", false, "Print routes as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log discovery decisions to stderr")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Abort discovery after this long (0 = no limit)")
	flags.BoolVar(&opts.sort, "sort", false, "Order routes most specific first")
	flags.BoolVar(&opts.validate, "validate", false, "Fail on duplicate routes and parameter name conflicts")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print discovery metrics after the routes")

	return cmd
}

func runRoutes(cmd *cobra.Command, args []string, opts routesOptions) error {
	cfg, err := opts.load(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	rc := cfg.RouterConfig()
	rc.Logger = logging.New(cmd.ErrOrStderr(), opts.verbose)
	rc.Metrics = telemetry.NewMetrics(append(cfg.MetricsOptions(), telemetry.WithRegistry(reg))...)

	root := cfg.RootPath()
	routes, err := router.BuildRoutes(ctx, root, rc)
	if err != nil {
		return err
	}

	if opts.validate {
		if err := router.Validate(routes); err != nil {
			printValidation(cmd.ErrOrStderr(), err)
			return err
		}
	}
	if opts.sort {
		router.SortBySpecificity(routes)
	}
	if len(routes) == 0 {
		warn(cmd, "No routes in %s. .go endpoints are only visible when compiled into this binary.", root)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		err = printRoutesJSON(out, root, routes)
	} else {
		err = printRoutesTable(out, root, routes)
	}
	if err != nil {
		return err
	}

	if opts.metrics {
		return printMetrics(out, reg)
	}
	return nil
}

// displayRoute is the printed form of a route.
type displayRoute struct {
	Method  string `json:"method"`
	Route   string `json:"route"`
	Handler string `json:"handler"`
	File    string `json:"file"`
}

func toDisplay(root string, r router.Route) displayRoute {
	file := r.File
	if rel, err := filepath.Rel(root, filepath.FromSlash(file)); err == nil {
		file = filepath.ToSlash(rel)
	}
	return displayRoute{
		Method:  r.Method,
		Route:   r.Path,
		Handler: fmt.Sprintf("%T", r.Handler),
		File:    file,
	}
}

func printRoutesJSON(w io.Writer, root string, routes []router.Route) error {
	display := make([]displayRoute, len(routes))
	for i, r := range routes {
		display[i] = toDisplay(root, r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(display)
}

func printRoutesTable(w io.Writer, root string, routes []router.Route) error {
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "No routes found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tROUTE\tHANDLER\tFILE")
	for _, r := range routes {
		d := toDisplay(root, r)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", strings.ToUpper(d.Method), d.Route, d.Handler, d.File)
	}
	return tw.Flush()
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// printValidation writes one report per validation error found in err.
func printValidation(w io.Writer, err error) {
	var multi *router.MultiValidationError
	if !stderrors.As(err, &multi) {
		return
	}
	for _, verr := range multi.Errors {
		fmt.Fprint(w, router.FormatValidationError(verr))
	}
}
