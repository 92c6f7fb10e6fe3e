package main

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vango-dev/fsroutes/internal/logging"
	"github.com/vango-dev/fsroutes/pkg/fswalk"
	"github.com/vango-dev/fsroutes/pkg/module"
	"github.com/vango-dev/fsroutes/pkg/pathfilter"
	"github.com/vango-dev/fsroutes/pkg/routepath"
)

func filesCmd() *cobra.Command {
	var (
		flags   projectFlags
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "files [dir]",
		Short: "List candidate endpoint files grouped by endpoints directory",
		Long: `Walk a directory and print the files discovery would load, grouped by
the endpoints directory that owns them. Nothing is loaded. Go source files
are marked with whether this binary registered exports for them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			filter, err := pathfilter.New([]string{cfg.FileInclusionPattern}, cfg.FileExclusionPatterns)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			abs, err := filepath.Abs(cfg.RootPath())
			if err != nil {
				return err
			}
			root := routepath.ToSlash(abs)

			logger := logging.New(cmd.ErrOrStderr(), verbose)
			files, err := fswalk.New(afero.NewOsFs(), logger).Files(ctx, root)
			if err != nil {
				return err
			}

			var candidates []string
			for _, f := range files {
				if filter.Match(f) {
					candidates = append(candidates, f)
				}
			}

			out := cmd.OutOrStdout()
			groups := fswalk.Locate(root, candidates)
			if len(groups) == 0 {
				fmt.Fprintln(out, "No endpoint files found.")
				return nil
			}
			for _, g := range groups {
				fmt.Fprintf(out, "%s\n", g.Root)
				for _, f := range g.Files {
					meta, err := routepath.Extract(g.Root, f)
					if err != nil {
						return err
					}
					rel, _ := routepath.Relative(g.Root, f)
					fmt.Fprintf(out, "  %-40s name=%s prefix=/%s%s\n", rel, meta.Name, meta.Route, registered(f))
				}
			}
			fmt.Fprintf(out, "\n%d source files registered in this binary.\n", len(module.DefaultRegistry.Files()))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log walk decisions to stderr")

	return cmd
}

// registered marks .go files with their registry state. Other files go
// through plugin or static loaders and get no marker.
func registered(file string) string {
	if path.Ext(file) != ".go" {
		return ""
	}
	if module.DefaultRegistry.Has(file) {
		return " registered=yes"
	}
	return " registered=no"
}
