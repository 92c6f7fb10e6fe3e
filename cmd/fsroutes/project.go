package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/fsroutes/internal/config"
)

// projectFlags are the discovery flags shared by routes and files.
type projectFlags struct {
	config    string
	methods   []string
	include   string
	exclude   []string
	noExclude bool
}

func (f *projectFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "Config file (default: fsroutes.json or fsroutes.yaml in the directory)")
	flags.StringSliceVarP(&f.methods, "method", "m", nil, "HTTP methods to match (default: post,get,put,patch,delete)")
	flags.StringVar(&f.include, "include", "", "File inclusion glob")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "File exclusion globs (replace the defaults)")
	flags.BoolVar(&f.noExclude, "no-exclude", false, "Disable every exclusion pattern")
}

// load resolves the project configuration for the directory argument.
// An explicit --config wins, then a config file in dir, then defaults
// rooted at dir. Flags override file settings.
func (f *projectFlags) load(args []string) (*config.Config, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	var (
		cfg *config.Config
		err error
	)
	switch {
	case f.config != "":
		cfg, err = config.LoadFile(f.config)
		if err == nil && len(args) > 0 {
			cfg.Root = dir
		}
	case config.Exists(dir):
		cfg, err = config.Load(dir)
	default:
		cfg = config.New()
		cfg.Root = dir
	}
	if err != nil {
		return nil, err
	}

	if len(f.methods) > 0 {
		cfg.HTTPMethods = f.methods
	}
	if f.include != "" {
		cfg.FileInclusionPattern = f.include
	}
	if len(f.exclude) > 0 {
		cfg.FileExclusionPatterns = f.exclude
	}
	if f.noExclude {
		cfg.FileExclusionPatterns = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
