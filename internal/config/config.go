package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/fsroutes/internal/errors"
	"github.com/vango-dev/fsroutes/pkg/pathfilter"
	"github.com/vango-dev/fsroutes/pkg/router"
	"github.com/vango-dev/fsroutes/pkg/telemetry"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "fsroutes.json"

	// DefaultRoot is the directory walked when none is configured.
	DefaultRoot = "."

	// DefaultNamespace is the default prometheus namespace.
	DefaultNamespace = "fsroutes"
)

// FileNames lists the configuration file names Load looks for, in order.
var FileNames = []string{ConfigFileName, "fsroutes.yaml", "fsroutes.yml"}

// Config represents an fsroutes project file.
type Config struct {
	// Root is the directory walked for endpoints, relative to the file.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// HTTPMethods is the verb vocabulary for route matching.
	HTTPMethods []string `json:"httpMethods,omitempty" yaml:"httpMethods,omitempty"`

	// FileInclusionPattern selects candidate endpoint files.
	FileInclusionPattern string `json:"fileInclusionPattern,omitempty" yaml:"fileInclusionPattern,omitempty"`

	// FileExclusionPatterns reject candidate files. Omitted means the
	// defaults; an empty list excludes nothing.
	FileExclusionPatterns []string `json:"fileExclusionPatterns,omitempty" yaml:"fileExclusionPatterns,omitempty"`

	// SkipLoadErrors skips endpoint files that fail to load instead of
	// aborting discovery.
	SkipLoadErrors bool `json:"skipLoadErrors,omitempty" yaml:"skipLoadErrors,omitempty"`

	// Metrics contains prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MetricsConfig contains prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Root:                 DefaultRoot,
		HTTPMethods:          append([]string(nil), router.DefaultHTTPMethods...),
		FileInclusionPattern: pathfilter.DefaultInclusionPattern,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for each of FileNames in turn.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return nil, errors.New("E121").
		WithPath(dir).
		WithDetail("No " + strings.Join(FileNames, ", ") + " found in " + dir)
}

// LoadFile reads configuration from the specified file path. Files ending
// in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").WithPath(path)
		}
		return nil, errors.New("E120").WithPath(path).Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithPath(path).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// SaveTo writes the configuration to the specified path, as YAML or JSON
// depending on its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").WithPath(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// fileConfig is Config without its marshalling methods.
type fileConfig Config

// MarshalJSON writes an empty, non-nil FileExclusionPatterns as [] so the
// file keeps meaning "exclude nothing" when read back.
func (c *Config) MarshalJSON() ([]byte, error) {
	if c.FileExclusionPatterns == nil || len(c.FileExclusionPatterns) > 0 {
		return json.Marshal((*fileConfig)(c))
	}
	return json.Marshal(struct {
		*fileConfig
		FileExclusionPatterns []string `json:"fileExclusionPatterns"`
	}{(*fileConfig)(c), c.FileExclusionPatterns})
}

// MarshalYAML is the YAML counterpart of MarshalJSON.
func (c *Config) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := node.Encode((*fileConfig)(c)); err != nil {
		return nil, err
	}
	if c.FileExclusionPatterns != nil && len(c.FileExclusionPatterns) == 0 {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "fileExclusionPatterns"},
			&yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle},
		)
	}
	return &node, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if len(c.HTTPMethods) == 0 {
		c.HTTPMethods = append([]string(nil), router.DefaultHTTPMethods...)
	}
	if c.FileInclusionPattern == "" {
		c.FileInclusionPattern = pathfilter.DefaultInclusionPattern
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, m := range c.HTTPMethods {
		if strings.TrimSpace(m) == "" || strings.ContainsAny(m, " /") {
			return errors.New("E120").
				WithPath(c.configPath).
				WithDetail("Invalid HTTP method " + `"` + m + `"`)
		}
	}
	if _, err := pathfilter.New([]string{c.FileInclusionPattern}, c.FileExclusionPatterns); err != nil {
		return errors.New("E120").WithPath(c.configPath).Wrap(err)
	}
	return nil
}

// RootPath returns the absolute path of the directory to walk.
func (c *Config) RootPath() string {
	if filepath.IsAbs(c.Root) {
		return c.Root
	}
	return filepath.Join(c.Dir(), c.Root)
}

// RouterConfig converts the file settings to a router.Config. The caller
// adds the runtime pieces (loader, logger, metrics, tracer).
func (c *Config) RouterConfig() *router.Config {
	rc := &router.Config{
		HTTPMethods:           c.HTTPMethods,
		FileInclusionPattern:  c.FileInclusionPattern,
		FileExclusionPatterns: c.FileExclusionPatterns,
	}
	if c.SkipLoadErrors {
		rc.OnLoadError = func(string, error) error { return nil }
	}
	return rc
}

// MetricsOptions returns the telemetry options matching the file.
func (c *Config) MetricsOptions() []telemetry.MetricsOption {
	return []telemetry.MetricsOption{telemetry.WithNamespace(c.Metrics.Namespace)}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithPath(startDir).
				WithDetail("No fsroutes config found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or the nearest parent that has one.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
