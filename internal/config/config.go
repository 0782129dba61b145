package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/vexxhost/hyper-platform/internal/schemagen"
	"github.com/vexxhost/hyper-platform/pkg/helm"
)

// DefaultFile is the config file looked up in the working directory
const DefaultFile = "hyper.yaml"

var parserMap = map[string]koanf.Parser{
	".yaml": yaml.Parser(),
	".yml":  yaml.Parser(),
	".toml": toml.Parser(),
	".json": json.Parser(),
}

// Config is the hyper configuration file
type Config struct {
	Generate GenerateConfig `koanf:"generate"`
	Catalog  CatalogConfig  `koanf:"catalog"`
}

// GenerateConfig configures type generation from chart schemas
type GenerateConfig struct {
	ChartsDir string `koanf:"charts_dir"`
	OutputDir string `koanf:"output_dir"`
	Language  string `koanf:"language"`
	Package   string `koanf:"package"`
	Clean     *bool  `koanf:"clean"`
}

// CatalogConfig configures catalog scanning
type CatalogConfig struct {
	Repository       string `koanf:"repository"`
	DefaultNamespace string `koanf:"default_namespace"`

	// Releases holds overrides keyed by release name, applied on top of the
	// release described by a chart config
	Releases map[string]*helm.WorkloadRelease `koanf:"releases"`
}

// ReleaseOverrides returns the overrides configured for a release, or nil
func (c CatalogConfig) ReleaseOverrides(name string) *helm.WorkloadRelease {
	return c.Releases[name]
}

// ShouldClean reports whether the output directory is emptied before
// generating
func (g GenerateConfig) ShouldClean() bool {
	return g.Clean == nil || *g.Clean
}

// Default returns the configuration used when no file overrides it
func Default() *Config {
	clean := true

	return &Config{
		Generate: GenerateConfig{
			ChartsDir: "charts",
			OutputDir: "types/src",
			Language:  string(schemagen.LanguageTypeScript),
			Package:   "values",
			Clean:     &clean,
		},
		Catalog: CatalogConfig{
			Repository:       ".",
			DefaultNamespace: "default",
		},
	}
}

// Load reads configFile on top of the defaults. A missing file yields the
// defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debug("config file does not exist", "path", configFile)
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(configFile))
	parser, ok := parserMap[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", configFile)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), parser); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
	}

	override := &Config{}
	if err := k.Unmarshal("", override); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", configFile, err)
	}

	if err := mergo.Merge(cfg, override, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	log.Info("loaded config file", "path", configFile)
	return cfg, nil
}
