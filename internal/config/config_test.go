package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Generate.ShouldClean())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "hyper.yaml",
			content: `generate:
  output_dir: gen
  language: go
  clean: false
catalog:
  default_namespace: platform
`,
		},
		{
			name: "toml",
			file: "hyper.toml",
			content: `[generate]
output_dir = "gen"
language = "go"
clean = false

[catalog]
default_namespace = "platform"
`,
		},
		{
			name:    "json",
			file:    "hyper.json",
			content: `{"generate": {"output_dir": "gen", "language": "go", "clean": false}, "catalog": {"default_namespace": "platform"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "charts", cfg.Generate.ChartsDir)
			assert.Equal(t, "gen", cfg.Generate.OutputDir)
			assert.Equal(t, "go", cfg.Generate.Language)
			assert.Equal(t, "values", cfg.Generate.Package)
			assert.False(t, cfg.Generate.ShouldClean())
			assert.Equal(t, ".", cfg.Catalog.Repository)
			assert.Equal(t, "platform", cfg.Catalog.DefaultNamespace)
		})
	}
}

func TestLoadReleaseOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, "hyper.yaml", `catalog:
  releases:
    payments-api:
      chart:
        version: 2.0.0
      release:
        values:
          replicas: 3
`))
	require.NoError(t, err)

	overrides := cfg.Catalog.ReleaseOverrides("payments-api")
	require.NotNil(t, overrides)
	require.NotNil(t, overrides.Chart)
	assert.Equal(t, "2.0.0", overrides.Chart.Version)
	require.NotNil(t, overrides.Release)
	assert.EqualValues(t, 3, overrides.Release.Values["replicas"])

	assert.Nil(t, cfg.Catalog.ReleaseOverrides("orders-api"))
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "hyper.ini", "[generate]\n"))
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "hyper.yaml", "generate: [\n"))
	assert.Error(t, err)
}
