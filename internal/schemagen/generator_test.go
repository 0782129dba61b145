package schemagen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	chartsDir string
	outputDir string
	generator *Generator
}

func (s *GeneratorTestSuite) SetupTest() {
	root := s.T().TempDir()
	s.chartsDir = filepath.Join(root, "charts")
	s.outputDir = filepath.Join(root, "src")
	s.Require().NoError(os.MkdirAll(s.chartsDir, 0o755))

	s.generator = &Generator{
		ChartsDir: s.chartsDir,
		OutputDir: s.outputDir,
		Emitter:   &TypeScriptEmitter{},
		Clean:     true,
	}
}

func (s *GeneratorTestSuite) addChart(name, schema string) {
	dir := filepath.Join(s.chartsDir, name)
	s.Require().NoError(os.MkdirAll(dir, 0o755))
	if schema != "" {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, SchemaFileName), []byte(schema), 0o644))
	}
}

func (s *GeneratorTestSuite) workloadSchema(workloadType string) string {
	return `{"type":"object","properties":{"workloadType":{"type":"string","const":"` + workloadType + `"}}}`
}

func (s *GeneratorTestSuite) run() error {
	charts, err := s.generator.Discover()
	if err != nil {
		return err
	}
	if err := s.generator.Prepare(); err != nil {
		return err
	}
	for _, chart := range charts {
		if err := s.generator.Generate(chart); err != nil {
			return err
		}
	}
	if err := s.generator.WriteWorkloadTypes(); err != nil {
		return err
	}
	return s.generator.WriteIndex()
}

func (s *GeneratorTestSuite) readOutput(name string) string {
	data, err := os.ReadFile(filepath.Join(s.outputDir, name))
	s.Require().NoError(err)
	return string(data)
}

func (s *GeneratorTestSuite) TestDiscover() {
	s.addChart("stateful-container-load", s.workloadSchema("STATEFUL_CONTAINER_LOAD"))
	s.addChart("basic-container-load", s.workloadSchema("BASIC_CONTAINER_LOAD"))
	s.addChart("no-schema", "")
	s.Require().NoError(os.WriteFile(filepath.Join(s.chartsDir, "README.md"), []byte("charts"), 0o644))

	charts, err := s.generator.Discover()
	s.Require().NoError(err)
	s.Equal([]Chart{
		{Name: "basic-container-load", SchemaPath: filepath.Join(s.chartsDir, "basic-container-load", SchemaFileName)},
		{Name: "stateful-container-load", SchemaPath: filepath.Join(s.chartsDir, "stateful-container-load", SchemaFileName)},
	}, charts)
}

func (s *GeneratorTestSuite) TestDiscoverMissingDirectory() {
	s.generator.ChartsDir = filepath.Join(s.chartsDir, "missing")

	_, err := s.generator.Discover()
	s.Error(err)
}

func (s *GeneratorTestSuite) TestSingleWorkloadType() {
	s.addChart("basic-container-load", s.workloadSchema("BASIC_CONTAINER_LOAD"))

	s.Require().NoError(s.run())

	enum := s.readOutput("workload-types.ts")
	s.Equal(1, strings.Count(enum, " = '"))
	s.Contains(enum, "  BASIC_CONTAINER_LOAD = 'BASIC_CONTAINER_LOAD',\n")

	index := s.readOutput("index.ts")
	s.Equal(1, strings.Count(index, "export * from './basic-container-load';"))
	s.Contains(index, "export * from './workload-types';")
	s.FileExists(filepath.Join(s.outputDir, "basic-container-load.ts"))
}

func (s *GeneratorTestSuite) TestNoCharts() {
	s.Require().NoError(s.run())

	s.NoFileExists(filepath.Join(s.outputDir, "workload-types.ts"))
	s.NotContains(s.readOutput("index.ts"), "export * from")
}

func (s *GeneratorTestSuite) TestChartWithoutWorkloadType() {
	s.addChart("redis", `{"type":"object","properties":{"replicas":{"type":"integer"}}}`)

	s.Require().NoError(s.run())

	s.Empty(s.generator.WorkloadTypes())
	s.NoFileExists(filepath.Join(s.outputDir, "workload-types.ts"))
	s.Equal(`/**
 * Auto-generated barrel export for workload schemas
 * DO NOT EDIT - This file is auto-generated
 */

export * from './redis';
`, s.readOutput("index.ts"))
}

func (s *GeneratorTestSuite) TestDuplicateWorkloadTypes() {
	s.addChart("basic-container-load", s.workloadSchema("BASIC_CONTAINER_LOAD"))
	s.addChart("basic-container-load-v2", s.workloadSchema("BASIC_CONTAINER_LOAD"))
	s.addChart("stateful-container-load", s.workloadSchema("STATEFUL_CONTAINER_LOAD"))

	s.Require().NoError(s.run())

	s.Equal([]string{"BASIC_CONTAINER_LOAD", "STATEFUL_CONTAINER_LOAD"}, s.generator.WorkloadTypes())
	s.Equal(1, strings.Count(s.readOutput("workload-types.ts"), "BASIC_CONTAINER_LOAD = "))
}

func (s *GeneratorTestSuite) TestInvalidSchema() {
	s.addChart("basic-container-load", s.workloadSchema("BASIC_CONTAINER_LOAD"))
	s.addChart("broken", `{"type": `)

	err := s.run()

	var chartErr *ChartError
	s.Require().ErrorAs(err, &chartErr)
	s.Equal("broken", chartErr.Chart)
	s.NoFileExists(filepath.Join(s.outputDir, "index.ts"))
}

func (s *GeneratorTestSuite) TestDraft07Schema() {
	s.addChart("redis", `{
  "type": "object",
  "properties": {
    "image": {"$ref": "#/definitions/image"},
    "password": {"type": ["string", "null"]}
  },
  "definitions": {"image": {"type": "object", "properties": {"tag": {"type": "string"}}}}
}`)

	s.Require().NoError(s.run())

	chart := s.readOutput("redis.ts")
	s.Contains(chart, "  image?: {\n    tag?: string;\n  };\n")
	s.Contains(chart, "  password?: string | null;\n")
	s.Contains(s.readOutput("index.ts"), "export * from './redis';")
}

func (s *GeneratorTestSuite) TestConflictingOutputFiles() {
	s.generator.Emitter = &GoEmitter{Package: "values"}
	s.addChart("my-chart", `{"type":"object","properties":{"replicas":{"type":"integer"}}}`)
	s.addChart("my_chart", `{"type":"object","properties":{"port":{"type":"integer"}}}`)

	err := s.run()

	var chartErr *ChartError
	s.Require().ErrorAs(err, &chartErr)
	s.Equal("my_chart", chartErr.Chart)
	s.ErrorContains(err, "already generated for chart my-chart")
	s.NoFileExists(filepath.Join(s.outputDir, "index.go"))
}

func (s *GeneratorTestSuite) TestFailedRunWithoutCleanRemovesIndex() {
	s.generator.Clean = false
	s.addChart("basic-container-load", s.workloadSchema("BASIC_CONTAINER_LOAD"))
	s.addChart("broken", `{"type":"object"}`)
	s.Require().NoError(s.run())
	s.Contains(s.readOutput("index.ts"), "export * from './broken';")

	s.addChart("broken", `{"type": `)

	var chartErr *ChartError
	s.Require().ErrorAs(s.run(), &chartErr)
	s.Equal("broken", chartErr.Chart)
	s.NoFileExists(filepath.Join(s.outputDir, "index.ts"))
	s.FileExists(filepath.Join(s.outputDir, "basic-container-load.ts"))
}

func (s *GeneratorTestSuite) TestCleanOutput() {
	s.Require().NoError(os.MkdirAll(s.outputDir, 0o755))
	stale := filepath.Join(s.outputDir, "stale.ts")
	s.Require().NoError(os.WriteFile(stale, []byte("stale"), 0o644))

	s.Require().NoError(s.run())
	s.NoFileExists(stale)

	s.generator.Clean = false
	s.Require().NoError(os.WriteFile(stale, []byte("stale"), 0o644))
	s.Require().NoError(s.run())
	s.FileExists(stale)
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
