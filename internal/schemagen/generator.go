package schemagen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// SchemaFileName is the values schema each chart directory is expected to carry
const SchemaFileName = "values.schema.json"

// Chart is a chart directory with a values schema
type Chart struct {
	Name       string
	SchemaPath string
}

// ChartError reports the chart whose schema could not be turned into types
type ChartError struct {
	Chart string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("failed to generate types for %s: %v", e.Chart, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// Generator turns the values schemas of a charts directory into type
// declarations, a workload type enumeration and an index file
type Generator struct {
	ChartsDir string
	OutputDir string
	Emitter   Emitter

	// Clean removes the output directory before generating
	Clean bool

	charts        []string
	workloadTypes []string
	seen          map[string]bool

	// files maps each written chart file to its chart
	files map[string]string
}

// Discover lists the sorted chart directories that contain a values schema
func (g *Generator) Discover() ([]Chart, error) {
	entries, err := os.ReadDir(g.ChartsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read charts directory: %w", err)
	}

	var charts []Chart
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		schemaPath := filepath.Join(g.ChartsDir, entry.Name(), SchemaFileName)
		if _, err := os.Stat(schemaPath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to check %s: %w", schemaPath, err)
		}

		charts = append(charts, Chart{Name: entry.Name(), SchemaPath: schemaPath})
	}

	sort.Slice(charts, func(i, j int) bool {
		return charts[i].Name < charts[j].Name
	})

	names := make([]string, len(charts))
	for i, c := range charts {
		names[i] = c.Name
	}
	log.Info("Found charts with schemas", "count", len(charts), "charts", names)

	return charts, nil
}

// Prepare creates the output directory, emptying it first when Clean is set.
// Without Clean, the index of a previous run is removed so that a failed run
// leaves no index behind.
func (g *Generator) Prepare() error {
	g.charts = nil
	g.workloadTypes = nil
	g.seen = make(map[string]bool)
	g.files = make(map[string]string)

	if g.Clean {
		if err := os.RemoveAll(g.OutputDir); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	} else {
		index := filepath.Join(g.OutputDir, g.Emitter.IndexFileName())
		if err := os.Remove(index); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove previous index: %w", err)
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// Generate writes the declaration file of one chart and records its workload
// type
func (g *Generator) Generate(chart Chart) error {
	log.Info("Generating types", "chart", chart.Name)

	if err := g.generate(chart); err != nil {
		log.Error("Failed to generate types", "chart", chart.Name, "error", err)
		return &ChartError{Chart: chart.Name, Err: err}
	}

	return nil
}

func (g *Generator) generate(chart Chart) error {
	schema, err := LoadSchema(chart.SchemaPath)
	if err != nil {
		return err
	}

	root, err := Convert(schema)
	if err != nil {
		return err
	}

	name, content, err := g.Emitter.ChartFile(chart.Name, root)
	if err != nil {
		return err
	}

	if g.files == nil {
		g.files = make(map[string]string)
	}
	if other, ok := g.files[name]; ok {
		return fmt.Errorf("output file %s is already generated for chart %s", name, other)
	}

	if err := g.write(name, content); err != nil {
		return err
	}
	g.files[name] = chart.Name

	if workloadType, ok := WorkloadTypeOf(schema); ok {
		log.Debug("Found workload type", "chart", chart.Name, "workloadType", workloadType)
		if g.seen == nil {
			g.seen = make(map[string]bool)
		}
		if !g.seen[workloadType] {
			g.seen[workloadType] = true
			g.workloadTypes = append(g.workloadTypes, workloadType)
		}
	}

	g.charts = append(g.charts, chart.Name)
	return nil
}

// WorkloadTypes returns the distinct workload types found so far, in
// discovery order
func (g *Generator) WorkloadTypes() []string {
	return g.workloadTypes
}

// WriteWorkloadTypes writes the workload type enumeration. Nothing is written
// when no chart declared a workload type.
func (g *Generator) WriteWorkloadTypes() error {
	if len(g.workloadTypes) == 0 {
		log.Debug("No workload types found, skipping enumeration")
		return nil
	}

	name, content, err := g.Emitter.WorkloadTypesFile(g.workloadTypes)
	if err != nil {
		return err
	}

	if err := g.write(name, content); err != nil {
		return err
	}

	log.Info("Generated workload type enumeration", "count", len(g.workloadTypes))
	return nil
}

// WriteIndex writes the index file over every generated chart
func (g *Generator) WriteIndex() error {
	name, content, err := g.Emitter.IndexFile(g.charts, len(g.workloadTypes) > 0)
	if err != nil {
		return err
	}

	if err := g.write(name, content); err != nil {
		return err
	}

	log.Info("Generated index", "path", filepath.Join(g.OutputDir, name), "charts", len(g.charts))
	return nil
}

func (g *Generator) write(name string, content []byte) error {
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debug("Wrote file", "path", path)
	return nil
}
