package helm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"helm.sh/helm/v3/pkg/chartutil"
)

const (
	// ChartfileName is the name of the chart metadata file
	ChartfileName = "Chart.yaml"

	// ValuesSchemaFileName is the name of the values JSON Schema of a chart
	ValuesSchemaFileName = "values.schema.json"
)

// ErrNoValuesSchema is returned when a chart has no values.schema.json
var ErrNoValuesSchema = errors.New("chart has no " + ValuesSchemaFileName)

var chartAPIVersions = map[string]bool{"v1": true, "v2": true, "v3": true}

// ChartManifest is the subset of Chart.yaml used by the platform
type ChartManifest struct {
	APIVersion  string `json:"apiVersion"`
	AppVersion  string `json:"appVersion"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name"`
	Version     string `json:"version"`
}

// LoadChartManifest reads the Chart.yaml of a chart directory
func LoadChartManifest(dir string) (*ChartManifest, error) {
	metadata, err := chartutil.LoadChartfile(filepath.Join(dir, ChartfileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ChartfileName, err)
	}

	if !chartAPIVersions[metadata.APIVersion] {
		return nil, fmt.Errorf("unsupported chart apiVersion %q", metadata.APIVersion)
	}

	return &ChartManifest{
		APIVersion:  metadata.APIVersion,
		AppVersion:  metadata.AppVersion,
		Description: metadata.Description,
		Name:        metadata.Name,
		Version:     metadata.Version,
	}, nil
}

// LoadValuesSchema reads the values.schema.json of a chart directory
func LoadValuesSchema(dir string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, ValuesSchemaFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoValuesSchema
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ValuesSchemaFileName, err)
	}
	return data, nil
}

// ValidateValues checks values against a chart values JSON Schema
func ValidateValues(schema []byte, values map[string]interface{}) error {
	return chartutil.ValidateAgainstSingleSchema(chartutil.Values(values), schema)
}
