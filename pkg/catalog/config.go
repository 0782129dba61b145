package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/vexxhost/hyper-platform/apis/kustomize/v1beta1"
	"github.com/vexxhost/hyper-platform/pkg/platform"
)

// ApplicationSetConfig is the record of an ApplicationSet git generator config
// file: a SimpleApplicationSetConfig or a ChartApplicationSetConfig
type ApplicationSetConfig interface {
	Base() SimpleApplicationSetConfig
}

// SimpleApplicationSetConfig targets a cluster and environment
type SimpleApplicationSetConfig struct {
	TargetCluster string               `json:"targetCluster"`
	Env           platform.Environment `json:"env"`
	Stripe        string               `json:"stripe"`
	ProjectName   string               `json:"projectName"`
	Namespace     string               `json:"namespace,omitempty"`
}

// Base returns the config itself
func (c SimpleApplicationSetConfig) Base() SimpleApplicationSetConfig {
	return c
}

// ChartApplicationSetConfig is a SimpleApplicationSetConfig deploying a
// specific Helm chart release
type ChartApplicationSetConfig struct {
	SimpleApplicationSetConfig

	ChartRepository string `json:"chartRepository"`
	ChartName       string `json:"chartName"`
	ChartVersion    string `json:"chartVersion"`
	ReleaseName     string `json:"releaseName"`
}

// ParseApplicationSetConfig classifies a decoded config document. The chart
// shape is checked first since every chart config is also a simple config.
func ParseApplicationSetConfig(v any) (ApplicationSetConfig, bool) {
	doc, ok := asDocument(v)
	if !ok {
		return nil, false
	}

	switch {
	case matches(doc, chartConfigRules):
		return ChartApplicationSetConfig{
			SimpleApplicationSetConfig: simpleConfig(doc),
			ChartRepository:            stringField(doc, "chartRepository"),
			ChartName:                  stringField(doc, "chartName"),
			ChartVersion:               stringField(doc, "chartVersion"),
			ReleaseName:                stringField(doc, "releaseName"),
		}, true
	case matches(doc, simpleConfigRules):
		return simpleConfig(doc), true
	default:
		return nil, false
	}
}

func simpleConfig(doc map[string]any) SimpleApplicationSetConfig {
	return SimpleApplicationSetConfig{
		TargetCluster: stringField(doc, "targetCluster"),
		Env:           platform.Environment(stringField(doc, "env")),
		Stripe:        stringField(doc, "stripe"),
		ProjectName:   stringField(doc, "projectName"),
		Namespace:     stringField(doc, "namespace"),
	}
}

// ApplicationSetConfigResult pairs a config file with its classified record
type ApplicationSetConfigResult struct {
	// Name is the path of the config file
	Name string `json:"name"`

	// Record is nil when the file could not be classified
	Record ApplicationSetConfig `json:"record"`

	// Active is nil when the file is neither in an active nor inactive directory
	Active *bool `json:"active"`

	Kustomization *v1beta1.SourceCatalogKustomization `json:"kustomization,omitempty"`
}

// IsChart reports whether the record is a chart config
func (r ApplicationSetConfigResult) IsChart() bool {
	_, ok := r.Record.(ChartApplicationSetConfig)
	return ok
}

// UnmarshalJSON decodes a result, classifying its record with the type guards
func (r *ApplicationSetConfigResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name          string                              `json:"name"`
		Record        map[string]any                      `json:"record"`
		Active        *bool                               `json:"active"`
		Kustomization *v1beta1.SourceCatalogKustomization `json:"kustomization,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = ApplicationSetConfigResult{
		Name:          raw.Name,
		Active:        raw.Active,
		Kustomization: raw.Kustomization,
	}

	if raw.Record == nil {
		return nil
	}

	record, ok := ParseApplicationSetConfig(raw.Record)
	if !ok {
		return fmt.Errorf("record of %s is not an ApplicationSet config", raw.Name)
	}
	r.Record = record

	return nil
}
