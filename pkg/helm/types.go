package helm

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/vexxhost/hyper-platform/pkg/catalog"
)

// ChartReference contains the coordinates of a Helm chart
type ChartReference struct {
	// RepoURL points to the Helm chart repository URL.
	RepoURL string `koanf:"repository" json:"repository"`

	// Name is the name of the Helm chart.
	Name string `koanf:"name" json:"name"`

	// Version is the version of the Helm chart.
	Version string `koanf:"version" json:"version"`
}

// ReleaseConfig contains the configuration for a Helm release
type ReleaseConfig struct {
	// Namespace is the Kubernetes namespace the release is rendered for.
	Namespace string `koanf:"namespace" json:"namespace"`

	// Name is the name of the Helm release.
	Name string `koanf:"name" json:"name"`

	// Values are the Helm values to be used for the release.
	Values map[string]interface{} `koanf:"values" json:"values,omitempty"`
}

// WorkloadRelease contains both chart and release configuration for a workload
type WorkloadRelease struct {
	// Chart contains the chart coordinates
	Chart *ChartReference `koanf:"chart" json:"chart"`

	// Release contains the release configuration
	Release *ReleaseConfig `koanf:"release" json:"release"`
}

// ReleaseFor builds the release described by a chart ApplicationSet config.
// The namespace of the config wins over defaultNamespace.
func ReleaseFor(config catalog.ChartApplicationSetConfig, defaultNamespace string) *WorkloadRelease {
	namespace := config.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &WorkloadRelease{
		Chart: &ChartReference{
			RepoURL: config.ChartRepository,
			Name:    config.ChartName,
			Version: config.ChartVersion,
		},
		Release: &ReleaseConfig{
			Namespace: namespace,
			Name:      config.ReleaseName,
		},
	}
}

// Merged returns a copy of the release with overrides applied on top
func (w *WorkloadRelease) Merged(overrides *WorkloadRelease) (*WorkloadRelease, error) {
	merged := &WorkloadRelease{
		Chart:   &ChartReference{},
		Release: &ReleaseConfig{},
	}

	for _, src := range []*WorkloadRelease{w, overrides} {
		if src == nil {
			continue
		}

		if src.Chart != nil {
			if err := mergo.Merge(merged.Chart, src.Chart, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge chart: %w", err)
			}
		}

		if src.Release != nil {
			if err := mergo.Merge(merged.Release, src.Release, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge release: %w", err)
			}
		}
	}

	return merged, nil
}
