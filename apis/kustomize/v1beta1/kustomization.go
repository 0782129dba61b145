// Copyright 2025 VEXXHOST, Inc.
// SPDX-License-Identifier: Apache-2.0

package v1beta1

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

const (
	// APIVersion is the apiVersion of a Kustomization file
	APIVersion = "kustomize.config.k8s.io/v1beta1"

	// Kind is the kind of a Kustomization file
	Kind = "Kustomization"
)

// HelmChart is a chart inflated by kustomize
type HelmChart struct {
	// Name is the chart name
	Name string `json:"name"`

	// Repo is the chart repository URL
	Repo string `json:"repo"`

	// Version is the chart version
	Version string `json:"version"`

	// ValuesFile is the values file passed to the chart
	ValuesFile string `json:"valuesFile"`

	// Namespace is the namespace of the rendered release
	Namespace string `json:"namespace"`

	// ReleaseName overrides the release name
	ReleaseName string `json:"releaseName,omitempty"`
}

// HelmGlobals configures chart inflation for all charts
type HelmGlobals struct {
	ChartHome string `json:"chartHome"`
}

// Kustomization is a kustomization.yaml document
type Kustomization struct {
	metav1.TypeMeta `json:",inline"`
}

// CatalogKustomization is the kustomization of a catalog workload directory
type CatalogKustomization struct {
	Kustomization `json:",inline"`

	Resources         []string          `json:"resources,omitempty"`
	HelmGlobals       *HelmGlobals      `json:"helmGlobals,omitempty"`
	HelmCharts        []HelmChart       `json:"helmCharts,omitempty"`
	CommonAnnotations map[string]string `json:"commonAnnotations,omitempty"`
}

// SourceCatalogKustomization is a CatalogKustomization read from git, along
// with the blob SHA it was read from
type SourceCatalogKustomization struct {
	CatalogKustomization `json:",inline"`

	SHA string `json:"sha"`
}

// ParseCatalogKustomization decodes a kustomization.yaml document
func ParseCatalogKustomization(data []byte) (*CatalogKustomization, error) {
	var k CatalogKustomization
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, err
	}

	if k.APIVersion != APIVersion || k.Kind != Kind {
		return nil, fmt.Errorf("unexpected kustomization type %s/%s", k.APIVersion, k.Kind)
	}

	return &k, nil
}

// Chart returns the helm chart with the given name
func (k *CatalogKustomization) Chart(name string) (*HelmChart, bool) {
	for i := range k.HelmCharts {
		if k.HelmCharts[i].Name == name {
			return &k.HelmCharts[i], true
		}
	}
	return nil, false
}
