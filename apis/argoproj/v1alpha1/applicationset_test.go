// Copyright 2025 VEXXHOST, Inc.
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

const applicationSetYAML = `
apiVersion: argoproj.io/v1alpha1
kind: ApplicationSet
metadata:
  name: payments-api
  namespace: argocd
spec:
  goTemplate: true
  goTemplateOptions: ["missingkey=error"]
  generators:
    - matrix:
        generators:
          - git:
              repoURL: https://github.com/acme/payments-catalog
              revision: main
              files:
                - path: payments/payments-api/config/*/active/config.json
          - clusters:
              selector:
                matchExpressions:
                  - key: environment
                    operator: In
                    values: [dev, syst]
    - git:
        repoURL: https://github.com/acme/payments-catalog
        revision: main
        files:
          - path: payments/payments-api/bootstrap.json
  template:
    metadata:
      name: '{{ .env }}-payments-api'
    spec:
      project: payments
      sources:
        - repoURL: https://charts.example.com
          chart: basic-container-load
          targetRevision: 1.2.0
          helm:
            releaseName: payments-api
            ignoreMissingValueFiles: true
            valueFiles: ["$values/payments/payments-api/values/{{ .env }}.yaml"]
        - repoURL: https://github.com/acme/payments-catalog
          targetRevision: main
          ref: values
      destination:
        name: '{{ .targetCluster }}'
        namespace: payments
      syncPolicy:
        automated:
          prune: true
          selfHeal: true
`

func TestApplicationSetConfigFilePaths(t *testing.T) {
	var appSet ApplicationSet
	require.NoError(t, yaml.UnmarshalStrict([]byte(applicationSetYAML), &appSet))

	assert.Equal(t, APIVersion, appSet.APIVersion)
	assert.Equal(t, KindApplicationSet, appSet.Kind)
	assert.Equal(t, "payments-api", appSet.Name)

	require.Len(t, appSet.Spec.Generators, 2)
	assert.True(t, appSet.Spec.Generators[0].IsMatrix())
	assert.False(t, appSet.Spec.Generators[0].IsGit())
	assert.True(t, appSet.Spec.Generators[0].Matrix.Generators[1].IsClusters())

	assert.Equal(t, []string{
		"payments/payments-api/config/*/active/config.json",
		"payments/payments-api/bootstrap.json",
	}, appSet.ConfigFilePaths())

	require.Len(t, appSet.Spec.Template.Spec.Sources, 2)
	assert.Equal(t, "values", appSet.Spec.Template.Spec.Sources[1].Ref)
}

func TestGeneratorGuards(t *testing.T) {
	tests := []struct {
		name      string
		generator ApplicationSetGenerator
		git       bool
		matrix    bool
		clusters  bool
	}{
		{
			name:      "git with repository and revision",
			generator: ApplicationSetGenerator{Git: &GitGenerator{RepoURL: "https://example.com/repo", Revision: "main"}},
			git:       true,
		},
		{
			name:      "git without revision",
			generator: ApplicationSetGenerator{Git: &GitGenerator{RepoURL: "https://example.com/repo"}},
		},
		{
			name:      "matrix without generator list",
			generator: ApplicationSetGenerator{Matrix: &MatrixGenerator{}},
		},
		{
			name:      "empty matrix",
			generator: ApplicationSetGenerator{Matrix: &MatrixGenerator{Generators: []ApplicationSetGenerator{}}},
			matrix:    true,
		},
		{
			name:      "clusters without selector",
			generator: ApplicationSetGenerator{Clusters: &ClustersGenerator{}},
			clusters:  true,
		},
		{
			name: "empty entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.git, tt.generator.IsGit())
			assert.Equal(t, tt.matrix, tt.generator.IsMatrix())
			assert.Equal(t, tt.clusters, tt.generator.IsClusters())
		})
	}
}

func TestNewApplication(t *testing.T) {
	app := NewApplication("payments-bootstrap", "argocd")
	app.Spec.Project = "payments"

	data, err := yaml.Marshal(app)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: argoproj.io/v1alpha1")
	assert.Contains(t, string(data), "kind: Application")
}
