// Copyright 2025 VEXXHOST, Inc.
// SPDX-License-Identifier: Apache-2.0

package v1beta1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogKustomization(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "helm chart kustomization",
			data: `
apiVersion: kustomize.config.k8s.io/v1beta1
kind: Kustomization
helmGlobals:
  chartHome: ../../charts
helmCharts:
  - name: basic-container-load
    repo: https://charts.example.com
    version: 1.2.0
    valuesFile: values.yaml
    namespace: payments
    releaseName: payments-api
commonAnnotations:
  acme.io/owner: payments
`,
		},
		{
			name:    "wrong kind",
			data:    "apiVersion: v1\nkind: ConfigMap\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			data:    "helmCharts: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseCatalogKustomization([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "../../charts", k.HelmGlobals.ChartHome)
			assert.Equal(t, "payments", k.CommonAnnotations["acme.io/owner"])

			chart, ok := k.Chart("basic-container-load")
			require.True(t, ok)
			assert.Equal(t, "1.2.0", chart.Version)
			assert.Equal(t, "payments-api", chart.ReleaseName)

			_, ok = k.Chart("missing")
			assert.False(t, ok)
		})
	}
}
