package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigHash(t *testing.T) {
	a, err := ConfigHash(map[string]interface{}{"replicas": 1, "labels": map[string]interface{}{"team": "a"}})
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := ConfigHash(map[string]interface{}{"replicas": 1, "labels": map[string]interface{}{"team": "b"}})
	require.NoError(t, err)
	assert.Equal(t, a, b, "labels do not affect the hash")

	c, err := ConfigHash(map[string]interface{}{"replicas": 2})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = ConfigHash(map[string]interface{}{"bad": func() {}})
	assert.Error(t, err)
}

func TestWorkloadReleaseConfigHash(t *testing.T) {
	release := &WorkloadRelease{
		Chart:   &ChartReference{RepoURL: "https://charts.example.com", Name: "basic-container-load", Version: "1.2.0"},
		Release: &ReleaseConfig{Namespace: "payments", Name: "payments-api"},
	}

	before, err := release.ConfigHash()
	require.NoError(t, err)

	release.Chart.Version = "1.3.0"
	after, err := release.ConfigHash()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
