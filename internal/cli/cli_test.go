package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testValues = `workloadType: BASIC_CONTAINER_LOAD
serviceName: payments-api
environment: dev
stripe: blue
serviceCatalog: payments
container:
  replicas: 2
  image:
    repository: ghcr.io/acme/payments-api
    tag: 1.4.2
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "hyper.yaml")}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestChartsCommand(t *testing.T) {
	out, err := execute(t, "charts")
	require.NoError(t, err)
	assert.Contains(t, out, "DIRECTORY")
	assert.Contains(t, out, "basic-container-load")
	assert.Contains(t, out, "STATEFUL_CONTAINER_LOAD")

	out, err = execute(t, "charts", "-o", "json")
	require.NoError(t, err)

	var charts map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	assert.Equal(t, "BASIC_CONTAINER_ROLLOUT", charts["basic-container-rollout"])

	_, err = execute(t, "charts", "-o", "wide")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "validate", writeFile(t, dir, "values.yaml", testValues))
	assert.NoError(t, err)

	_, err = execute(t, "validate", writeFile(t, dir, "unknown.yaml", "workloadType: NOPE\n"))
	assert.Error(t, err)

	_, err = execute(t, "validate", writeFile(t, dir, "invalid.yaml", "workloadType: BASIC_CONTAINER_LOAD\nenvironment: dev\n"))
	assert.Error(t, err)
}

func TestValidateCommandWithChart(t *testing.T) {
	dir := t.TempDir()
	chartDir := filepath.Join(dir, "basic-container-load")
	writeFile(t, chartDir, "Chart.yaml", "apiVersion: v2\nname: basic-container-load\nversion: 1.2.0\n")
	writeFile(t, chartDir, "values.schema.json", `{
  "type": "object",
  "required": ["workloadType"],
  "properties": {"workloadType": {"type": "string", "const": "BASIC_CONTAINER_LOAD"}}
}`)
	values := writeFile(t, dir, "values.yaml", testValues)

	_, err := execute(t, "validate", values, "--chart", chartDir)
	assert.NoError(t, err)

	otherChart := filepath.Join(dir, "stateful-container-load")
	writeFile(t, otherChart, "Chart.yaml", "apiVersion: v2\nname: stateful-container-load\nversion: 1.0.0\n")
	writeFile(t, otherChart, "values.schema.json", `{"type": "object"}`)

	_, err = execute(t, "validate", values, "--chart", otherChart)
	assert.ErrorContains(t, err, "expects workload type STATEFUL_CONTAINER_LOAD")
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	chart := writeFile(t, dir, "payments/api/config/dev/active/chart.yaml", `targetCluster: dev-1
env: dev
stripe: blue
projectName: payments
chartRepository: https://charts.example.com
chartName: basic-container-load
chartVersion: 1.2.0
releaseName: payments-api
`)
	other := writeFile(t, dir, "notes.yaml", "owner: payments\n")

	out, err := execute(t, "classify", chart, other)
	require.NoError(t, err)
	assert.Contains(t, out, "SHAPE")
	assert.Contains(t, out, "chart")
	assert.Contains(t, out, "unknown")
	assert.Regexp(t, `dev-1\s+dev\b`, out)

	out, err = execute(t, "classify", chart, "-o", "json")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "basic-container-load", results[0]["record"].(map[string]any)["chartName"])
}

func TestPatchCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "values.yaml", "container:\n  replicas: 1\nserviceName: api\n")
	patch := writeFile(t, dir, "patch.yaml", `path: values.yaml
patches:
  - op: replace
    path: /container/replicas
    value: 3
`)

	out, err := execute(t, "patch", patch, target)
	require.NoError(t, err)
	assert.Equal(t, "container:\n  replicas: 3\nserviceName: api\n", out)

	_, err = execute(t, "patch", patch, target, "--write")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "container:\n  replicas: 3\nserviceName: api\n", string(data))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charts/basic-container-load/values.schema.json",
		`{"type":"object","properties":{"workloadType":{"type":"string","const":"BASIC_CONTAINER_LOAD"}}}`)
	output := filepath.Join(dir, "src")

	_, err := execute(t, "generate", "--charts-dir", filepath.Join(dir, "charts"), "--output-dir", output, "--language", "go", "--package", "values")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(output, "basic_container_load_values.go"))
	assert.FileExists(t, filepath.Join(output, "workload_types.go"))
	assert.FileExists(t, filepath.Join(output, "index.go"))

	_, err = execute(t, "generate", "--charts-dir", filepath.Join(dir, "charts"), "--output-dir", output, "--language", "rust")
	assert.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "payments/api/config/dev/active/chart.yaml", `targetCluster: dev-1
env: dev
stripe: blue
projectName: payments
chartRepository: https://charts.example.com
chartName: basic-container-load
chartVersion: 1.2.0
releaseName: payments-api
`)
	writeFile(t, dir, "payments/api/config/prod/inactive/chart.yaml", `targetCluster: prod-1
env: prod
stripe: green
projectName: payments
namespace: payments-prod
chartRepository: https://charts.example.com
chartName: basic-container-load
chartVersion: 1.1.0
releaseName: payments-api
`)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, w.AddWithOptions(&git.AddOptions{All: true}))
	_, err = w.Commit("Add catalog", &git.CommitOptions{
		Author: &object.Signature{Name: "Catalog Bot", Email: "catalog@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	out, err := execute(t, "catalog", "scan", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "WORKLOAD")
	assert.Contains(t, out, "api")

	out, err = execute(t, "catalog", "releases", dir, "-o", "json")
	require.NoError(t, err)

	var releases []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &releases))
	require.Len(t, releases, 1)
	assert.Equal(t, "payments/api/config/dev/active/chart.yaml", releases[0]["config"])
	assert.Equal(t, "default", releases[0]["release"].(map[string]any)["namespace"])
	assert.Len(t, releases[0]["configHash"], 64)

	out, err = execute(t, "catalog", "releases", dir, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "payments-prod")

	out, err = execute(t, "catalog", "tree", dir, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "path: payments/api/config/dev/active/chart.yaml")
}
