package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vexxhost/hyper-platform/internal/schemagen"
)

func newTestGenerator(t *testing.T, schemas map[string]string) *schemagen.Generator {
	t.Helper()

	root := t.TempDir()
	chartsDir := filepath.Join(root, "charts")
	for chart, schema := range schemas {
		dir := filepath.Join(chartsDir, chart)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, schemagen.SchemaFileName), []byte(schema), 0o644))
	}
	require.NoError(t, os.MkdirAll(chartsDir, 0o755))

	return &schemagen.Generator{
		ChartsDir: chartsDir,
		OutputDir: filepath.Join(root, "src"),
		Emitter:   &schemagen.TypeScriptEmitter{},
		Clean:     true,
	}
}

func TestRunGenerate(t *testing.T) {
	g := newTestGenerator(t, map[string]string{
		"basic-container-load":    `{"type":"object","properties":{"workloadType":{"type":"string","const":"BASIC_CONTAINER_LOAD"}}}`,
		"stateful-container-load": `{"type":"object","properties":{"workloadType":{"type":"string","const":"STATEFUL_CONTAINER_LOAD"}}}`,
	})

	require.NoError(t, RunGenerate(context.Background(), g))

	index, err := os.ReadFile(filepath.Join(g.OutputDir, "index.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "export * from './basic-container-load';\nexport * from './stateful-container-load';\nexport * from './workload-types';\n")
	assert.Equal(t, []string{"BASIC_CONTAINER_LOAD", "STATEFUL_CONTAINER_LOAD"}, g.WorkloadTypes())
}

func TestRunGenerateStopsAtFirstFailure(t *testing.T) {
	g := newTestGenerator(t, map[string]string{
		"a-broken":             `not json`,
		"basic-container-load": `{"type":"object","properties":{"workloadType":{"type":"string","const":"BASIC_CONTAINER_LOAD"}}}`,
	})

	err := RunGenerate(context.Background(), g)

	var chartErr *schemagen.ChartError
	require.ErrorAs(t, err, &chartErr)
	assert.Equal(t, "a-broken", chartErr.Chart)
	assert.NoFileExists(t, filepath.Join(g.OutputDir, "basic-container-load.ts"))
	assert.NoFileExists(t, filepath.Join(g.OutputDir, "index.ts"))
}

func TestRunGenerateCancelled(t *testing.T) {
	g := newTestGenerator(t, map[string]string{
		"basic-container-load": `{"type":"object"}`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunGenerate(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, g.OutputDir)
}

func TestTaskFlowRunsInOrder(t *testing.T) {
	tf := NewTaskFlow(context.Background(), "order")

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		tf.Then(name, func() error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, tf.Run(4))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}
