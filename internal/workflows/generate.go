package workflows

import (
	"context"
	"fmt"

	"github.com/vexxhost/hyper-platform/internal/schemagen"
)

// CreateGenerateWorkflow creates the type generation TaskFlow: prepare the
// output directory, one task per chart, then the workload type enumeration
// and the index
func CreateGenerateWorkflow(ctx context.Context, g *schemagen.Generator) (*TaskFlow, error) {
	charts, err := g.Discover()
	if err != nil {
		return nil, err
	}

	tf := NewTaskFlow(ctx, "generate")
	tf.Then("prepare-output", g.Prepare)

	for _, chart := range charts {
		tf.Then(fmt.Sprintf("generate-%s", chart.Name), func() error {
			return g.Generate(chart)
		})
	}

	tf.Then("generate-workload-types", g.WriteWorkloadTypes)
	tf.Then("generate-index", g.WriteIndex)

	return tf, nil
}

// RunGenerate builds and runs the generation workflow on a single worker
func RunGenerate(ctx context.Context, g *schemagen.Generator) error {
	tf, err := CreateGenerateWorkflow(ctx, g)
	if err != nil {
		return err
	}

	return tf.Run(1)
}
