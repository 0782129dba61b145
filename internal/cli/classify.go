package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/pkg/catalog"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewClassifyCommand creates and returns the classify command
func NewClassifyCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "classify <file>...",
		Short: "Classify ApplicationSet config files",
		Long: `Classify ApplicationSet config files as chart or simple configs. Files whose
contents match neither shape are reported as unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]catalog.ApplicationSetConfigResult, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read config file: %w", err)
				}

				result, err := catalog.Classify(path, data)
				if err != nil {
					return err
				}

				results = append(results, result)
			}

			return o.print(cmd.OutOrStdout(), results, func() *metav1.Table {
				return classifyTable(results)
			})
		},
	}

	o.addFlags(cmd, outputTable, outputTable, outputJSON, outputYAML)

	return cmd
}

func classifyTable(results []catalog.ApplicationSetConfigResult) *metav1.Table {
	columns := []metav1.TableColumnDefinition{
		{Name: "FILE", Type: "string", Description: "Config file path"},
		{Name: "SHAPE", Type: "string", Description: "chart, simple or unknown"},
		{Name: "ACTIVE", Type: "string", Description: "Whether the file is in an active directory"},
		{Name: "TARGET-CLUSTER", Type: "string", Description: "Cluster the config deploys to"},
		{Name: "ENV", Type: "string", Description: "Environment of the config"},
	}

	rows := make([]metav1.TableRow, 0, len(results))
	for _, r := range results {
		shape, cluster, env := "unknown", "<none>", "<none>"
		if r.Record != nil {
			shape = "simple"
			if r.IsChart() {
				shape = "chart"
			}
			base := r.Record.Base()
			cluster, env = valueOrNone(base.TargetCluster), valueOrNone(string(base.Env))
		}

		active := "<none>"
		if r.Active != nil {
			active = strconv.FormatBool(*r.Active)
		}

		rows = append(rows, metav1.TableRow{
			Cells: []interface{}{r.Name, shape, active, cluster, env},
		})
	}

	return newTable(columns, rows)
}
