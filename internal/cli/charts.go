package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/pkg/helm"
	"github.com/vexxhost/hyper-platform/pkg/platform"
	"github.com/vexxhost/hyper-platform/pkg/workload"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewChartsCommand creates and returns the charts command
func NewChartsCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "List the platform base charts",
		Long: `List the platform base charts by directory name along with the workload type
they render.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.print(cmd.OutOrStdout(), workload.KebabCaseToPlatformChart, chartsTable)
		},
	}

	o.addFlags(cmd, outputTable, outputTable, outputJSON, outputYAML)

	cmd.AddCommand(newChartsShowCommand())
	cmd.AddCommand(newChartsVersionsCommand())

	return cmd
}

func chartsTable() *metav1.Table {
	columns := []metav1.TableColumnDefinition{
		{Name: "DIRECTORY", Type: "string", Description: "Chart directory name"},
		{Name: "WORKLOAD-TYPE", Type: "string", Description: "Workload type rendered by the chart"},
	}

	dirs := make([]string, 0, len(workload.KebabCaseToPlatformChart))
	for dir := range workload.KebabCaseToPlatformChart {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	rows := make([]metav1.TableRow, 0, len(dirs))
	for _, dir := range dirs {
		rows = append(rows, metav1.TableRow{
			Cells: []interface{}{dir, string(workload.KebabCaseToPlatformChart[dir])},
		})
	}

	return newTable(columns, rows)
}

func newChartsShowCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "show <chart-dir>",
		Short: "Show the Chart.yaml of a chart directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := helm.LoadChartManifest(args[0])
			if err != nil {
				return err
			}

			return o.print(cmd.OutOrStdout(), manifest, nil)
		},
	}

	o.addFlags(cmd, outputYAML, outputJSON, outputYAML)

	return cmd
}

func newChartsVersionsCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "versions <index-file> <chart>",
		Short: "List the published versions of a chart, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := helm.LoadRepositoryIndex(args[0])
			if err != nil {
				return err
			}

			versions, ok := index.Versions(args[1])
			if !ok {
				return fmt.Errorf("chart %s not found in %s", args[1], args[0])
			}

			return o.print(cmd.OutOrStdout(), versions, func() *metav1.Table {
				return versionsTable(versions)
			})
		},
	}

	o.addFlags(cmd, outputTable, outputTable, outputJSON, outputYAML)

	return cmd
}

func versionsTable(versions platform.ContainerVersionsList) *metav1.Table {
	columns := []metav1.TableColumnDefinition{
		{Name: "NAME", Type: "string", Description: "Chart name"},
		{Name: "VERSION", Type: "string", Description: "Chart version"},
		{Name: "LATEST", Type: "string", Description: "Whether this is the newest version"},
	}

	latest, _ := versions.Latest()

	rows := make([]metav1.TableRow, 0, len(versions.Versions.Items))
	for _, v := range versions.Versions.Items {
		marker := ""
		if v == latest {
			marker = "*"
		}
		rows = append(rows, metav1.TableRow{
			Cells: []interface{}{versions.Name, v, marker},
		})
	}

	return newTable(columns, rows)
}
