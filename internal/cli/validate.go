package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/pkg/helm"
	"github.com/vexxhost/hyper-platform/pkg/workload"
	"sigs.k8s.io/yaml"
)

// NewValidateCommand creates and returns the validate command
func NewValidateCommand() *cobra.Command {
	var chartDir string

	cmd := &cobra.Command{
		Use:   "validate <values-file>",
		Short: "Validate a workload values file",
		Long: `Decode a workload values file according to its workloadType and check it
structurally. With --chart, the file is also validated against the
values.schema.json of the chart.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read values file: %w", err)
			}

			values, err := workload.Decode(data)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}

			if errs := values.Validate(); len(errs) > 0 {
				for _, e := range errs {
					log.Error("Invalid value", "field", e.Field, "error", e.ErrorBody())
				}
				return errs.ToAggregate()
			}

			if chartDir != "" {
				if err := validateAgainstChart(chartDir, values.GetWorkloadType(), data); err != nil {
					return err
				}
			}

			log.Info("Values file is valid", "path", path, "workloadType", values.GetWorkloadType())
			return nil
		},
	}

	cmd.Flags().StringVar(&chartDir, "chart", "", "Chart directory whose values.schema.json the file must satisfy")

	return cmd
}

func validateAgainstChart(dir string, workloadType workload.WorkloadType, data []byte) error {
	manifest, err := helm.LoadChartManifest(dir)
	if err != nil {
		return err
	}

	if expected, ok := workload.ChartForDirectory(filepath.Base(filepath.Clean(dir))); ok && expected != workloadType {
		return fmt.Errorf("chart %s expects workload type %s, got %s", manifest.Name, expected, workloadType)
	}

	schema, err := helm.LoadValuesSchema(dir)
	if err != nil {
		return err
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to decode values: %w", err)
	}

	if err := helm.ValidateValues(schema, values); err != nil {
		return err
	}

	log.Debug("Values satisfy chart schema", "chart", manifest.Name, "version", manifest.Version)
	return nil
}
