package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/internal/gitcatalog"
	"github.com/vexxhost/hyper-platform/internal/hyper"
	"github.com/vexxhost/hyper-platform/pkg/catalog"
	"github.com/vexxhost/hyper-platform/pkg/helm"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewCatalogCommand creates and returns the catalog command
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect a deployment catalog repository",
		Long: `Inspect the HEAD commit of a local deployment catalog checkout. Config files
are found by their path: <catalog>/<workload>/<config>/<env>/<state>/<file>.
The repository defaults to the catalog.repository setting.`,
	}

	cmd.AddCommand(newCatalogScanCommand())
	cmd.AddCommand(newCatalogTreeCommand())
	cmd.AddCommand(newCatalogReleasesCommand())

	return cmd
}

func openCatalog(cmd *cobra.Command, args []string) (*gitcatalog.Scanner, error) {
	path := hyper.MustConfig(cmd.Context()).Catalog.Repository
	if len(args) > 0 {
		path = args[0]
	}

	return gitcatalog.Open(path)
}

func newCatalogScanCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "scan [repository]",
		Short: "Summarize the ApplicationSets of a catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, err := openCatalog(cmd, args)
			if err != nil {
				return err
			}

			summaries, err := scanner.Summaries()
			if err != nil {
				return err
			}

			return o.print(cmd.OutOrStdout(), summaries, func() *metav1.Table {
				return summaryTable(summaries)
			})
		},
	}

	o.addFlags(cmd, outputTable, outputTable, outputJSON, outputYAML)

	return cmd
}

func summaryTable(summaries []catalog.ApplicationSetSummary) *metav1.Table {
	columns := []metav1.TableColumnDefinition{
		{Name: "WORKLOAD", Type: "string", Description: "Workload directory"},
		{Name: "APPLICATIONSET", Type: "string", Description: "Name of the workload ApplicationSet"},
		{Name: "CONFIGS", Type: "integer", Description: "Number of config files"},
		{Name: "ACTIVE", Type: "integer", Description: "Number of active config files"},
	}

	rows := make([]metav1.TableRow, 0, len(summaries))
	for _, s := range summaries {
		appSet := "<none>"
		if s.ApplicationSet != nil {
			appSet = valueOrNone(s.ApplicationSet.Name)
		}

		rows = append(rows, metav1.TableRow{
			Cells: []interface{}{s.Name, appSet, len(s.GeneratorConfigs.Items), len(s.Active())},
		})
	}

	return newTable(columns, rows)
}

func newCatalogTreeCommand() *cobra.Command {
	o := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "tree [repository]",
		Short: "List the HEAD tree of a catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, err := openCatalog(cmd, args)
			if err != nil {
				return err
			}

			tree, err := scanner.Tree()
			if err != nil {
				return err
			}

			return o.print(cmd.OutOrStdout(), tree, nil)
		},
	}

	o.addFlags(cmd, outputJSON, outputJSON, outputYAML)

	return cmd
}

func newCatalogReleasesCommand() *cobra.Command {
	o := &outputOptions{}
	var all bool

	cmd := &cobra.Command{
		Use:   "releases [repository]",
		Short: "List the Helm releases described by chart configs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, err := openCatalog(cmd, args)
			if err != nil {
				return err
			}

			results, err := scanner.Results()
			if err != nil {
				return err
			}

			cfg := hyper.MustConfig(cmd.Context()).Catalog

			releases := make([]catalogRelease, 0, len(results))
			for _, r := range results {
				config, ok := r.Record.(catalog.ChartApplicationSetConfig)
				if !ok {
					continue
				}
				if !all && (r.Active == nil || !*r.Active) {
					continue
				}

				release := helm.ReleaseFor(config, cfg.DefaultNamespace)
				if overrides := cfg.ReleaseOverrides(config.ReleaseName); overrides != nil {
					release, err = release.Merged(overrides)
					if err != nil {
						return err
					}
				}

				hash, err := release.ConfigHash()
				if err != nil {
					return err
				}

				releases = append(releases, catalogRelease{
					Config:          r.Name,
					Active:          r.Active,
					ConfigHash:      hash,
					WorkloadRelease: release,
				})
			}

			return o.print(cmd.OutOrStdout(), releases, func() *metav1.Table {
				return releaseTable(releases)
			})
		},
	}

	o.addFlags(cmd, outputTable, outputTable, outputJSON, outputYAML)
	cmd.Flags().BoolVarP(&all, "all", "A", false, "Include configs that are not active")

	return cmd
}

// catalogRelease is a release along with the config file it comes from
type catalogRelease struct {
	Config     string `json:"config"`
	Active     *bool  `json:"active"`
	ConfigHash string `json:"configHash"`

	*helm.WorkloadRelease `json:",inline"`
}

func releaseTable(releases []catalogRelease) *metav1.Table {
	columns := []metav1.TableColumnDefinition{
		{Name: "CONFIG", Type: "string", Description: "Config file path"},
		{Name: "RELEASE", Type: "string", Description: "Release name"},
		{Name: "NAMESPACE", Type: "string", Description: "Release namespace"},
		{Name: "CHART", Type: "string", Description: "Chart name"},
		{Name: "VERSION", Type: "string", Description: "Chart version"},
		{Name: "ACTIVE", Type: "string", Description: "Whether the config is active"},
		{Name: "HASH", Type: "string", Description: "Short hash of the release configuration"},
	}

	rows := make([]metav1.TableRow, 0, len(releases))
	for _, r := range releases {
		active := "<none>"
		if r.Active != nil {
			active = strconv.FormatBool(*r.Active)
		}

		rows = append(rows, metav1.TableRow{
			Cells: []interface{}{
				r.Config,
				valueOrNone(r.Release.Name),
				valueOrNone(r.Release.Namespace),
				valueOrNone(r.Chart.Name),
				valueOrNone(r.Chart.Version),
				active,
				r.ConfigHash[:8],
			},
		})
	}

	return newTable(columns, rows)
}
