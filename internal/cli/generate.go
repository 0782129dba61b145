package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/internal/hyper"
	"github.com/vexxhost/hyper-platform/internal/schemagen"
	"github.com/vexxhost/hyper-platform/internal/workflows"
)

// NewGenerateCommand creates and returns the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		chartsDir string
		outputDir string
		language  string
		pkg       string
		noClean   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate types from chart values schemas",
		Long: `Generate type declarations for every chart directory that carries a
values.schema.json, a WorkloadType enumeration of the workloadType constants
found in the schemas, and an index file exporting all of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := hyper.MustConfig(cmd.Context()).Generate

			flags := cmd.Flags()
			if flags.Changed("charts-dir") {
				cfg.ChartsDir = chartsDir
			}
			if flags.Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("language") {
				cfg.Language = language
			}
			if flags.Changed("package") {
				cfg.Package = pkg
			}

			emitter, err := schemagen.NewEmitter(schemagen.Language(cfg.Language), cfg.Package)
			if err != nil {
				return err
			}

			g := &schemagen.Generator{
				ChartsDir: cfg.ChartsDir,
				OutputDir: cfg.OutputDir,
				Emitter:   emitter,
				Clean:     cfg.ShouldClean() && !noClean,
			}

			if err := workflows.RunGenerate(cmd.Context(), g); err != nil {
				return err
			}

			log.Info("Type generation complete", "output", cfg.OutputDir, "language", cfg.Language, "workloadTypes", len(g.WorkloadTypes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory holding one chart per subdirectory")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory the generated files are written to")
	cmd.Flags().StringVar(&language, "language", "", "Output language. One of: (go, typescript)")
	cmd.Flags().StringVar(&pkg, "package", "", "Package name of generated Go files")
	cmd.Flags().BoolVar(&noClean, "no-clean", false, "Keep existing files in the output directory")

	return cmd
}
