package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/internal/config"
	"github.com/vexxhost/hyper-platform/internal/hyper"
)

func NewRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "hyper",
		Short: "Hyper platform CLI",
		Long: `Hyper works with the workload charts and deployment catalogs of the platform.
It generates types from chart values schemas, validates workload values files
and inspects ApplicationSet catalogs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(hyper.WithConfig(ctx, cfg))

			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				fmt.Fprintf(os.Stderr, "Error showing help: %v\n", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Path to configuration file")

	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewClassifyCommand())
	rootCmd.AddCommand(NewPatchCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewChartsCommand())

	return rootCmd
}
