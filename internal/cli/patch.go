package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vexxhost/hyper-platform/pkg/catalog"
	"sigs.k8s.io/yaml"
)

// NewPatchCommand creates and returns the patch command
func NewPatchCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "patch <patch-file> [target]",
		Short: "Apply a catalog patch file",
		Long: `Apply the JSON Patch operations of a catalog patch file to a JSON or YAML
document. The target defaults to the path named in the patch file. The result
is printed unless --write is set.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read patch file: %w", err)
			}

			var patch catalog.PatchFile
			if err := yaml.UnmarshalStrict(data, &patch); err != nil {
				return fmt.Errorf("failed to decode patch file: %w", err)
			}

			target := patch.Path
			if len(args) == 2 {
				target = args[1]
				patch.Path = target
			}
			if target == "" {
				return fmt.Errorf("patch file %s does not name a target", args[0])
			}

			doc, err := os.ReadFile(target)
			if err != nil {
				return fmt.Errorf("failed to read target: %w", err)
			}

			patched, err := patch.Apply(doc)
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(patched)
				return err
			}

			info, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("failed to stat target: %w", err)
			}
			if err := os.WriteFile(target, patched, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write target: %w", err)
			}

			log.Info("Patched file", "path", target, "patches", len(patch.Patches))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result to the target file")

	return cmd
}
