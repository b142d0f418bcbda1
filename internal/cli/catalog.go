package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rn-labs/rninject/internal/catalog"
	"github.com/rn-labs/rninject/internal/config"
	"github.com/rn-labs/rninject/internal/manifest"
)

func init() {
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and export the capability catalog",
	Long: `The catalog is a catalog.yaml file describing each capability (its
function, documentation, imports and packages) plus one implementation and
one JSDoc file per capability.

A built-in catalog is compiled into the binary. Export it, edit it, and point
catalog_dir (or --catalog-dir) at the result to generate from your own copy.`,
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which catalog is in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		source := "built-in"
		if dir := config.Get(config.KeyCatalogDir); dir != "" {
			source = dir
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Source:       %s\n", source)
		fmt.Fprintf(out, "Version:      %s\n", reg.Version())
		fmt.Fprintf(out, "Capabilities: %d\n", len(reg.Names()))
		fmt.Fprintf(out, "Import keys:  %d\n", len(reg.ImportKeys()))
		fmt.Fprintf(out, "Packages:     %d\n", len(reg.Packages()))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a catalog directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		out := cmd.OutOrStdout()

		result, err := manifest.ValidateFile(filepath.Join(dir, manifest.CatalogFile))
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			return fmt.Errorf("%s: %d schema issue(s)", dir, len(result.Issues))
		}

		reg, err := catalog.LoadDir(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: valid catalog %s with %d capabilities\n", dir, reg.Version(), len(reg.Names()))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the built-in catalog to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := catalog.Export(args[0])
		if err != nil {
			return fmt.Errorf("exporting catalog: %w", err)
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", filepath.Join(args[0], filepath.FromSlash(f)))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files. Use it with: config set %s %s\n", len(files), config.KeyCatalogDir, args[0])
		return nil
	},
}
