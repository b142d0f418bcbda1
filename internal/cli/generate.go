package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rn-labs/rninject/internal/generate"
)

var (
	generateLanguage     string
	generateModuleFormat string
	generateOutput       string
	generateJSON         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <capability>...",
	Short: "Print generated code without touching the project",
	Long: `Generate the selected functions and write the code to stdout (or --output).
The npm packages the code needs are printed to stderr.

Run "list" to see the available capabilities.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "Output language (typescript, javascript)")
	generateCmd.Flags().StringVarP(&generateModuleFormat, "module-format", "m", "", "Module format for javascript (esm, cjs)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write code to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	lang, format, err := dialect(generateLanguage, generateModuleFormat)
	if err != nil {
		return err
	}
	gen, err := newGenerator("")
	if err != nil {
		return err
	}

	result, err := gen.Generate(cmd.Context(), generate.Request{
		Selection:    args,
		Language:     lang,
		ModuleFormat: format,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		data, err := json.MarshalIndent(struct {
			ID           string   `json:"id"`
			Code         string   `json:"code"`
			Packages     []string `json:"packages"`
			Language     string   `json:"language"`
			ModuleFormat string   `json:"module_format"`
		}{result.ID, result.Code, result.InstallSpecs(), string(result.Language), string(result.ModuleFormat)}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(result.Code), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", generateOutput, err)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), result.Code)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Packages: %s\n", strings.Join(result.InstallSpecs(), " "))
	return nil
}
