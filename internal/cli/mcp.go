package cli

import (
	"github.com/spf13/cobra"

	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/logging"
	"github.com/rn-labs/rninject/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generator as MCP tools over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout exposing the
list_capabilities and generate_code tools. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator("", generate.WithLogger(logging.FromContext(cmd.Context())))
		if err != nil {
			return err
		}
		return mcp.Run(gen, buildVersion)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
