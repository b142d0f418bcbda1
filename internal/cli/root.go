package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rn-labs/rninject/internal/branding"
	"github.com/rn-labs/rninject/internal/config"
	"github.com/rn-labs/rninject/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates ready-to-use Request Network client functions
(prepare, create, pay and query requests) and injects them into a JavaScript
or TypeScript project, together with the packages they need.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger := logging.New(config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat), cmd.ErrOrStderr())
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")
	flags.String("catalog-dir", "", "Load capabilities from this catalog directory instead of the built-in one")
	flags.String("eraser", "", "Type eraser for JavaScript output (node, esbuild)")

	bindFlag(config.KeyLogLevel, "log-level")
	bindFlag(config.KeyLogFormat, "log-format")
	bindFlag(config.KeyCatalogDir, "catalog-dir")
	bindFlag(config.KeyEraser, "eraser")
}

// bindFlag lets a persistent flag override the config key when it is set.
func bindFlag(key, flag string) {
	_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the command context, which stops any running eraser
// or package manager.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
