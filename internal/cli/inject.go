package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rn-labs/rninject/internal/branding"
	"github.com/rn-labs/rninject/internal/config"
	rnerrors "github.com/rn-labs/rninject/internal/errors"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/logging"
	"github.com/rn-labs/rninject/internal/pkgmgr"
	"github.com/rn-labs/rninject/internal/prompt"
	"github.com/rn-labs/rninject/internal/runtime"
	"github.com/rn-labs/rninject/internal/scaffold"
)

var (
	injectDir            string
	injectPath           string
	injectLanguage       string
	injectModuleFormat   string
	injectPackageManager string
	injectNoInstall      bool
	injectYes            bool
)

var injectCmd = &cobra.Command{
	Use:   "inject [capability...]",
	Short: "Inject Request Network functions into the current project",
	Long: `Generate the selected functions into <path>/requestNetwork/index.ts (or
index.js) and install the packages they need.

Without arguments on a terminal, inject asks which functions to generate,
the language, the module format and the injection path. With --yes, or when
stdin is not a terminal, the default selection and configured values are used.`,
	Example: `  rninject inject
  rninject inject createRequest payRequest --language javascript --module-format cjs
  rninject inject --yes --path lib --no-install`,
	RunE: runInject,
}

func init() {
	f := injectCmd.Flags()
	f.StringVar(&injectDir, "dir", "", "Project directory containing package.json (default: current directory)")
	f.StringVarP(&injectPath, "path", "p", "", "Injection path relative to the project (default from config: src)")
	f.StringVarP(&injectLanguage, "language", "l", "", "Output language (typescript, javascript)")
	f.StringVarP(&injectModuleFormat, "module-format", "m", "", "Module format for javascript (esm, cjs)")
	f.StringVar(&injectPackageManager, "package-manager", "", "Package manager (bun, pnpm, yarn, npm); detected from the lockfile by default")
	f.BoolVar(&injectNoInstall, "no-install", false, "Skip installing packages")
	f.BoolVarP(&injectYes, "yes", "y", false, "Do not prompt; use defaults for anything not given")
	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	out := cmd.OutOrStdout()

	projectDir, err := resolveProjectDir(injectDir)
	if err != nil {
		return err
	}
	if !pkgmgr.IsProject(projectDir) {
		return fmt.Errorf("no package.json found in %s; run %s inside a JavaScript or TypeScript project", projectDir, branding.CLIName())
	}

	manager, err := resolveManager(projectDir, injectPackageManager)
	if err != nil {
		return err
	}

	gen, err := newGenerator(projectDir)
	if err != nil {
		return err
	}

	req := generate.Request{ID: generate.NewID(), Selection: args}
	path := injectPath
	if path == "" {
		path = config.Get(config.KeyInjectionPath)
	}

	if len(args) == 0 && !injectYes && prompt.IsTerminal(os.Stdin) {
		lang, format, _ := dialect(injectLanguage, injectModuleFormat)
		answers, err := prompt.Run(gen.Registry(), prompt.Defaults{
			InjectionPath:  path,
			Language:       lang,
			ModuleFormat:   format,
			PackageManager: manager,
		}, cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		req.Selection = answers.Selection
		req.Language = answers.Language
		req.ModuleFormat = answers.ModuleFormat
		path = answers.InjectionPath
		manager = answers.PackageManager
	} else {
		if len(req.Selection) == 0 {
			req.Selection = gen.Registry().Defaults()
		}
		if req.Language, req.ModuleFormat, err = dialect(injectLanguage, injectModuleFormat); err != nil {
			return err
		}
		if manager == "" {
			manager = pkgmgr.NPM
		}
	}

	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("injection path must not be empty")
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		if rnerrors.Is(err, rnerrors.ErrTypeErasureFailed) && config.Get(config.KeyEraser) == runtime.EraserNode {
			return fmt.Errorf("%w\nhint: install remove-types in the project (%s %s) or run with --eraser esbuild",
				err, manager, strings.Join(manager.InstallArgs([]string{"-D", "remove-types"}), " "))
		}
		return err
	}

	written, err := scaffold.Write(scaffold.Output{
		Root:           filepath.Join(projectDir, path),
		Code:           result.Code,
		Extension:      result.Language.Extension(),
		Tool:           branding.CLIName(),
		CatalogVersion: gen.Registry().Version(),
	})
	if err != nil {
		return fmt.Errorf("writing generated code: %w", err)
	}
	logger.Info("code injected", "request_id", result.ID, "dir", written.OutputDir, "files", written.Files)

	fmt.Fprintf(out, "\nInjected %s into %s\n", strings.Join(result.Capabilities, ", "), written.OutputDir)
	for _, f := range written.Files {
		fmt.Fprintf(out, "  %s\n", filepath.Join(written.OutputDir, filepath.FromSlash(f)))
	}

	specs := result.InstallSpecs()
	if injectNoInstall {
		fmt.Fprintf(out, "\nSkipped package installation. Install with:\n  %s %s\n",
			manager, strings.Join(manager.InstallArgs(specs), " "))
		return nil
	}

	fmt.Fprintf(out, "\nInstalling %s with %s...\n", strings.Join(specs, " "), manager)
	installer := &pkgmgr.Installer{Dir: projectDir, Stdout: out, Stderr: cmd.ErrOrStderr()}
	if err := installer.Install(ctx, manager, specs); err != nil {
		return fmt.Errorf("installing packages: %w", err)
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

// resolveProjectDir returns dir as an absolute path, defaulting to the
// working directory.
func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

// resolveManager picks the package manager: flag, then config, then
// lockfile detection. An empty result means it is still undecided.
func resolveManager(projectDir, flag string) (pkgmgr.Manager, error) {
	name := flag
	if name == "" {
		name = config.Get(config.KeyPackageManager)
	}
	if name != "" {
		return pkgmgr.Parse(name)
	}
	if m, ok := pkgmgr.Detect(projectDir); ok {
		return m, nil
	}
	return "", nil
}
