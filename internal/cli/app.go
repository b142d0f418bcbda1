package cli

import (
	"fmt"
	"os"

	"github.com/rn-labs/rninject/internal/catalog"
	"github.com/rn-labs/rninject/internal/config"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/runtime"
)

// loadRegistry returns the configured catalog: the directory named by
// catalog_dir, or the built-in one.
func loadRegistry() (*catalog.Registry, error) {
	if dir := config.Get(config.KeyCatalogDir); dir != "" {
		reg, err := catalog.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("loading catalog from %s: %w", dir, err)
		}
		return reg, nil
	}
	return catalog.Default()
}

// newGenerator builds a Generator over the configured catalog. The eraser
// resolves remove-types from projectDir.
func newGenerator(projectDir string, opts ...generate.Option) (*generate.Generator, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	if projectDir == "" {
		if projectDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	eraser := runtime.DispatchEraser(config.Get(config.KeyEraser), runtime.Options{
		NodeBin: config.Get(config.KeyNodeBin),
		Dir:     projectDir,
	})
	return generate.New(reg, eraser, opts...), nil
}

// dialect resolves language and module format from flag values, falling back
// to configuration.
func dialect(langFlag, formatFlag string) (generate.Language, generate.ModuleFormat, error) {
	if langFlag == "" {
		langFlag = config.Get(config.KeyLanguage)
	}
	if formatFlag == "" {
		formatFlag = config.Get(config.KeyModuleFormat)
	}
	lang, err := generate.ParseLanguage(langFlag)
	if err != nil {
		return "", "", err
	}
	format, err := generate.ParseModuleFormat(formatFlag)
	if err != nil {
		return "", "", err
	}
	return lang, format, nil
}
