package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/rn-labs/rninject/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyInjectionPath  = "injection_path"
	KeyLanguage       = "language"
	KeyModuleFormat   = "module_format"
	KeyPackageManager = "package_manager"
	KeyEraser         = "eraser"
	KeyNodeBin        = "node_bin"
	KeyCatalogDir     = "catalog_dir"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
)

var defaultValues = map[string]string{
	KeyInjectionPath:  "src",
	KeyLanguage:       "typescript",
	KeyModuleFormat:   "esm",
	KeyPackageManager: "",
	KeyEraser:         "node",
	KeyNodeBin:        "node",
	KeyCatalogDir:     "",
	KeyLogLevel:       "info",
	KeyLogFormat:      "text",
}

// Settings is a typed snapshot of the effective configuration.
type Settings struct {
	InjectionPath  string
	Language       string
	ModuleFormat   string
	PackageManager string
	Eraser         string
	NodeBin        string
	CatalogDir     string
	LogLevel       string
	LogFormat      string
}

// Dir returns the path to the config directory (~/.rninject/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.rninject/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns every known configuration key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known configuration key.
func IsKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the effective settings.
func Current() Settings {
	return Settings{
		InjectionPath:  Get(KeyInjectionPath),
		Language:       Get(KeyLanguage),
		ModuleFormat:   Get(KeyModuleFormat),
		PackageManager: Get(KeyPackageManager),
		Eraser:         Get(KeyEraser),
		NodeBin:        Get(KeyNodeBin),
		CatalogDir:     Get(KeyCatalogDir),
		LogLevel:       Get(KeyLogLevel),
		LogFormat:      Get(KeyLogFormat),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown config key %q: valid keys are %s", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
