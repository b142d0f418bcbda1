package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/rn-labs/rninject/internal/config"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/pkgmgr"
)

// setupConfig isolates viper and the config file under a temp HOME.
func setupConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDialect_FallsBackToConfig(t *testing.T) {
	setupConfig(t)

	lang, format, err := dialect("", "")
	if err != nil {
		t.Fatalf("dialect() error: %v", err)
	}
	if lang != generate.LanguageTypeScript || format != generate.ModuleESM {
		t.Errorf("dialect() = %s/%s, want typescript/esm", lang, format)
	}

	lang, format, err = dialect("js", "commonjs")
	if err != nil {
		t.Fatalf("dialect(js, commonjs) error: %v", err)
	}
	if lang != generate.LanguageJavaScript || format != generate.ModuleCJS {
		t.Errorf("dialect(js, commonjs) = %s/%s", lang, format)
	}

	if _, _, err := dialect("python", ""); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestResolveManager(t *testing.T) {
	setupConfig(t)
	dir := t.TempDir()

	m, err := resolveManager(dir, "")
	if err != nil || m != "" {
		t.Errorf("resolveManager(empty project) = %q, %v; want undecided", m, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if m, _ := resolveManager(dir, ""); m != pkgmgr.Yarn {
		t.Errorf("resolveManager(yarn.lock) = %q, want yarn", m)
	}

	viper.Set(config.KeyPackageManager, "pnpm")
	if m, _ := resolveManager(dir, ""); m != pkgmgr.PNPM {
		t.Errorf("config should win over detection, got %q", m)
	}
	if m, _ := resolveManager(dir, "bun"); m != pkgmgr.Bun {
		t.Errorf("flag should win over config, got %q", m)
	}
	if _, err := resolveManager(dir, "pip"); err == nil {
		t.Error("expected error for unknown package manager")
	}
}

func TestResolveProjectDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := resolveProjectDir("")
	if err != nil || got != wd {
		t.Errorf("resolveProjectDir(\"\") = %q, %v; want %q", got, err, wd)
	}
	got, err = resolveProjectDir("sub")
	if err != nil || got != filepath.Join(wd, "sub") {
		t.Errorf("resolveProjectDir(sub) = %q, %v", got, err)
	}
}

func TestLoadRegistry_CatalogDir(t *testing.T) {
	setupConfig(t)
	viper.Set(config.KeyCatalogDir, filepath.Join(t.TempDir(), "missing"))

	if _, err := loadRegistry(); err == nil || !strings.Contains(err.Error(), "loading catalog from") {
		t.Errorf("loadRegistry() error = %v, want catalog_dir failure", err)
	}
}

func TestListCommand_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { listJSON = false })

	stdout, _, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list --json error: %v", err)
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if len(entries) != 6 {
		t.Fatalf("got %d entries, want 6", len(entries))
	}
	if entries[0].Name != "prepareRequest" || !entries[0].Default {
		t.Errorf("first entry = %+v", entries[0])
	}
}

func TestGenerateCommand_TypeScript(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	out := filepath.Join(t.TempDir(), "index.ts")
	t.Cleanup(func() { generateOutput = "" })

	_, stderr, err := execute(t, "generate", "payRequest", "--output", out)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	code := string(data)
	if !strings.Contains(code, "export async function payRequest(") {
		t.Errorf("generated code lacks payRequest:\n%s", code)
	}
	if !strings.HasPrefix(code, "import ") {
		t.Errorf("generated code should start with imports:\n%s", code)
	}
	if !strings.Contains(stderr, "@requestnetwork/payment-processor") {
		t.Errorf("stderr lacks packages: %q", stderr)
	}
}

func TestGenerateCommand_UnknownCapability(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, _, err := execute(t, "generate", "mintToken")
	if err == nil || !strings.Contains(err.Error(), "mintToken") {
		t.Errorf("generate mintToken error = %v", err)
	}
}

func TestCatalogExportAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := filepath.Join(t.TempDir(), "catalog")
	stdout, _, err := execute(t, "catalog", "export", dir)
	if err != nil {
		t.Fatalf("catalog export error: %v", err)
	}
	if !strings.Contains(stdout, "Exported 13 files") {
		t.Errorf("unexpected export output:\n%s", stdout)
	}

	stdout, _, err = execute(t, "catalog", "validate", dir)
	if err != nil {
		t.Fatalf("catalog validate error: %v", err)
	}
	if !strings.Contains(stdout, "valid catalog 1.0.0 with 6 capabilities") {
		t.Errorf("unexpected validate output:\n%s", stdout)
	}
}

func TestCatalogValidate_ReportsIssues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	bad := "version: \"1.0.0\"\nimports: []\ncapabilities: []\n"
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "catalog", "validate", dir)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(stdout, "/capabilities") {
		t.Errorf("issues not printed:\n%s", stdout)
	}
}

func TestInjectCommand_RequiresPackageJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { injectDir = ""; injectYes = false })

	_, _, err := execute(t, "inject", "--dir", t.TempDir(), "--yes")
	if err == nil || !strings.Contains(err.Error(), "no package.json") {
		t.Errorf("inject error = %v, want missing package.json", err)
	}
}

func TestInjectCommand_WritesFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() {
		injectDir, injectPath, injectNoInstall, injectYes = "", "", false, false
	})

	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "package.json"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "inject", "createRequest", "--dir", project, "--path", "lib", "--no-install", "--yes")
	if err != nil {
		t.Fatalf("inject error: %v", err)
	}

	for _, rel := range []string{"lib/requestNetwork/index.ts", "lib/requestNetwork/types/index.ts"} {
		if _, err := os.Stat(filepath.Join(project, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if !strings.Contains(stdout, "npm install @requestnetwork/request-client.js") {
		t.Errorf("install hint missing:\n%s", stdout)
	}
}
