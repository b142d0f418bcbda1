package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/rn-labs/rninject/internal/catalog"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/pkgmgr"
)

func defaultRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestRun_AcceptDefaults(t *testing.T) {
	reg := defaultRegistry(t)

	// Enter for capabilities, language and path; manager is already known.
	input := "\n\n\n"
	var output bytes.Buffer

	answers, err := Run(reg, Defaults{
		InjectionPath:  "src",
		Language:       generate.LanguageTypeScript,
		PackageManager: pkgmgr.Yarn,
	}, strings.NewReader(input), &output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(answers.Selection, ","); got != "prepareRequest,createRequest,payRequest" {
		t.Errorf("Selection = %s", got)
	}
	if answers.Language != generate.LanguageTypeScript {
		t.Errorf("Language = %q", answers.Language)
	}
	if answers.ModuleFormat != generate.ModuleESM {
		t.Errorf("ModuleFormat = %q", answers.ModuleFormat)
	}
	if answers.InjectionPath != "src" {
		t.Errorf("InjectionPath = %q", answers.InjectionPath)
	}
	if answers.PackageManager != pkgmgr.Yarn {
		t.Errorf("PackageManager = %q", answers.PackageManager)
	}
	if strings.Contains(output.String(), "module format") {
		t.Error("module format should only be asked for javascript")
	}
	if !strings.Contains(output.String(), "[x] 1) prepareRequest") {
		t.Errorf("defaults not marked:\n%s", output.String())
	}
}

func TestRun_JavaScriptCommonJS(t *testing.T) {
	reg := defaultRegistry(t)

	// Capabilities 5 and 1, JavaScript, CommonJS, custom path, pnpm.
	input := "5, 1\n2\n2\nlib/client\n2\n"
	var output bytes.Buffer

	answers, err := Run(reg, Defaults{InjectionPath: "src"}, strings.NewReader(input), &output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(answers.Selection, ","); got != "getRequestByID,prepareRequest" {
		t.Errorf("Selection = %s", got)
	}
	if answers.Language != generate.LanguageJavaScript || answers.ModuleFormat != generate.ModuleCJS {
		t.Errorf("dialect = %s/%s", answers.Language, answers.ModuleFormat)
	}
	if answers.InjectionPath != "lib/client" {
		t.Errorf("InjectionPath = %q", answers.InjectionPath)
	}
	if answers.PackageManager != pkgmgr.PNPM {
		t.Errorf("PackageManager = %q", answers.PackageManager)
	}
}

func TestRun_EmptyInjectionPath(t *testing.T) {
	reg := defaultRegistry(t)

	_, err := Run(reg, Defaults{PackageManager: pkgmgr.NPM}, strings.NewReader("all\n1\n\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for empty injection path")
	}
	if !strings.Contains(err.Error(), "injection path") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_InvalidSelection(t *testing.T) {
	reg := defaultRegistry(t)

	_, err := Run(reg, Defaults{}, strings.NewReader("99\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for invalid selection")
	}
	if !strings.Contains(err.Error(), "invalid selection") {
		t.Errorf("expected 'invalid selection' error, got: %v", err)
	}
}

func TestSelectManyFromList(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}
	tests := []struct {
		name  string
		input string
		want  []int
		err   bool
	}{
		{"defaults", "\n", []int{0, 2}, false},
		{"commas", "3,1\n", []int{2, 0}, false},
		{"spaces and repeats", "2 2 1\n", []int{1, 0}, false},
		{"all", "ALL\n", []int{0, 1, 2}, false},
		{"out of range", "4\n", nil, true},
		{"not a number", "beta\n", nil, true},
		{"eof without newline", "2", []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectManyFromList(bufio.NewReader(strings.NewReader(tt.input)), &bytes.Buffer{}, "Pick:", items, []int{0, 2})
			if tt.err {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSelectManyFromList_NoDefaults(t *testing.T) {
	_, err := selectManyFromList(bufio.NewReader(strings.NewReader("\n")), &bytes.Buffer{}, "Pick:", []string{"a"}, nil)
	if err == nil || !strings.Contains(err.Error(), "at least one") {
		t.Errorf("expected 'at least one' error, got %v", err)
	}
}

func TestSelectFromListDefault_ValidInput(t *testing.T) {
	input := "2\n"
	var output bytes.Buffer

	items := []string{"alpha", "beta", "gamma"}
	idx, err := selectFromListDefault(
		bufio.NewReader(strings.NewReader(input)),
		&output,
		"Pick one:",
		items,
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1 (beta), got %d", idx)
	}
	if !strings.Contains(output.String(), "*1) alpha") {
		t.Errorf("default not marked:\n%s", output.String())
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\n  app/src  \n"))
	var w bytes.Buffer

	got, err := readLine(r, &w, "Path", "src")
	if err != nil || got != "src" {
		t.Errorf("readLine() = (%q, %v), want default", got, err)
	}
	got, err = readLine(r, &w, "Path", "src")
	if err != nil || got != "app/src" {
		t.Errorf("readLine() = (%q, %v), want app/src", got, err)
	}
	if _, err := readLine(r, &w, "Path", "src"); err == nil {
		t.Error("expected error at end of input")
	}
}
