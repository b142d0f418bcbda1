package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExport_RoundTrip(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "my-catalog")

	files, err := Export(dst)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if len(files) != 13 {
		t.Errorf("Export() wrote %d files, want 13: %v", len(files), files)
	}

	reg, err := LoadDir(dst)
	if err != nil {
		t.Fatalf("LoadDir(exported) error: %v", err)
	}
	def, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(reg.Names(), ",") != strings.Join(def.Names(), ",") {
		t.Errorf("exported catalog names = %v, want %v", reg.Names(), def.Names())
	}
	for _, name := range def.Names() {
		a, _ := def.Lookup(name)
		b, _ := reg.Lookup(name)
		if a.Implementation != b.Implementation || a.Doc != b.Doc {
			t.Errorf("%s differs after export", name)
		}
	}
}

func TestExport_RefusesNonEmptyDir(t *testing.T) {
	dst := t.TempDir()
	if err := os.WriteFile(filepath.Join(dst, "keep.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Export(dst)
	if err == nil || !strings.Contains(err.Error(), "not empty") {
		t.Errorf("Export() error = %v, want not-empty error", err)
	}
}
