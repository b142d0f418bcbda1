package scaffold

import (
	"strings"
	"testing"

	"github.com/rn-labs/rninject/internal/catalog"
)

func testCap(fn string) *catalog.Capability {
	return &catalog.Capability{
		Name:           fn,
		Function:       fn,
		Doc:            catalog.Doc{Text: "/** " + fn + " */"},
		Implementation: "export function " + fn + "() {\n  return 1;\n}",
	}
}

func TestAssemble_Layout(t *testing.T) {
	got := Assemble(
		[]*catalog.Capability{testCap("a"), testCap("b")},
		[]string{"import { A } from 'a';", "import { B } from 'b';"},
	)

	want := "import { A } from 'a';\nimport { B } from 'b';\n\n" +
		"/** a */\nexport function a() {\n  return 1;\n}\n\n" +
		"/** b */\nexport function b() {\n  return 1;\n}\n"
	if got != want {
		t.Errorf("Assemble() =\n%s\nwant\n%s", got, want)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	caps := []*catalog.Capability{testCap("a"), testCap("b")}
	stmts := []string{"import { A } from 'a';"}
	if Assemble(caps, stmts) != Assemble(caps, stmts) {
		t.Error("Assemble() is not deterministic")
	}
}

func TestAssemble_PreservesOrder(t *testing.T) {
	got := Assemble([]*catalog.Capability{testCap("second"), testCap("first")}, nil)
	if strings.Index(got, "function second") > strings.Index(got, "function first") {
		t.Error("capabilities not emitted in selection order")
	}
}

func TestAssemble_DefaultCatalog(t *testing.T) {
	reg, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	var caps []*catalog.Capability
	for _, name := range []string{"prepareRequest", "payRequest"} {
		c, err := reg.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		caps = append(caps, c)
	}

	got := Assemble(caps, []string{"import { X } from 'x';"})
	if n := strings.Count(got, "/**"); n != 2 {
		t.Errorf("doc blocks = %d, want 2", n)
	}
	assertContains(t, got, "*/\nexport function prepareRequest(")
	assertContains(t, got, "*/\nexport async function payRequest(")
	if !strings.HasSuffix(got, "}\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("unexpected trailing layout: %q", got[len(got)-10:])
	}
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected content to contain %q", substr)
	}
}
