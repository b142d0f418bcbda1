package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:templates
var templateFS embed.FS

// OutputDirName is the directory created under the injection path.
const OutputDirName = "requestNetwork"

// Output describes generated code to materialize.
type Output struct {
	Root           string // injection path, e.g. "src"
	Code           string
	Extension      string // "ts" or "js"
	Tool           string // CLI name stamped into generated companions
	CatalogVersion string
}

// Result holds the outcome of a write.
type Result struct {
	OutputDir string
	Files     []string // paths relative to OutputDir, in write order
}

// typed reports whether the output gets the TypeScript companion modules.
func (o Output) typed() bool {
	return o.Extension == "ts"
}

// Write creates <Root>/requestNetwork and writes index.<ext> into it. Typed
// output also gets types/index.ts rendered from the embedded templates.
// Existing files are overwritten so re-injection updates a project in place.
func Write(out Output) (*Result, error) {
	if strings.TrimSpace(out.Root) == "" {
		return nil, fmt.Errorf("injection path must not be empty")
	}
	if out.Extension != "ts" && out.Extension != "js" {
		return nil, fmt.Errorf("unsupported file extension %q", out.Extension)
	}

	outputDir := filepath.Join(out.Root, OutputDirName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	indexName := "index." + out.Extension
	if err := os.WriteFile(filepath.Join(outputDir, indexName), []byte(out.Code), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", indexName, err)
	}
	result.Files = append(result.Files, indexName)

	if !out.typed() {
		return result, nil
	}

	files, err := renderTemplates(out)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		dest := filepath.Join(outputDir, filepath.FromSlash(f.name))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, f.data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		result.Files = append(result.Files, f.name)
	}

	return result, nil
}

type renderedFile struct {
	name string // slash-separated, relative to the output directory
	data []byte
}

// renderTemplates executes every *.tmpl file under templates/ in lexical
// order and returns them with the .tmpl suffix stripped.
func renderTemplates(out Output) ([]renderedFile, error) {
	var files []renderedFile
	err := fs.WalkDir(templateFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return nil
		}

		src, err := fs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		tmpl, err := template.New(path.Base(p)).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", p, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, out); err != nil {
			return fmt.Errorf("executing template %s: %w", p, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), ".tmpl")
		files = append(files, renderedFile{name: name, data: buf.Bytes()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
