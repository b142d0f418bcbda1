package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	rnerrors "github.com/rn-labs/rninject/internal/errors"
	"github.com/rn-labs/rninject/internal/manifest"
)

//go:embed all:data
var embedded embed.FS

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the embedded catalog. It is loaded
// once per process.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			defaultErr = fmt.Errorf("opening embedded catalog: %w", err)
			return
		}
		defaultRegistry, defaultErr = Load(sub)
	})
	return defaultRegistry, defaultErr
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening catalog directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load validates catalog.yaml at the root of fsys, reads the implementation
// and documentation files it references, and builds a Registry.
func Load(fsys fs.FS) (*Registry, error) {
	result, err := manifest.ValidateFS(fsys, manifest.CatalogFile)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, invalidCatalog(result.Issues)
	}

	m, err := manifest.ParseFS(fsys, manifest.CatalogFile)
	if err != nil {
		return nil, err
	}
	if issues := manifest.Check(m); len(issues) > 0 {
		return nil, invalidCatalog(issues)
	}

	imports := make([]ImportSpec, 0, len(m.Imports))
	for _, entry := range m.Imports {
		spec := ImportSpec{Key: entry.Key, Module: entry.Module}
		for _, n := range entry.Names {
			spec.Names = append(spec.Names, ImportName{Name: n.Name, Alias: n.Alias})
		}
		imports = append(imports, spec)
	}

	caps := make([]Capability, 0, len(m.Capabilities))
	for _, entry := range m.Capabilities {
		impl, err := readCatalogFile(fsys, entry.Implementation)
		if err != nil {
			return nil, fmt.Errorf("capability %q: %w", entry.Name, err)
		}
		rawDoc, err := readCatalogFile(fsys, entry.Documentation)
		if err != nil {
			return nil, fmt.Errorf("capability %q: %w", entry.Name, err)
		}
		doc, err := ParseDoc(rawDoc)
		if err != nil {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("capability %q: %v", entry.Name, err))
		}

		c := Capability{
			Name:           entry.Name,
			Label:          entry.Label,
			Function:       entry.Function,
			Implementation: impl,
			Doc:            doc,
			ImportKeys:     entry.Imports,
			Default:        entry.Default,
		}
		for _, p := range entry.Packages {
			c.Packages = append(c.Packages, Package{Name: p.Name, Version: p.Version})
		}
		caps = append(caps, c)
	}

	return New(m.Version, caps, imports)
}

// readCatalogFile reads a file referenced from catalog.yaml. Paths are
// slash-separated and must stay inside the catalog root.
func readCatalogFile(fsys fs.FS, name string) (string, error) {
	clean := path.Clean(name)
	if !fs.ValidPath(clean) {
		return "", fmt.Errorf("invalid catalog file path %q", name)
	}
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return "", fmt.Errorf("reading catalog file %s: %w", clean, err)
	}
	return string(data), nil
}

func invalidCatalog(issues []manifest.ValidationIssue) error {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		msgs = append(msgs, issue.String())
	}
	return rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
		"invalid catalog: "+strings.Join(msgs, "; "))
}
