package manifest

import (
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals catalog document bytes. source names the document in
// error messages.
func Parse(data []byte, source string) (*CatalogManifest, error) {
	var m CatalogManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", source, err)
	}
	return &m, nil
}

// ParseFile reads and parses a catalog document from disk.
func ParseFile(path string) (*CatalogManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// ParseFS reads and parses a catalog document from fsys.
func ParseFS(fsys fs.FS, name string) (*CatalogManifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	return Parse(data, name)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
