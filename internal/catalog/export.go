package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Export writes the embedded catalog (catalog.yaml plus capability files)
// into dst so it can be edited and loaded back with LoadDir. dst must not
// exist or be empty. It returns the written paths relative to dst.
func Export(dst string) ([]string, error) {
	if entries, err := os.ReadDir(dst); err == nil && len(entries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", dst)
	}

	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog: %w", err)
	}
	return copyFS(sub, dst)
}

// copyFS copies every regular file in fsys to dst, preserving the layout.
func copyFS(fsys fs.FS, dst string) ([]string, error) {
	var written []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
