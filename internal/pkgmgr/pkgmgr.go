package pkgmgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Manager identifies a package manager by its executable name.
type Manager string

const (
	Bun  Manager = "bun"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	NPM  Manager = "npm"
)

// lockfiles is checked in order; the first hit wins.
var lockfiles = []struct {
	file    string
	manager Manager
}{
	{"bun.lockb", Bun},
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// Supported returns every manager in detection order.
func Supported() []Manager {
	out := make([]Manager, 0, len(lockfiles))
	for _, l := range lockfiles {
		out = append(out, l.manager)
	}
	return out
}

// Parse validates a manager name.
func Parse(s string) (Manager, error) {
	name := Manager(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Supported() {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported package manager %q: supported are bun, pnpm, yarn and npm", s)
}

// Detect returns the manager whose lockfile is present in dir.
func Detect(dir string) (Manager, bool) {
	for _, l := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, l.file)); err == nil {
			return l.manager, true
		}
	}
	return "", false
}

// IsProject reports whether dir contains a package.json.
func IsProject(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "package.json"))
	return err == nil && !info.IsDir()
}

// InstallArgs returns the arguments (without the executable) that add pkgs.
func (m Manager) InstallArgs(pkgs []string) []string {
	verb := "add"
	if m == NPM {
		verb = "install"
	}
	return append([]string{verb}, pkgs...)
}

// Installer runs package installs in a project directory.
type Installer struct {
	Dir string

	// Stdout and Stderr receive the manager's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Install adds pkgs with m. It is a no-op when pkgs is empty.
func (i *Installer) Install(ctx context.Context, m Manager, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}

	bin, err := exec.LookPath(string(m))
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", m, err)
	}

	args := m.InstallArgs(pkgs)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = i.Dir
	cmd.Stdout = writerOrDiscard(i.Stdout)
	cmd.Stderr = writerOrDiscard(i.Stderr)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", m, strings.Join(args, " "), err)
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
