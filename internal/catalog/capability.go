package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Capability is one injectable function. Values returned by a Registry must
// not be modified.
type Capability struct {
	Name           string
	Label          string
	Function       string
	Implementation string
	Doc            Doc
	ImportKeys     []string
	Packages       []Package
	Default        bool
}

// Doc is a capability's JSDoc block in normalized form.
type Doc struct {
	Summary string // first sentence line of the block
	Text    string // the full block, from "/**" to "*/"
}

// Package is an install-time dependency.
type Package struct {
	Name    string
	Version string // optional semver constraint
}

// InstallSpec returns the argument handed to a package manager,
// "name" or "name@constraint".
func (p Package) InstallSpec() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// ImportName is one binding of an import statement.
type ImportName struct {
	Name  string
	Alias string
}

// ImportSpec is a shared import statement identified by a symbolic key.
type ImportSpec struct {
	Key    string
	Module string
	Names  []ImportName
}

// Render returns the ESM import statement for the spec, e.g.
// import { payRequest as processPayment } from '@requestnetwork/payment-processor';
func (s ImportSpec) Render() string {
	bindings := make([]string, 0, len(s.Names))
	for _, n := range s.Names {
		if n.Alias != "" && n.Alias != n.Name {
			bindings = append(bindings, n.Name+" as "+n.Alias)
			continue
		}
		bindings = append(bindings, n.Name)
	}
	return fmt.Sprintf("import { %s } from '%s';", strings.Join(bindings, ", "), s.Module)
}

var exportedFunctionPattern = regexp.MustCompile(`(?m)^export\s+(?:async\s+)?function\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`)

// ParseDoc normalizes a stored JSDoc block. The block must start with "/**"
// and end with "*/"; surrounding blank lines and trailing spaces are dropped.
func ParseDoc(raw string) (Doc, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	text := strings.Join(lines, "\n")

	if !strings.HasPrefix(text, "/**") || !strings.HasSuffix(text, "*/") {
		return Doc{}, fmt.Errorf("documentation must be a single /** ... */ block")
	}

	return Doc{Summary: docSummary(lines), Text: text}, nil
}

// docSummary returns the first descriptive line of a JSDoc block.
func docSummary(lines []string) string {
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "/**")
		l = strings.TrimSuffix(l, "*/")
		l = strings.TrimSpace(strings.TrimPrefix(l, "*"))
		if l == "" || strings.HasPrefix(l, "@") {
			continue
		}
		return l
	}
	return ""
}

// normalizeImplementation trims trailing whitespace and checks that the text
// declares exactly one exported function named fn.
func normalizeImplementation(raw, fn string) (string, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	text := strings.Join(lines, "\n")

	matches := exportedFunctionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) != 1 {
		return "", fmt.Errorf("implementation must export exactly one top-level function, found %d", len(matches))
	}
	if matches[0][1] != fn {
		return "", fmt.Errorf("implementation exports function %q, catalog declares %q", matches[0][1], fn)
	}
	return text, nil
}
