package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rn-labs/rninject/internal/catalog"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/pkgmgr"
)

// Defaults pre-fill answers the user can accept with an empty line.
type Defaults struct {
	InjectionPath string
	Language      generate.Language
	ModuleFormat  generate.ModuleFormat

	// PackageManager skips the package manager question when set.
	PackageManager pkgmgr.Manager
}

// Answers holds the selections made during an interactive session.
type Answers struct {
	Selection      []string
	Language       generate.Language
	ModuleFormat   generate.ModuleFormat
	InjectionPath  string
	PackageManager pkgmgr.Manager
}

// Run asks every question in order and returns the answers, or an error if
// input is invalid or ends early.
func Run(reg *catalog.Registry, defaults Defaults, r io.Reader, w io.Writer) (*Answers, error) {
	reader := bufio.NewReader(r)
	answers := &Answers{}

	// Step 1: Select capabilities.
	caps := reg.All()
	labels := make([]string, len(caps))
	for i, c := range caps {
		labels[i] = fmt.Sprintf("%s - %s", c.Name, c.Label)
	}
	idxs, err := selectManyFromList(reader, w, "Select the functions to inject:", labels, defaultIndexes(caps))
	if err != nil {
		return nil, err
	}
	for _, i := range idxs {
		answers.Selection = append(answers.Selection, caps[i].Name)
	}

	// Step 2: Select language.
	langs := []generate.Language{generate.LanguageTypeScript, generate.LanguageJavaScript}
	langIdx, err := selectFromListDefault(reader, w, "Select language:",
		[]string{"TypeScript", "JavaScript"}, indexOf(langs, defaults.Language))
	if err != nil {
		return nil, err
	}
	answers.Language = langs[langIdx]

	// Step 3: Module format, JavaScript only.
	answers.ModuleFormat = generate.ModuleESM
	if answers.Language == generate.LanguageJavaScript {
		formats := []generate.ModuleFormat{generate.ModuleESM, generate.ModuleCJS}
		fmtIdx, err := selectFromListDefault(reader, w, "Select module format:",
			[]string{"ES modules (import/export)", "CommonJS (require/module.exports)"},
			indexOf(formats, defaults.ModuleFormat))
		if err != nil {
			return nil, err
		}
		answers.ModuleFormat = formats[fmtIdx]
	}

	// Step 4: Injection path.
	path, err := readLine(reader, w, "Enter the injection path", defaults.InjectionPath)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("injection path must not be empty")
	}
	answers.InjectionPath = path

	// Step 5: Package manager, when it could not be detected.
	answers.PackageManager = defaults.PackageManager
	if answers.PackageManager == "" {
		managers := pkgmgr.Supported()
		names := make([]string, len(managers))
		for i, m := range managers {
			names[i] = string(m)
		}
		pmIdx, err := selectFromListDefault(reader, w, "No lockfile found. Select a package manager:",
			names, indexOf(managers, pkgmgr.NPM))
		if err != nil {
			return nil, err
		}
		answers.PackageManager = managers[pmIdx]
	}

	return answers, nil
}

// selectFromListDefault presents a numbered list and returns the selected
// index. An empty line picks def when def >= 0.
func selectFromListDefault(reader *bufio.Reader, w io.Writer, prompt string, items []string, def int) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(w, " %s%d) %s\n", marker, i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" && def >= 0 {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}

	return num - 1, nil
}

// selectManyFromList presents a numbered checklist. The reply is a list of
// numbers separated by commas or spaces, "all", or an empty line for defs.
// Indexes are returned in the order the user typed them, without repeats.
func selectManyFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, defs []int) ([]int, error) {
	isDefault := make(map[int]bool, len(defs))
	for _, d := range defs {
		isDefault[d] = true
	}

	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		box := "[ ]"
		if isDefault[i] {
			box = "[x]"
		}
		fmt.Fprintf(w, "  %s %d) %s\n", box, i+1, item)
	}
	fmt.Fprintf(w, "Enter numbers separated by commas, \"all\", or press Enter for the checked ones: ")

	line, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return nil, fmt.Errorf("reading selection: %w", err)
	}
	line = strings.TrimSpace(line)

	var out []int
	switch {
	case line == "":
		out = append(out, defs...)
	case strings.EqualFold(line, "all"):
		for i := range items {
			out = append(out, i)
		}
	default:
		seen := make(map[int]bool)
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			num, err := strconv.Atoi(f)
			if err != nil || num < 1 || num > len(items) {
				return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", f, len(items))
			}
			if !seen[num-1] {
				seen[num-1] = true
				out = append(out, num-1)
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("select at least one function")
	}
	return out, nil
}

// readLine prompts for free text. An empty reply yields def.
func readLine(reader *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "\n%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(w, "\n%s: ", prompt)
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func defaultIndexes(caps []*catalog.Capability) []int {
	var out []int
	for i, c := range caps {
		if c.Default {
			out = append(out, i)
		}
	}
	return out
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

// IsTerminal checks if the given file is a terminal (for auto-detecting interactive mode).
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
