package generate

import (
	"fmt"
	"strings"

	"github.com/rn-labs/rninject/internal/catalog"
	rnerrors "github.com/rn-labs/rninject/internal/errors"
)

// Language is the dialect of the generated source.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// ModuleFormat is the module system of JavaScript output.
type ModuleFormat string

const (
	ModuleESM ModuleFormat = "esm"
	ModuleCJS ModuleFormat = "cjs"
)

// ParseLanguage accepts "typescript"/"ts" and "javascript"/"js", case
// insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typescript", "ts":
		return LanguageTypeScript, nil
	case "javascript", "js":
		return LanguageJavaScript, nil
	default:
		return "", rnerrors.NewInvalidRequest(rnerrors.StageValidate,
			fmt.Sprintf("unsupported language %q: want typescript or javascript", s))
	}
}

// ParseModuleFormat accepts "esm" and "cjs"/"commonjs", case insensitively.
func ParseModuleFormat(s string) (ModuleFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "esm":
		return ModuleESM, nil
	case "cjs", "commonjs":
		return ModuleCJS, nil
	default:
		return "", rnerrors.NewInvalidRequest(rnerrors.StageValidate,
			fmt.Sprintf("unsupported module format %q: want esm or cjs", s))
	}
}

// Extension returns the file extension without the dot.
func (l Language) Extension() string {
	if l == LanguageJavaScript {
		return "js"
	}
	return "ts"
}

// Request is one generation job. An empty Language means TypeScript and an
// empty ModuleFormat means ESM. ModuleFormat is ignored for TypeScript.
type Request struct {
	ID           string // assigned by Generate when empty
	Selection    []string
	Language     Language
	ModuleFormat ModuleFormat
}

// Result is the output of a successful generation.
type Result struct {
	ID           string
	Code         string
	Packages     []catalog.Package // first-seen order
	Imports      []string          // resolved import keys, first-seen order
	Capabilities []string          // effective selection after de-duplication
	Language     Language
	ModuleFormat ModuleFormat
}

// PackageNames returns the bare package names of the result.
func (r *Result) PackageNames() []string {
	out := make([]string, 0, len(r.Packages))
	for _, p := range r.Packages {
		out = append(out, p.Name)
	}
	return out
}

// InstallSpecs returns the arguments to hand a package manager.
func (r *Result) InstallSpecs() []string {
	out := make([]string, 0, len(r.Packages))
	for _, p := range r.Packages {
		out = append(out, p.InstallSpec())
	}
	return out
}

// normalize fills defaults and rejects unknown dialects. It returns a copy.
func (req Request) normalize() (Request, error) {
	if req.Language == "" {
		req.Language = LanguageTypeScript
	}
	if req.ModuleFormat == "" {
		req.ModuleFormat = ModuleESM
	}

	lang, err := ParseLanguage(string(req.Language))
	if err != nil {
		return req, err
	}
	format, err := ParseModuleFormat(string(req.ModuleFormat))
	if err != nil {
		return req, err
	}
	req.Language = lang
	req.ModuleFormat = format
	if lang == LanguageTypeScript {
		req.ModuleFormat = ModuleESM
	}
	return req, nil
}
