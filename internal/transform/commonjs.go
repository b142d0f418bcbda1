package transform

import (
	"regexp"
	"strings"
)

var (
	namedImportPattern = regexp.MustCompile(`import\s+\{\s*([^}]+?)\s*\}\s+from\s+['"]([^'"]+)['"][ \t]*;?`)
	exportFuncPattern  = regexp.MustCompile(`(?m)^export\s+(async\s+)?function\b`)
	topLevelFuncName   = regexp.MustCompile(`(?m)^(?:async\s+)?function(?:\s*\*\s*|\s+)([A-Za-z_$][A-Za-z0-9_$]*)`)
	exportsBlock       = regexp.MustCompile(`\nmodule\.exports = \{\n(?:  [A-Za-z_$][A-Za-z0-9_$]*,\n)*\};\n$`)
	bindingSeparator   = regexp.MustCompile(`\s+as\s+`)
)

// ToCommonJS converts src from ESM to CommonJS:
//
//	import { a, b as c } from 'm';   ->  const { a, b: c } = require('m');
//	export async function f() {}     ->  async function f() {}
//
// and appends a module.exports block listing every top-level function in
// declaration order. A block appended by an earlier call is replaced, so
// ToCommonJS(ToCommonJS(s)) == ToCommonJS(s).
func ToCommonJS(src string) string {
	code := exportsBlock.ReplaceAllString(src, "")

	code = namedImportPattern.ReplaceAllStringFunc(code, func(stmt string) string {
		m := namedImportPattern.FindStringSubmatch(stmt)
		return "const { " + strings.Join(requireBindings(m[1]), ", ") + " } = require('" + m[2] + "');"
	})

	code = exportFuncPattern.ReplaceAllString(code, "${1}function")

	names := FunctionNames(code)
	if len(names) == 0 {
		return code
	}

	var b strings.Builder
	b.WriteString(code)
	b.WriteString("\nmodule.exports = {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(",\n")
	}
	b.WriteString("};\n")
	return b.String()
}

// FunctionNames returns the names of functions declared at the start of a
// line, in source order.
func FunctionNames(src string) []string {
	var names []string
	for _, m := range topLevelFuncName.FindAllStringSubmatch(src, -1) {
		names = append(names, m[1])
	}
	return names
}

// requireBindings turns an import clause body ("a, b as c,") into
// destructuring bindings ("a", "b: c").
func requireBindings(clause string) []string {
	var out []string
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if pair := bindingSeparator.Split(part, 2); len(pair) == 2 {
			out = append(out, pair[0]+": "+pair[1])
			continue
		}
		out = append(out, part)
	}
	return out
}
