// Package transform rewrites generated ES module source into CommonJS.
//
// The rewrite is structural, not a parser: it understands named imports,
// top-level exported function declarations and nothing else. That is exactly
// the grammar the capability catalog produces, and everything outside it is
// passed through untouched.
package transform
