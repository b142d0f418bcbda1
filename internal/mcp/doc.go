// Package mcp exposes the capability catalog and code generation as Model
// Context Protocol tools served over stdio.
package mcp
