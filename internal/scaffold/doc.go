// Package scaffold assembles generated source from catalog capabilities and
// writes it into a project. Assemble is pure; Write materializes the
// requestNetwork directory, including the typed companion module for
// TypeScript output, from embedded templates.
package scaffold
