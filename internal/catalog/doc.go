// Package catalog is the capability registry: an immutable, structured
// catalog of the functions rninject can inject. Each capability carries its
// TypeScript implementation, a normalized JSDoc block, the symbolic import
// keys it needs and the packages it requires at install time.
//
// The default catalog is embedded in the binary. A catalog directory on disk
// with the same layout (catalog.yaml plus the files it references) can be
// loaded instead with LoadDir.
package catalog
