// Package manifest handles parsing and validation of capability catalog
// documents (catalog.yaml). A catalog document declares the shared import
// specs and the capabilities that reference them; it is validated against an
// embedded JSON Schema and a small set of semantic checks (semver version,
// package version constraints) before the catalog package builds a registry
// from it.
package manifest
