package manifest

// CatalogManifest is the top-level catalog.yaml document.
type CatalogManifest struct {
	Version      string            `yaml:"version" json:"version"`
	Description  string            `yaml:"description,omitempty" json:"description,omitempty"`
	Imports      []ImportEntry     `yaml:"imports" json:"imports"`
	Capabilities []CapabilityEntry `yaml:"capabilities" json:"capabilities"`
}

// ImportEntry declares one shared import statement under a symbolic key.
type ImportEntry struct {
	Key    string       `yaml:"key" json:"key"`
	Module string       `yaml:"module" json:"module"`
	Names  []ImportName `yaml:"names" json:"names"`
}

// ImportName is a single binding in an import statement. Alias is the local
// name when the binding is renamed on import.
type ImportName struct {
	Name  string `yaml:"name" json:"name"`
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// CapabilityEntry declares one capability. Implementation and Documentation
// are paths relative to the catalog root.
type CapabilityEntry struct {
	Name           string         `yaml:"name" json:"name"`
	Label          string         `yaml:"label" json:"label"`
	Function       string         `yaml:"function" json:"function"`
	Implementation string         `yaml:"implementation" json:"implementation"`
	Documentation  string         `yaml:"documentation" json:"documentation"`
	Imports        []string       `yaml:"imports" json:"imports"`
	Packages       []PackageEntry `yaml:"packages" json:"packages"`
	Default        bool           `yaml:"default,omitempty" json:"default,omitempty"`
}

// PackageEntry is an install-time dependency. Version, when set, is a semver
// constraint such as "^0.50.0".
type PackageEntry struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// CatalogFile is the conventional catalog document name at a catalog root.
const CatalogFile = "catalog.yaml"
