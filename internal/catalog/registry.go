package catalog

import (
	"fmt"
	"sort"

	rnerrors "github.com/rn-labs/rninject/internal/errors"
)

// Registry is an immutable capability catalog. It is safe for concurrent use.
type Registry struct {
	version     string
	order       []string
	caps        map[string]*Capability
	importOrder []string
	imports     map[string]ImportSpec
}

// New builds a registry from capabilities and import specs, enforcing the
// catalog invariants:
//   - capability names and function names are unique
//   - every implementation exports exactly its declared function
//   - every import key a capability references exists in imports
//   - every capability declares at least one package
//   - a package name carries a single version constraint across capabilities
func New(version string, caps []Capability, imports []ImportSpec) (*Registry, error) {
	r := &Registry{
		version: version,
		caps:    make(map[string]*Capability, len(caps)),
		imports: make(map[string]ImportSpec, len(imports)),
	}

	for _, spec := range imports {
		if _, dup := r.imports[spec.Key]; dup {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("duplicate import key %q", spec.Key))
		}
		if len(spec.Names) == 0 {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("import key %q binds no names", spec.Key))
		}
		spec.Names = append([]ImportName(nil), spec.Names...)
		r.imports[spec.Key] = spec
		r.importOrder = append(r.importOrder, spec.Key)
	}

	functions := make(map[string]string, len(caps))
	packageVersions := make(map[string]string)

	for i := range caps {
		c := caps[i]
		if c.Name == "" {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("capability at index %d has no name", i))
		}
		if _, dup := r.caps[c.Name]; dup {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("duplicate capability %q", c.Name))
		}
		if owner, dup := functions[c.Function]; dup {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("capabilities %q and %q both declare function %q", owner, c.Name, c.Function))
		}
		functions[c.Function] = c.Name

		impl, err := normalizeImplementation(c.Implementation, c.Function)
		if err != nil {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("capability %q: %v", c.Name, err))
		}
		c.Implementation = impl

		for _, key := range c.ImportKeys {
			if _, ok := r.imports[key]; !ok {
				return nil, rnerrors.NewUnresolvedImportKey(c.Name, key)
			}
		}

		if len(c.Packages) == 0 {
			return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
				fmt.Sprintf("capability %q declares no packages", c.Name))
		}
		for _, p := range c.Packages {
			if v, seen := packageVersions[p.Name]; seen && v != p.Version {
				return nil, rnerrors.NewInvalidRequest(rnerrors.StageCatalog,
					fmt.Sprintf("package %q declared with conflicting versions %q and %q", p.Name, v, p.Version))
			}
			packageVersions[p.Name] = p.Version
		}

		c.ImportKeys = append([]string(nil), c.ImportKeys...)
		c.Packages = append([]Package(nil), c.Packages...)
		r.caps[c.Name] = &c
		r.order = append(r.order, c.Name)
	}

	return r, nil
}

// Lookup returns the capability with the given name.
func (r *Registry) Lookup(name string) (*Capability, error) {
	c, ok := r.caps[name]
	if !ok {
		return nil, rnerrors.NewUnknownCapability(name)
	}
	return c, nil
}

// Has reports whether name is a registered capability.
func (r *Registry) Has(name string) bool {
	_, ok := r.caps[name]
	return ok
}

// Names returns capability names in catalog order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// All returns every capability in catalog order.
func (r *Registry) All() []*Capability {
	out := make([]*Capability, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.caps[name])
	}
	return out
}

// Defaults returns the names of capabilities preselected in interactive mode.
func (r *Registry) Defaults() []string {
	var out []string
	for _, name := range r.order {
		if r.caps[name].Default {
			out = append(out, name)
		}
	}
	return out
}

// Import returns the import spec registered under key.
func (r *Registry) Import(key string) (ImportSpec, bool) {
	spec, ok := r.imports[key]
	return spec, ok
}

// ImportKeys returns every import key in catalog order.
func (r *Registry) ImportKeys() []string {
	return append([]string(nil), r.importOrder...)
}

// Packages returns the sorted universe of package names any capability can
// require.
func (r *Registry) Packages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range r.caps {
		for _, p := range c.Packages {
			if !seen[p.Name] {
				seen[p.Name] = true
				out = append(out, p.Name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Version returns the catalog's semantic version.
func (r *Registry) Version() string {
	return r.version
}
