package resolver

import (
	"github.com/rn-labs/rninject/internal/catalog"
	rnerrors "github.com/rn-labs/rninject/internal/errors"
)

// Resolution is the outcome of resolving a selection against a registry.
// Keys, Statements and Packages are in first-seen order.
type Resolution struct {
	Keys       []string
	Statements []string
	Packages   []catalog.Package
}

// Resolve walks selection in order, unioning each capability's import keys
// and packages. Each unique key is rendered once through the registry's
// import catalog. Resolve does not check for an empty selection; callers
// validate before resolving.
func Resolve(reg *catalog.Registry, selection []string) (*Resolution, error) {
	res := &Resolution{}
	seenKeys := make(map[string]bool)
	seenPackages := make(map[string]bool)

	for _, name := range selection {
		c, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}

		for _, key := range c.ImportKeys {
			if seenKeys[key] {
				continue
			}
			spec, ok := reg.Import(key)
			if !ok {
				return nil, rnerrors.NewUnresolvedImportKey(c.Name, key)
			}
			seenKeys[key] = true
			res.Keys = append(res.Keys, key)
			res.Statements = append(res.Statements, spec.Render())
		}

		for _, p := range c.Packages {
			if seenPackages[p.Name] {
				continue
			}
			seenPackages[p.Name] = true
			res.Packages = append(res.Packages, p)
		}
	}

	return res, nil
}

// PackageNames returns the bare package names.
func (r *Resolution) PackageNames() []string {
	out := make([]string, 0, len(r.Packages))
	for _, p := range r.Packages {
		out = append(out, p.Name)
	}
	return out
}

// InstallSpecs returns the package arguments for a package manager, with
// version constraints attached where the catalog declares them.
func (r *Resolution) InstallSpecs() []string {
	out := make([]string, 0, len(r.Packages))
	for _, p := range r.Packages {
		out = append(out, p.InstallSpec())
	}
	return out
}
