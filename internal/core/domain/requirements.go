package domain

import "strings"

// Source is a Python package index the requirements are resolved against.
type Source struct {
	Name      string `json:"name" toml:"name" yaml:"name"`
	URL       string `json:"url" toml:"url" yaml:"url"`
	VerifySSL bool   `json:"verify_ssl" toml:"verify_ssl" yaml:"verify_ssl"`
}

// DefaultSource returns the public PyPI index.
func DefaultSource() Source {
	return Source{
		Name:      "pypi",
		URL:       "https://pypi.org/simple",
		VerifySSL: true,
	}
}

// RequirementsSpec is the set of direct requirements declared for a notebook.
// Packages never contains the draft placeholder.
type RequirementsSpec struct {
	Packages      PackageMap
	PythonVersion string
	Sources       []Source
}

// NewRequirementsSpec returns an empty spec targeting pythonVersion with the default source.
func NewRequirementsSpec(pythonVersion string) RequirementsSpec {
	return RequirementsSpec{
		Packages:      PackageMap{},
		PythonVersion: pythonVersion,
		Sources:       []Source{DefaultSource()},
	}
}

// WithPackages returns a copy of r carrying packages, minus any draft row.
func (r RequirementsSpec) WithPackages(packages PackageMap) RequirementsSpec {
	out := r.Clone()
	out.Packages = packages.WithoutPlaceholder()
	return out
}

// Clone returns a deep copy of r.
func (r RequirementsSpec) Clone() RequirementsSpec {
	var sources []Source
	if r.Sources != nil {
		sources = make([]Source, len(r.Sources))
		copy(sources, r.Sources)
	}
	return RequirementsSpec{
		Packages:      r.Packages.Clone(),
		PythonVersion: r.PythonVersion,
		Sources:       sources,
	}
}

// LockedPackage is a single pinned entry of a lock.
type LockedPackage struct {
	Version string   `json:"version"`
	Hashes  []string `json:"hashes,omitempty"`
	Index   string   `json:"index,omitempty"`
}

// LockedRequirements maps package names to their pinned versions.
type LockedRequirements map[string]LockedPackage

// Clone returns a deep copy of the lock. A nil lock stays nil.
func (l LockedRequirements) Clone() LockedRequirements {
	if l == nil {
		return nil
	}
	out := make(LockedRequirements, len(l))
	for name, pkg := range l {
		hashes := make([]string, len(pkg.Hashes))
		copy(hashes, pkg.Hashes)
		if pkg.Hashes == nil {
			hashes = nil
		}
		out[name] = LockedPackage{Version: pkg.Version, Hashes: hashes, Index: pkg.Index}
	}
	return out
}

// NormalizeLock strips pin operators from the locked versions and keys the
// result by canonical package name.
func NormalizeLock(lock LockedRequirements) PackageMap {
	out := make(PackageMap, len(lock))
	for name, pkg := range lock {
		out[NormalizeName(name)] = strings.Replace(pkg.Version, "==", "", 1)
	}
	return out
}
