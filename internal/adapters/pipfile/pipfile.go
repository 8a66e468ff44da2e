// Package pipfile reads and writes the Pipfile and Pipfile.lock of a kernel
// environment.
package pipfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// Filename is the name of the requirements file.
	Filename = "Pipfile"
	// LockFilename is the name of the lock file.
	LockFilename = "Pipfile.lock"
)

// File is the TOML representation of a Pipfile.
type File struct {
	Sources     []domain.Source   `toml:"source" json:"source"`
	Packages    map[string]string `toml:"packages" json:"packages"`
	DevPackages map[string]string `toml:"dev-packages" json:"dev-packages"`
	Requires    Requires          `toml:"requires" json:"requires"`
}

// Requires holds the interpreter requirement of a Pipfile.
type Requires struct {
	PythonVersion string `toml:"python_version,omitempty" json:"python_version,omitempty"`
}

// Lock is the JSON representation of a Pipfile.lock.
type Lock struct {
	Meta    json.RawMessage           `json:"_meta,omitempty"`
	Default domain.LockedRequirements `json:"default"`
	Develop domain.LockedRequirements `json:"develop"`
}

// FromSpec converts requirements into a Pipfile.
func FromSpec(spec domain.RequirementsSpec) File {
	packages := make(map[string]string, len(spec.Packages))
	for name, version := range spec.Packages.WithoutPlaceholder() {
		if version == "" {
			version = domain.AnyVersion
		}
		packages[name] = version
	}
	sources := spec.Sources
	if len(sources) == 0 {
		sources = []domain.Source{domain.DefaultSource()}
	}
	return File{
		Sources:     sources,
		Packages:    packages,
		DevPackages: map[string]string{},
		Requires:    Requires{PythonVersion: spec.PythonVersion},
	}
}

// Spec converts the Pipfile back into requirements.
func (f File) Spec() domain.RequirementsSpec {
	spec := domain.RequirementsSpec{
		Packages:      domain.PackageMap(f.Packages).WithoutPlaceholder(),
		PythonVersion: f.Requires.PythonVersion,
		Sources:       f.Sources,
	}
	if len(spec.Sources) == 0 {
		spec.Sources = []domain.Source{domain.DefaultSource()}
	}
	return spec
}

// Write writes the Pipfile for spec into dir, creating dir if needed.
func Write(dir string, spec domain.RequirementsSpec) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(FromSpec(spec)); err != nil {
		return zerr.Wrap(err, "failed to encode Pipfile")
	}
	return writeFile(dir, Filename, buf.Bytes())
}

// Read reads the Pipfile in dir.
func Read(dir string) (domain.RequirementsSpec, error) {
	path := filepath.Join(dir, Filename)
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return domain.RequirementsSpec{}, zerr.With(zerr.Wrap(err, "failed to read Pipfile"), "path", path)
	}
	return f.Spec(), nil
}

// WriteLock writes lock as the Pipfile.lock in dir.
func WriteLock(dir string, lock Lock) error {
	if lock.Default == nil {
		lock.Default = domain.LockedRequirements{}
	}
	if lock.Develop == nil {
		lock.Develop = domain.LockedRequirements{}
	}
	data, err := json.MarshalIndent(lock, "", "    ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode Pipfile.lock")
	}
	return writeFile(dir, LockFilename, append(data, '\n'))
}

// ReadLock reads the Pipfile.lock in dir.
func ReadLock(dir string) (Lock, error) {
	path := filepath.Join(dir, LockFilename)
	//nolint:gosec // path is derived from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Lock{}, zerr.With(zerr.Wrap(err, "failed to read Pipfile.lock"), "path", path)
	}

	var lock Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return Lock{}, zerr.With(zerr.Wrap(err, "failed to parse Pipfile.lock"), "path", path)
	}
	if lock.Default == nil {
		lock.Default = domain.LockedRequirements{}
	}
	return lock, nil
}

func writeFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}
