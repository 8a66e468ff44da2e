// Package notebook stores requirements, locks and resolver configuration in
// the metadata of Jupyter notebook documents.
package notebook

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Notebook implements ports.Document over an .ipynb file. Fields it does not
// manage are preserved as they were read.
type Notebook struct {
	path string

	mu       sync.RWMutex
	document map[string]json.RawMessage
	metadata map[string]json.RawMessage
}

var _ ports.Document = (*Notebook)(nil)

// Open reads the notebook at path.
func Open(path string) (*Notebook, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read notebook"), "path", path)
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse notebook"), "path", path)
	}
	if document == nil {
		return nil, zerr.With(zerr.New("notebook is not a JSON object"), "path", path)
	}

	metadata := make(map[string]json.RawMessage)
	if raw, ok := document[keyMetadata]; ok {
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse notebook metadata"), "path", path)
		}
		if metadata == nil {
			metadata = make(map[string]json.RawMessage)
		}
	}

	return &Notebook{
		path:     path,
		document: document,
		metadata: metadata,
	}, nil
}

// Path returns the location of the notebook.
func (n *Notebook) Path() string {
	return n.path
}

// Requirements returns the requirements stored in the metadata.
func (n *Notebook) Requirements() (*domain.RequirementsSpec, error) {
	var dto RequirementsDTO
	ok, err := n.get(keyRequirements, &dto)
	if err != nil || !ok {
		return nil, err
	}

	spec := fromDTO(dto)
	if spec.PythonVersion == "" {
		spec.PythonVersion = n.PythonVersion()
	}
	return &spec, nil
}

// RequirementsLock returns the default section of the stored lock.
func (n *Notebook) RequirementsLock() (domain.LockedRequirements, error) {
	var dto LockDTO
	ok, err := n.get(keyRequirementsLock, &dto)
	if err != nil || !ok {
		return nil, err
	}
	if dto.Default == nil {
		return domain.LockedRequirements{}, nil
	}
	return dto.Default, nil
}

// KernelName returns the name of the notebook's kernelspec.
func (n *Notebook) KernelName() string {
	var spec KernelspecDTO
	if ok, err := n.get(keyKernelspec, &spec); err != nil || !ok {
		return ""
	}
	return spec.Name
}

// PythonVersion returns the major.minor version from the language info.
func (n *Notebook) PythonVersion() string {
	var info LanguageInfoDTO
	if ok, err := n.get(keyLanguageInfo, &info); err != nil || !ok {
		return ""
	}
	return majorMinor(info.Version)
}

// SetRequirements stores spec in the metadata.
func (n *Notebook) SetRequirements(spec domain.RequirementsSpec) {
	n.set(keyRequirements, toDTO(spec))
}

// SetRequirementsLock stores lock as the default section of the metadata lock.
func (n *Notebook) SetRequirementsLock(lock domain.LockedRequirements) {
	if lock == nil {
		lock = domain.LockedRequirements{}
	}
	n.set(keyRequirementsLock, LockDTO{
		Meta:    map[string]any{"requires": RequiresDTO{PythonVersion: n.PythonVersion()}},
		Default: lock,
		Develop: domain.LockedRequirements{},
	})
}

// SetResolverConfig stores cfg in the metadata.
func (n *Notebook) SetResolverConfig(cfg domain.ResolverConfig) {
	n.set(keyThothConfig, cfg)
}

// SetKernelName points the notebook's kernelspec at name.
func (n *Notebook) SetKernelName(name string) {
	var spec KernelspecDTO
	_, _ = n.get(keyKernelspec, &spec)
	spec.Name = name
	spec.DisplayName = name
	if spec.Language == "" {
		spec.Language = "python"
	}
	n.set(keyKernelspec, spec)
}

// Save writes the notebook to disk, replacing the file atomically.
func (n *Notebook) Save() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	metadata, err := json.Marshal(n.metadata)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal notebook metadata")
	}
	n.document[keyMetadata] = metadata

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", " ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.document); err != nil {
		return zerr.Wrap(err, "failed to marshal notebook")
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(n.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(n.path), ".nbreq-*.ipynb")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary notebook"), "path", n.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to set notebook permissions"), "path", n.path)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write notebook"), "path", n.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write notebook"), "path", n.path)
	}
	if err := os.Rename(tmp.Name(), n.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace notebook"), "path", n.path)
	}
	return nil
}

// get decodes the metadata entry key into v. Older notebooks store entries
// as JSON-encoded strings; both forms are accepted.
func (n *Notebook) get(key string, v any) (bool, error) {
	n.mu.RLock()
	raw, ok := n.metadata[key]
	n.mu.RUnlock()
	if !ok || string(raw) == "null" {
		return false, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return false, nil
		}
		raw = json.RawMessage(encoded)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, zerr.With(zerr.With(zerr.Wrap(err, "failed to decode notebook metadata"), "key", key), "path", n.path)
	}
	return true, nil
}

func (n *Notebook) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		// Only types of this package are stored; they always marshal.
		panic(err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.metadata[key] = raw
}

func majorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// Opener implements ports.DocumentOpener for notebook files.
type Opener struct{}

// Open implements ports.DocumentOpener.
func (Opener) Open(path string) (ports.Document, error) {
	nb, err := Open(path)
	if err != nil {
		return nil, err
	}
	return nb, nil
}
