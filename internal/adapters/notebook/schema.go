package notebook

import "go.trai.ch/nbreq/internal/core/domain"

// Metadata keys used in the notebook document.
const (
	keyMetadata         = "metadata"
	keyRequirements     = "requirements"
	keyRequirementsLock = "requirements_lock"
	keyThothConfig      = "thoth_config"
	keyKernelspec       = "kernelspec"
	keyLanguageInfo     = "language_info"
)

// RequirementsDTO is the Pipfile-like requirements stored in the metadata.
type RequirementsDTO struct {
	Packages map[string]string `json:"packages"`
	Requires RequiresDTO       `json:"requires"`
	Sources  []domain.Source   `json:"sources"`
}

// RequiresDTO holds the interpreter requirement.
type RequiresDTO struct {
	PythonVersion string `json:"python_version,omitempty"`
}

// LockDTO is the Pipfile.lock-like lock stored in the metadata.
type LockDTO struct {
	Meta    map[string]any            `json:"_meta,omitempty"`
	Default domain.LockedRequirements `json:"default"`
	Develop domain.LockedRequirements `json:"develop"`
}

// KernelspecDTO identifies the kernel a notebook runs on.
type KernelspecDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Language    string `json:"language,omitempty"`
}

// LanguageInfoDTO describes the notebook's language runtime.
type LanguageInfoDTO struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func toDTO(spec domain.RequirementsSpec) RequirementsDTO {
	packages := make(map[string]string, len(spec.Packages))
	for name, version := range spec.Packages.WithoutPlaceholder() {
		packages[name] = version
	}
	sources := spec.Sources
	if sources == nil {
		sources = []domain.Source{}
	}
	return RequirementsDTO{
		Packages: packages,
		Requires: RequiresDTO{PythonVersion: spec.PythonVersion},
		Sources:  sources,
	}
}

func fromDTO(dto RequirementsDTO) domain.RequirementsSpec {
	spec := domain.RequirementsSpec{
		Packages:      domain.PackageMap(dto.Packages).WithoutPlaceholder(),
		PythonVersion: dto.Requires.PythonVersion,
		Sources:       dto.Sources,
	}
	if len(spec.Sources) == 0 {
		spec.Sources = []domain.Source{domain.DefaultSource()}
	}
	return spec
}
