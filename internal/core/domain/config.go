package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Commands holds the external command lines used by the adapters.
// Each entry is an argv; the first element is the executable.
type Commands struct {
	Advise    []string
	Lock      []string
	Bootstrap []string
	Install   []string
	Discover  []string
	Kernel    []string
}

// Config is the application configuration.
type Config struct {
	KernelName         string
	RecommendationType RecommendationType
	EnvironmentsDir    string
	Python             string
	JournalPath        string
	Commands           Commands
}

// KernelDir is the directory holding the Pipfile, the lock and the virtual
// environment of a kernel.
func (c *Config) KernelDir(kernelName string) string {
	return filepath.Join(c.EnvironmentsDir, kernelName)
}

// KernelPython is the interpreter of a kernel's virtual environment.
func (c *Config) KernelPython(kernelName string) string {
	return filepath.Join(c.KernelDir(kernelName), "bin", "python")
}

// ValidateKernelName reports whether name can be used as a kernel directory.
func ValidateKernelName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(zerr.Wrap(ErrInvalidKernelName, "kernel name cannot be used as a directory"), "kernel", name)
	}
	return nil
}
