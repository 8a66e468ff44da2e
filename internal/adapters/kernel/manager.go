// Package kernel manages the per-kernel virtual environments: it discovers
// installed packages, installs locked requirements and registers Jupyter
// kernels.
package kernel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nbreq/internal/adapters/pipfile"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements package discovery, installation and kernel provisioning
// on top of the environments directory.
type Manager struct {
	cfg    *domain.Config
	runner ports.CommandRunner
	logger ports.Logger
}

var (
	_ ports.PackageDiscoverer = (*Manager)(nil)
	_ ports.Installer         = (*Manager)(nil)
	_ ports.KernelProvisioner = (*Manager)(nil)
)

// NewManager creates a new Manager.
func NewManager(cfg *domain.Config, runner ports.CommandRunner, logger ports.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
}

type installedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DiscoverInstalledPackages lists the packages installed in the kernel's
// environment. A kernel without an environment has no packages.
func (m *Manager) DiscoverInstalledPackages(ctx context.Context, kernelName string) (domain.PackageMap, error) {
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return nil, err
	}

	python := m.cfg.KernelPython(kernelName)
	if _, err := os.Stat(python); errors.Is(err, fs.ErrNotExist) {
		m.logger.Debug("no environment for kernel " + kernelName)
		return domain.PackageMap{}, nil
	}

	out, err := m.runner.Run(ctx, ports.Command{
		Argv: argv(python, m.cfg.Commands.Discover),
		Dir:  m.cfg.KernelDir(kernelName),
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list installed packages"), "kernel", kernelName)
	}

	var listed []installedPackage
	if err := json.Unmarshal(out, &listed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse installed packages"), "kernel", kernelName)
	}

	packages := make(domain.PackageMap, len(listed))
	for _, p := range listed {
		packages[p.Name] = p.Version
	}
	return packages, nil
}

// InstallPackages installs the Pipfile.lock of the kernel directory into the
// kernel's environment, creating the environment first if needed.
func (m *Manager) InstallPackages(ctx context.Context, kernelName string) (string, error) {
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return "", err
	}

	dir := m.cfg.KernelDir(kernelName)
	if _, err := os.Stat(filepath.Join(dir, pipfile.LockFilename)); err != nil {
		return "", zerr.With(zerr.Wrap(err, "no lock for kernel"), "kernel", kernelName)
	}

	if err := m.ensureEnvironment(ctx, kernelName); err != nil {
		return "", err
	}

	if _, err := m.runner.Run(ctx, m.inEnvironment(kernelName, m.cfg.Commands.Install)); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to install requirements"), "kernel", kernelName)
	}

	return fmt.Sprintf("installed requirements for kernel %s in %s", kernelName, dir), nil
}

// CreateKernel registers the kernel's environment as a Jupyter kernel.
func (m *Manager) CreateKernel(ctx context.Context, kernelName string) (string, error) {
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return "", err
	}

	if err := m.ensureEnvironment(ctx, kernelName); err != nil {
		return "", err
	}

	cmd := m.inEnvironment(kernelName, m.cfg.Commands.Kernel)
	cmd.Argv = append(cmd.Argv, kernelName, "--display-name", kernelName)
	if _, err := m.runner.Run(ctx, cmd); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to register kernel"), "kernel", kernelName)
	}

	return "created kernel " + kernelName, nil
}

// ensureEnvironment creates and bootstraps the virtual environment when its
// interpreter is missing.
func (m *Manager) ensureEnvironment(ctx context.Context, kernelName string) error {
	python := m.cfg.KernelPython(kernelName)
	if _, err := os.Stat(python); err == nil {
		return nil
	}

	dir := m.cfg.KernelDir(kernelName)
	m.logger.Info("creating environment for kernel " + kernelName)
	if _, err := m.runner.Run(ctx, ports.Command{
		Argv: []string{m.cfg.Python, "-m", "venv", dir},
		Dir:  dir,
	}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create environment"), "kernel", kernelName)
	}

	if len(m.cfg.Commands.Bootstrap) == 0 {
		return nil
	}
	if _, err := m.runner.Run(ctx, m.inEnvironment(kernelName, m.cfg.Commands.Bootstrap)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to bootstrap environment"), "kernel", kernelName)
	}
	return nil
}

// inEnvironment builds a command running args with the kernel's interpreter
// inside the kernel directory.
func (m *Manager) inEnvironment(kernelName string, args []string) ports.Command {
	dir := m.cfg.KernelDir(kernelName)
	return ports.Command{
		Argv: argv(m.cfg.KernelPython(kernelName), args),
		Dir:  dir,
		Env: []string{
			"VIRTUAL_ENV=" + dir,
			"PATH=" + filepath.Join(dir, "bin"),
		},
	}
}

func argv(head string, args []string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, head)
	return append(out, args...)
}
