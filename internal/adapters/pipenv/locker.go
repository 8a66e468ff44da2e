// Package pipenv adapts pipenv as the secondary resolver.
package pipenv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/nbreq/internal/adapters/pipfile"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locker implements ports.SecondaryResolver by locking the kernel's Pipfile
// with pipenv.
type Locker struct {
	cfg    *domain.Config
	runner ports.CommandRunner
	logger ports.Logger
}

var _ ports.SecondaryResolver = (*Locker)(nil)

// NewLocker creates a new Locker.
func NewLocker(cfg *domain.Config, runner ports.CommandRunner, logger ports.Logger) *Locker {
	return &Locker{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
}

// Lock writes the Pipfile for requirements into the kernel directory, runs the
// lock command and returns the default section of the produced Pipfile.lock.
func (l *Locker) Lock(
	ctx context.Context,
	kernelName string,
	requirements domain.RequirementsSpec,
) (*domain.FallbackResult, error) {
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return nil, err
	}

	dir := l.cfg.KernelDir(kernelName)
	if err := pipfile.Write(dir, requirements); err != nil {
		return nil, err
	}

	// A lock left by an earlier run must not be mistaken for this one.
	stale := filepath.Join(dir, pipfile.LockFilename)
	if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to remove previous lock"), "path", stale)
	}

	if _, err := l.runner.Run(ctx, ports.Command{
		Argv: slices.Clone(l.cfg.Commands.Lock),
		Dir:  dir,
		Env: []string{
			"PIPENV_PIPFILE=" + filepath.Join(dir, pipfile.Filename),
			"PIPENV_IGNORE_VIRTUALENVS=1",
		},
	}); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "lock command failed"), "kernel", kernelName)
	}

	lock, err := pipfile.ReadLock(dir)
	if err != nil {
		return nil, err
	}

	l.logger.Debug(fmt.Sprintf("pipenv locked %d packages", len(lock.Default)))
	return &domain.FallbackResult{RequirementsLock: lock.Default}, nil
}
