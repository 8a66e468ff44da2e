// Package thamos adapts the Thoth advise client as the primary resolver and
// as the source of the resolver configuration.
package thamos

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/nbreq/internal/adapters/pipfile"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvConfigPath tells the advise client which configuration file to use.
const EnvConfigPath = "THAMOS_CONFIG"

// Resolver implements ports.PrimaryResolver by running the advise command in
// the kernel directory.
type Resolver struct {
	cfg    *domain.Config
	runner ports.CommandRunner
	logger ports.Logger
}

var _ ports.PrimaryResolver = (*Resolver)(nil)

// NewResolver creates a new Resolver.
func NewResolver(cfg *domain.Config, runner ports.CommandRunner, logger ports.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
}

// adviseResponse is the JSON document printed by the advise command.
type adviseResponse struct {
	Error           bool          `json:"error"`
	Requirements    *pipfile.File `json:"requirements"`
	RequirementLock *pipfile.Lock `json:"requirement_lock"`
}

// Advise writes the Pipfile and the resolver configuration for the kernel,
// runs the advise command and stores the returned lock as the kernel's
// Pipfile.lock.
func (r *Resolver) Advise(
	ctx context.Context,
	kernelName string,
	rcfg domain.ResolverConfig,
	requirements domain.RequirementsSpec,
) (*domain.AdviseResult, error) {
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return nil, err
	}

	dir := r.cfg.KernelDir(kernelName)
	if err := pipfile.Write(dir, requirements); err != nil {
		return nil, err
	}
	if err := WriteConfig(dir, rcfg); err != nil {
		return nil, err
	}

	out, err := r.runner.Run(ctx, ports.Command{
		Argv: slices.Clone(r.cfg.Commands.Advise),
		Dir:  dir,
		Env:  []string{EnvConfigPath + "=" + filepath.Join(dir, ConfigFilename)},
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "advise command failed"), "kernel", kernelName)
	}

	var resp adviseResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse advise response"), "kernel", kernelName)
	}
	if resp.Error || resp.RequirementLock == nil {
		r.logger.Warn("resolver returned no lock for kernel " + kernelName)
		return &domain.AdviseResult{Error: true}, nil
	}

	if err := pipfile.WriteLock(dir, *resp.RequirementLock); err != nil {
		return nil, err
	}

	advised := requirements.Clone()
	if resp.Requirements != nil {
		advised = resp.Requirements.Spec()
		if advised.PythonVersion == "" {
			advised.PythonVersion = requirements.PythonVersion
		}
	}

	r.logger.Debug(fmt.Sprintf("advise returned %d locked packages", len(resp.RequirementLock.Default)))
	return &domain.AdviseResult{
		Requirements:     advised,
		RequirementsLock: resp.RequirementLock.Default,
	}, nil
}
