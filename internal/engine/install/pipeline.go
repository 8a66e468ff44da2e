// Package install installs locked requirements into a kernel environment and
// registers the kernel for the notebook.
package install

import (
	"context"
	"errors"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the outcome of a pipeline step.
type Result struct {
	Status       domain.Status
	ErrorMessage string
	// Message is the collaborator's report on success.
	Message string
}

// Pipeline runs the installation and kernel provisioning steps. Steps are
// never retried.
type Pipeline struct {
	installer   ports.Installer
	provisioner ports.KernelProvisioner
	logger      ports.Logger
}

// NewPipeline creates a new Pipeline.
func NewPipeline(installer ports.Installer, provisioner ports.KernelProvisioner, logger ports.Logger) *Pipeline {
	return &Pipeline{
		installer:   installer,
		provisioner: provisioner,
		logger:      logger,
	}
}

// Install installs the locked requirements of kernelName. It returns
// setting_kernel on success.
func (p *Pipeline) Install(ctx context.Context, kernelName string) Result {
	msg, err := p.installer.InstallPackages(ctx, kernelName)
	if err != nil {
		p.logger.Error(zerr.With(zerr.Wrap(errors.Join(domain.ErrInstallFailed, err), "install failed"), "kernel", kernelName))
		return Result{Status: domain.StatusFailed, ErrorMessage: domain.MsgInstallFailed}
	}

	p.logger.Info(msg)
	return Result{Status: domain.StatusSettingKernel, Message: msg}
}

// ProvisionKernel creates the kernel kernelName. It returns ready on success.
func (p *Pipeline) ProvisionKernel(ctx context.Context, kernelName string) Result {
	msg, err := p.provisioner.CreateKernel(ctx, kernelName)
	if err != nil {
		p.logger.Error(zerr.With(zerr.Wrap(errors.Join(domain.ErrKernelProvisioningFailed, err), "kernel provisioning failed"), "kernel", kernelName))
		return Result{Status: domain.StatusFailed, ErrorMessage: domain.MsgKernelFailed}
	}

	p.logger.Info(msg)
	return Result{Status: domain.StatusReady, Message: msg}
}

// SwitchKernel binds the notebook session to kernelName.
func (p *Pipeline) SwitchKernel(ctx context.Context, switcher ports.SessionSwitcher, kernelName string) error {
	if err := switcher.SwitchKernel(ctx, kernelName); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrKernelSwitchFailed, err), "kernel switch failed"), "kernel", kernelName)
	}
	return nil
}
