package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTransition is returned when a trigger is not accepted in the current status.
	ErrInvalidTransition = zerr.New("invalid workflow transition")

	// ErrBusy is returned when a trigger arrives while another one is still running.
	ErrBusy = zerr.New("workflow transition already in progress")

	// ErrDraftRowExists is returned when adding a row while one is already being edited.
	ErrDraftRowExists = zerr.New("a package row is already being edited")

	// ErrNoRequirements is returned when saving leaves no packages.
	ErrNoRequirements = zerr.New("no requirements to save")

	// ErrPrimaryResolverFailed is returned when the primary resolver could not lock the requirements.
	ErrPrimaryResolverFailed = zerr.New("primary resolver failed")

	// ErrResolutionExhausted is returned when neither resolver could lock the requirements.
	ErrResolutionExhausted = zerr.New("no resolution engine succeeded")

	// ErrInstallFailed is returned when installing locked requirements fails.
	ErrInstallFailed = zerr.New("failed to install requirements")

	// ErrKernelProvisioningFailed is returned when the kernel cannot be created.
	ErrKernelProvisioningFailed = zerr.New("failed to provision kernel")

	// ErrKernelSwitchFailed is returned when the session cannot switch to the new kernel.
	ErrKernelSwitchFailed = zerr.New("failed to switch kernel")

	// ErrDiscoveryFailed is returned when installed packages cannot be listed.
	ErrDiscoveryFailed = zerr.New("failed to discover installed packages")

	// ErrUnknownRecommendationType is returned for unsupported recommendation types.
	ErrUnknownRecommendationType = zerr.New("unknown recommendation type")

	// ErrInvalidKernelName is returned for an empty kernel name.
	ErrInvalidKernelName = zerr.New("invalid kernel name")

	// ErrUnknownStatus is returned when parsing an unknown status name.
	ErrUnknownStatus = zerr.New("unknown workflow status")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrPackageNotDeclared is returned when removing a package the notebook does not declare.
	ErrPackageNotDeclared = zerr.New("package not declared")

	// ErrInvalidRequirement is returned when a requirement argument cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrWorkflowFailed is returned when a workflow ends in a failed status.
	ErrWorkflowFailed = zerr.New("workflow failed")
)
