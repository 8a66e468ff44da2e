package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=kernel.go -destination=mocks/mock_kernel.go -package=mocks

// Installer installs the locked requirements into a kernel's environment.
type Installer interface {
	// InstallPackages returns a human-readable message on success.
	InstallPackages(ctx context.Context, kernelName string) (string, error)
}

// KernelProvisioner registers a kernel backed by the installed environment.
type KernelProvisioner interface {
	// CreateKernel returns a human-readable message on success.
	CreateKernel(ctx context.Context, kernelName string) (string, error)
}

// SessionSwitcher binds the notebook session to a kernel.
type SessionSwitcher interface {
	SwitchKernel(ctx context.Context, kernelName string) error
}
