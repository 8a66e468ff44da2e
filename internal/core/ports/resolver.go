package ports

import (
	"context"

	"go.trai.ch/nbreq/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// PrimaryResolver is the constraint-solving resolver attempted first.
type PrimaryResolver interface {
	// Advise locks the requirements for the kernel using cfg.
	// A result with Error set means the resolver ran but could not produce a lock.
	Advise(
		ctx context.Context,
		kernelName string,
		cfg domain.ResolverConfig,
		requirements domain.RequirementsSpec,
	) (*domain.AdviseResult, error)
}

// SecondaryResolver is the fallback resolver used when the primary one fails.
type SecondaryResolver interface {
	Lock(ctx context.Context, kernelName string, requirements domain.RequirementsSpec) (*domain.FallbackResult, error)
}

// ConfigSource retrieves the resolver configuration for a kernel.
type ConfigSource interface {
	RetrieveConfig(ctx context.Context, kernelName string) (*domain.ResolverConfig, error)
}
