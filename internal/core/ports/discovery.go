package ports

import (
	"context"

	"go.trai.ch/nbreq/internal/core/domain"
)

// PackageDiscoverer lists the packages installed in a kernel's environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type PackageDiscoverer interface {
	// DiscoverInstalledPackages returns name -> version of every installed package.
	DiscoverInstalledPackages(ctx context.Context, kernelName string) (domain.PackageMap, error)
}
