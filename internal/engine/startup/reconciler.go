// Package startup derives the initial workflow status of a notebook from its
// persisted requirements, its persisted lock and the packages installed in
// its kernel.
package startup

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome is the result of a startup reconciliation.
type Outcome struct {
	Status       domain.Status
	Saved        domain.PackageMap
	Installed    domain.PackageMap
	Requirements domain.RequirementsSpec
	KernelName   string
}

// Reconciler computes the status a workflow starts in.
type Reconciler struct {
	discoverer ports.PackageDiscoverer
	logger     ports.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(discoverer ports.PackageDiscoverer, logger ports.Logger) *Reconciler {
	return &Reconciler{
		discoverer: discoverer,
		logger:     logger,
	}
}

// Reconcile reads the persisted state of doc and compares it with the
// packages installed in the notebook's kernel. kernelName is used when the
// document does not record a kernel.
//
// Both "every requirement is locked" and "every locked package is installed"
// are decided by comparing counts, not by per-package membership.
func (r *Reconciler) Reconcile(ctx context.Context, doc ports.Document, kernelName string) (Outcome, error) {
	spec, err := doc.Requirements()
	if err != nil {
		return Outcome{}, zerr.With(zerr.Wrap(err, "failed to read requirements"), "document", doc.Path())
	}
	if spec == nil {
		fresh := domain.NewRequirementsSpec(doc.PythonVersion())
		spec = &fresh
	}
	requirements := spec.WithPackages(spec.Packages)
	packages := requirements.Packages

	// 1. Nothing declared yet.
	if len(packages) == 0 {
		return Outcome{
			Status:       domain.StatusInitial,
			Saved:        packages,
			Installed:    domain.PackageMap{},
			Requirements: requirements,
			KernelName:   kernelName,
		}, nil
	}

	// 2. Declared but never locked.
	lock, err := doc.RequirementsLock()
	if err != nil {
		return Outcome{}, zerr.With(zerr.Wrap(err, "failed to read requirements lock"), "document", doc.Path())
	}
	if lock == nil {
		return Outcome{
			Status:       domain.StatusOnlyInstall,
			Saved:        packages,
			Installed:    domain.PackageMap{},
			Requirements: requirements,
			KernelName:   kernelName,
		}, nil
	}

	// 3. Declared and locked: compare with the kernel.
	locked := domain.NormalizeLock(lock)

	if name := doc.KernelName(); name != "" {
		kernelName = name
	}

	matchedInLock := matchByName(packages, locked)

	installedMatch, err := r.installedMatchingLock(ctx, kernelName, locked)
	if err != nil {
		return Outcome{}, err
	}
	installed := matchByName(packages, installedMatch.Normalized())

	r.logger.Debug(fmt.Sprintf(
		"requirements=%d locked=%d matched_in_lock=%d installed_match=%d",
		len(packages), len(locked), len(matchedInLock), len(installedMatch),
	))

	outcome := Outcome{
		Status:       domain.StatusOnlyInstallKernel,
		Saved:        packages,
		Installed:    installed,
		Requirements: requirements,
		KernelName:   kernelName,
	}

	if len(packages) == len(matchedInLock) && len(locked) == len(installedMatch) {
		outcome.Status = domain.StatusStable
		outcome.Installed = packages.Clone()
	}

	return outcome, nil
}

// installedMatchingLock returns the installed packages whose name and exact
// version appear in the normalized lock.
func (r *Reconciler) installedMatchingLock(
	ctx context.Context,
	kernelName string,
	locked domain.PackageMap,
) (domain.PackageMap, error) {
	discovered, err := r.discoverer.DiscoverInstalledPackages(ctx, kernelName)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrDiscoveryFailed, err), "discovery failed"), "kernel", kernelName)
	}

	out := make(domain.PackageMap)
	for name, version := range discovered {
		if lockedVersion, ok := locked[domain.NormalizeName(name)]; ok && lockedVersion == version {
			out[name] = version
		}
	}
	return out, nil
}

// matchByName returns the entries of packages whose canonical name is a key of index.
func matchByName(packages, index domain.PackageMap) domain.PackageMap {
	out := make(domain.PackageMap)
	for name, version := range packages {
		if _, ok := index[domain.NormalizeName(name)]; ok {
			out[name] = version
		}
	}
	return out
}
