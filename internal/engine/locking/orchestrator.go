// Package locking turns saved requirements into a lock, trying the primary
// resolver first and the secondary resolver when the primary one fails.
package locking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one locking attempt.
type Request struct {
	Document           ports.Document
	SessionID          string
	KernelName         string
	RecommendationType domain.RecommendationType
	Requirements       domain.RequirementsSpec
}

// Result is the outcome of a locking step.
type Result struct {
	// Status is installing_requirements on success and failed otherwise.
	Status domain.Status
	// ErrorMessage is set when Status is failed.
	ErrorMessage string
	// Requirements are the requirements as returned by the resolver.
	Requirements domain.RequirementsSpec
	// Lock is the produced lock.
	Lock domain.LockedRequirements
}

// Orchestrator sequences the primary and secondary resolvers.
type Orchestrator struct {
	primary   ports.PrimaryResolver
	secondary ports.SecondaryResolver
	config    ports.ConfigSource
	journal   ports.LockJournal
	logger    ports.Logger
	now       func() time.Time
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	primary ports.PrimaryResolver,
	secondary ports.SecondaryResolver,
	config ports.ConfigSource,
	journal ports.LockJournal,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		primary:   primary,
		secondary: secondary,
		config:    config,
		journal:   journal,
		logger:    logger,
		now:       time.Now,
	}
}

// Lock runs the primary resolver and, if it fails, calls onFallback and runs
// the secondary resolver. onFallback may be nil.
func (o *Orchestrator) Lock(ctx context.Context, req Request, onFallback func()) Result {
	res, err := o.LockWithPrimary(ctx, req)
	if err == nil {
		return res
	}

	o.logger.Warn(err.Error())
	if onFallback != nil {
		onFallback()
	}
	return o.LockWithFallback(ctx, req)
}

// LockWithPrimary asks the primary resolver for a lock. An error means the
// caller should fall back to the secondary resolver; it always matches
// domain.ErrPrimaryResolverFailed.
func (o *Orchestrator) LockWithPrimary(ctx context.Context, req Request) (Result, error) {
	cfg, err := o.config.RetrieveConfig(ctx, req.KernelName)
	if err != nil {
		return Result{}, o.primaryFailure(req, err)
	}
	if cfg == nil {
		return Result{}, o.primaryFailure(req, errors.New("no resolver configuration"))
	}
	effective := cfg.WithRecommendationType(req.RecommendationType)

	advise, err := o.primary.Advise(ctx, req.KernelName, effective, req.Requirements.Clone())
	if err != nil {
		return Result{}, o.primaryFailure(req, err)
	}
	if advise == nil || advise.Error {
		return Result{}, o.primaryFailure(req, errors.New("resolver reported an error"))
	}

	req.Document.SetRequirements(advise.Requirements)
	req.Document.SetRequirementsLock(advise.RequirementsLock)
	req.Document.SetResolverConfig(effective)
	o.save(req.Document)
	o.record(req, domain.ResolverThoth, advise.Requirements, advise.RequirementsLock)

	return Result{
		Status:       domain.StatusInstallingRequirements,
		Requirements: advise.Requirements.Clone(),
		Lock:         advise.RequirementsLock.Clone(),
	}, nil
}

// LockWithFallback asks the secondary resolver for a lock. Failures are
// reported as the failed status with a fixed message.
func (o *Orchestrator) LockWithFallback(ctx context.Context, req Request) Result {
	res, err := o.secondary.Lock(ctx, req.KernelName, req.Requirements.Clone())
	switch {
	case err != nil:
		o.logger.Error(zerr.With(zerr.Wrap(errors.Join(domain.ErrResolutionExhausted, err), "secondary resolver failed"), "kernel", req.KernelName))
		return exhausted(req)
	case res == nil || res.Error:
		o.logger.Error(zerr.With(zerr.Wrap(domain.ErrResolutionExhausted, "secondary resolver reported an error"), "kernel", req.KernelName))
		return exhausted(req)
	}

	req.Document.SetRequirementsLock(res.RequirementsLock)
	o.save(req.Document)
	o.record(req, domain.ResolverPipenv, req.Requirements, res.RequirementsLock)

	return Result{
		Status:       domain.StatusInstallingRequirements,
		Requirements: req.Requirements.Clone(),
		Lock:         res.RequirementsLock.Clone(),
	}
}

func exhausted(req Request) Result {
	return Result{
		Status:       domain.StatusFailed,
		ErrorMessage: domain.MsgResolutionExhausted,
		Requirements: req.Requirements.Clone(),
	}
}

func (o *Orchestrator) primaryFailure(req Request, cause error) error {
	err := zerr.Wrap(errors.Join(domain.ErrPrimaryResolverFailed, cause), "primary resolver failed")
	return zerr.With(err, "kernel", req.KernelName)
}

// save flushes the document. A failed save does not undo a lock that was
// already produced, so it is only logged.
func (o *Orchestrator) save(doc ports.Document) {
	if err := doc.Save(); err != nil {
		o.logger.Error(zerr.With(zerr.Wrap(err, "failed to save document"), "document", doc.Path()))
	}
}

func (o *Orchestrator) record(
	req Request,
	resolver string,
	requirements domain.RequirementsSpec,
	lock domain.LockedRequirements,
) {
	if o.journal == nil {
		return
	}

	record := domain.LockRecord{
		SessionID:   req.SessionID,
		KernelName:  req.KernelName,
		Resolver:    resolver,
		Fingerprint: Fingerprint(requirements),
		Requested:   len(requirements.Packages),
		Locked:      len(lock),
		Timestamp:   o.now().UTC(),
	}
	if err := o.journal.Record(record); err != nil {
		o.logger.Error(zerr.Wrap(err, "failed to record lock"))
		return
	}

	o.logger.Info(fmt.Sprintf("locked %d packages with %s", len(lock), resolver))
}

// Fingerprint returns a stable digest of the requirements' packages, Python
// version and sources. Package names are compared case-insensitively.
func Fingerprint(spec domain.RequirementsSpec) string {
	packages := spec.Packages.Normalized()
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	slices.Sort(names)

	h := xxhash.New()
	_, _ = h.WriteString("python=" + spec.PythonVersion + "\n")
	for _, name := range names {
		_, _ = h.WriteString(name + "==" + packages[name] + "\n")
	}
	for _, src := range spec.Sources {
		_, _ = h.WriteString(src.Name + "@" + src.URL + "#" + strconv.FormatBool(src.VerifySSL) + "\n")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
