// Package workflow drives a notebook's requirements through editing, locking,
// installation and kernel provisioning.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/engine/install"
	"go.trai.ch/nbreq/internal/engine/locking"
	"go.trai.ch/nbreq/internal/engine/startup"
	"go.trai.ch/zerr"
)

// Machine is the workflow of one document session. At most one trigger is
// processed at a time; triggers arriving meanwhile fail with domain.ErrBusy.
type Machine struct {
	sessionID string
	doc       ports.Document
	switcher  ports.SessionSwitcher

	reconciler *startup.Reconciler
	locker     *locking.Orchestrator
	pipeline   *install.Pipeline
	telemetry  ports.Telemetry
	logger     ports.Logger

	busy atomic.Bool

	mu        sync.RWMutex
	state     domain.WorkflowState
	observers []ports.StatusObserver
}

// SessionID returns the identifier of the session.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() domain.WorkflowState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Observe registers an observer notified after every status change.
func (m *Machine) Observe(o ports.StatusObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// Start enters loading and runs startup reconciliation.
func (m *Machine) Start(ctx context.Context) (domain.WorkflowState, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return m.Snapshot(), zerr.Wrap(domain.ErrBusy, "cannot start")
	}
	defer m.busy.Store(false)

	next := m.Snapshot()
	next.Status = domain.StatusLoading
	m.enter(ctx, next)
	return m.Snapshot(), nil
}

// Fire applies t to the current state and runs the on-enter hooks of the
// statuses it leads to. It returns once a quiescent status is reached.
func (m *Machine) Fire(ctx context.Context, t Trigger) (domain.WorkflowState, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return m.Snapshot(), zerr.With(zerr.Wrap(domain.ErrBusy, "trigger rejected"), "trigger", t.String())
	}
	defer m.busy.Store(false)

	tr, err := Apply(m.Snapshot(), t)
	if err != nil {
		return m.Snapshot(), err
	}

	if tr.Persist != nil {
		m.doc.SetRequirements(*tr.Persist)
		if tr.Flush {
			if err := m.doc.Save(); err != nil {
				m.logger.Error(zerr.With(zerr.Wrap(err, "failed to save document"), "document", m.doc.Path()))
			}
		}
	}

	m.enter(ctx, tr.Next)
	return m.Snapshot(), nil
}

// enter moves to next and keeps running on-enter hooks until a status
// without one, or a hook that leaves the status unchanged, is reached.
func (m *Machine) enter(ctx context.Context, next domain.WorkflowState) {
	for {
		m.set(next)

		var more bool
		next, more = m.onEnter(ctx, next)
		if !more {
			return
		}
	}
}

// onEnter is the single dispatch point over every status.
func (m *Machine) onEnter(ctx context.Context, state domain.WorkflowState) (domain.WorkflowState, bool) {
	switch state.Status {
	case domain.StatusLoading:
		return m.load(ctx, state), true
	case domain.StatusLockingRequirements:
		return m.lockWithPrimary(ctx, state), true
	case domain.StatusLockingRequirementsUsingPipenv:
		return m.lockWithFallback(ctx, state), true
	case domain.StatusInstallingRequirements:
		return m.install(ctx, state), true
	case domain.StatusSettingKernel:
		return m.provisionKernel(ctx, state), true
	case domain.StatusReady:
		return m.switchKernel(ctx, state)
	case domain.StatusInitial,
		domain.StatusOnlyInstall,
		domain.StatusOnlyInstallKernel,
		domain.StatusNoReqsToSave,
		domain.StatusEditing,
		domain.StatusSaved,
		domain.StatusFailedNoReqs,
		domain.StatusFailed,
		domain.StatusStable:
		return state, false
	}
	panic(fmt.Sprintf("workflow: unhandled status %d", state.Status))
}

func (m *Machine) load(ctx context.Context, state domain.WorkflowState) domain.WorkflowState {
	ctx, vertex := m.telemetry.Record(ctx, "reconcile requirements")

	out, err := m.reconciler.Reconcile(ctx, m.doc, state.KernelName)
	vertex.Complete(err)
	if err != nil {
		m.logger.Error(err)
		msg := domain.MsgStartupFailed
		if errors.Is(err, domain.ErrDiscoveryFailed) {
			msg = domain.MsgDiscoveryFailed
		}
		return failed(state, msg)
	}

	state.Status = out.Status
	state.Draft = domain.PackageMap{}
	state.Saved = out.Saved
	state.Installed = out.Installed
	state.Requirements = out.Requirements
	state.KernelName = out.KernelName
	state.ErrorMessage = ""
	return state
}

func (m *Machine) lockRequest(state domain.WorkflowState) locking.Request {
	return locking.Request{
		Document:           m.doc,
		SessionID:          m.sessionID,
		KernelName:         state.KernelName,
		RecommendationType: state.RecommendationType,
		Requirements:       state.Requirements.WithPackages(state.Saved),
	}
}

func (m *Machine) lockWithPrimary(ctx context.Context, state domain.WorkflowState) domain.WorkflowState {
	ctx, vertex := m.telemetry.Record(ctx, "lock requirements with thoth")

	res, err := m.locker.LockWithPrimary(ctx, m.lockRequest(state))
	vertex.Complete(err)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("%v, falling back to pipenv", err))
		state.Status = domain.StatusLockingRequirementsUsingPipenv
		return state
	}
	return applyLock(state, res)
}

func (m *Machine) lockWithFallback(ctx context.Context, state domain.WorkflowState) domain.WorkflowState {
	ctx, vertex := m.telemetry.Record(ctx, "lock requirements with pipenv")

	res := m.locker.LockWithFallback(ctx, m.lockRequest(state))
	vertex.Complete(stepError(res.Status, domain.ErrResolutionExhausted))
	return applyLock(state, res)
}

func applyLock(state domain.WorkflowState, res locking.Result) domain.WorkflowState {
	state.Status = res.Status
	state.ErrorMessage = res.ErrorMessage
	if res.Status != domain.StatusFailed {
		state.Requirements = res.Requirements
	}
	return state
}

func (m *Machine) install(ctx context.Context, state domain.WorkflowState) domain.WorkflowState {
	ctx, vertex := m.telemetry.Record(ctx, "install requirements")

	res := m.pipeline.Install(ctx, state.KernelName)
	vertex.Complete(stepError(res.Status, domain.ErrInstallFailed))

	state.Status = res.Status
	state.ErrorMessage = res.ErrorMessage
	if res.Status == domain.StatusSettingKernel {
		state.Installed = state.Saved.Clone()
	}
	return state
}

func (m *Machine) provisionKernel(ctx context.Context, state domain.WorkflowState) domain.WorkflowState {
	ctx, vertex := m.telemetry.Record(ctx, "create kernel "+state.KernelName)

	res := m.pipeline.ProvisionKernel(ctx, state.KernelName)
	vertex.Complete(stepError(res.Status, domain.ErrKernelProvisioningFailed))

	state.Status = res.Status
	state.ErrorMessage = res.ErrorMessage
	return state
}

// switchKernel stays in ready on success.
func (m *Machine) switchKernel(ctx context.Context, state domain.WorkflowState) (domain.WorkflowState, bool) {
	ctx, vertex := m.telemetry.Record(ctx, "switch kernel to "+state.KernelName)

	err := m.pipeline.SwitchKernel(ctx, m.switcher, state.KernelName)
	vertex.Complete(err)
	if err != nil {
		m.logger.Error(err)
		return failed(state, domain.MsgKernelSwitchFailed), true
	}
	return state, false
}

func (m *Machine) set(next domain.WorkflowState) {
	m.mu.Lock()
	prev := m.state.Status
	m.state = next.Clone()
	observers := make([]ports.StatusObserver, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	if prev != next.Status {
		m.logger.Info(fmt.Sprintf("%s -> %s", prev, next.Status))
	}
	for _, o := range observers {
		o.OnStatus(next.Clone())
	}
}

func failed(state domain.WorkflowState, msg string) domain.WorkflowState {
	state.Status = domain.StatusFailed
	state.ErrorMessage = msg
	return state
}

func stepError(status domain.Status, sentinel error) error {
	if status == domain.StatusFailed {
		return sentinel
	}
	return nil
}
