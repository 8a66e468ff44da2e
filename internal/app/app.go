// Package app implements the application layer for nbreq.
package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/engine/workflow"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App runs requirements workflows on notebook documents.
type App struct {
	opener    ports.DocumentOpener
	factory   *workflow.Factory
	journal   ports.LockJournal
	telemetry ports.Telemetry
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App instance.
func New(
	opener ports.DocumentOpener,
	factory *workflow.Factory,
	journal ports.LockJournal,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		opener:    opener,
		factory:   factory,
		journal:   journal,
		telemetry: telemetry,
		logger:    logger,
		out:       os.Stdout,
	}
}

// WithOutput sets the writer status updates are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// InstallOptions configures an installation.
type InstallOptions struct {
	// KernelName overrides the kernel recorded in the notebook.
	KernelName string
	// RecommendationType overrides the configured recommendation type.
	RecommendationType string
}

// Status reconciles the notebook and returns its state without changing it.
func (a *App) Status(ctx context.Context, path string) (domain.WorkflowState, error) {
	return a.run(ctx, path, func(_ context.Context, _ *workflow.Machine, state domain.WorkflowState) (domain.WorkflowState, error) {
		return state, nil
	})
}

// Add declares packages in the notebook, replacing the version of packages
// that are already declared, and saves the notebook.
func (a *App) Add(ctx context.Context, path string, packages domain.PackageMap) (domain.WorkflowState, error) {
	if len(packages) == 0 {
		return domain.WorkflowState{}, zerr.Wrap(domain.ErrNoRequirements, "no packages to add")
	}

	return a.run(ctx, path, func(ctx context.Context, m *workflow.Machine, state domain.WorkflowState) (domain.WorkflowState, error) {
		var err error
		for _, name := range slices.Sorted(maps.Keys(packages)) {
			version := packages[name]
			if version == "" {
				version = domain.AnyVersion
			}

			if stored, saved := state.Saved.Lookup(name); saved {
				state, err = m.Fire(ctx, workflow.EditSavedRow{Name: stored, Version: version})
				if err != nil {
					return state, err
				}
				continue
			}

			if state, err = m.Fire(ctx, workflow.AddRow{}); err != nil {
				return state, err
			}
			if state, err = m.Fire(ctx, workflow.StoreRow{Name: name, Version: version}); err != nil {
				return state, err
			}
		}
		return m.Fire(ctx, workflow.Save{})
	})
}

// Remove deletes declared packages from the notebook and saves it. Removing
// every declared package is rejected since it would leave nothing to save.
func (a *App) Remove(ctx context.Context, path string, names []string) (domain.WorkflowState, error) {
	if len(names) == 0 {
		return domain.WorkflowState{}, zerr.Wrap(domain.ErrNoRequirements, "no packages to remove")
	}

	return a.run(ctx, path, func(ctx context.Context, m *workflow.Machine, state domain.WorkflowState) (domain.WorkflowState, error) {
		stored := make([]string, 0, len(names))
		for _, name := range names {
			key, ok := state.Saved.Lookup(name)
			if !ok {
				return state, zerr.With(zerr.Wrap(domain.ErrPackageNotDeclared, "cannot remove package"), "package", name)
			}
			stored = append(stored, key)
		}

		var err error
		for _, name := range stored {
			if state, err = m.Fire(ctx, workflow.DeleteSavedRow{Name: name}); err != nil {
				return state, err
			}
		}
		if state.Status == domain.StatusNoReqsToSave {
			return state, zerr.Wrap(domain.ErrNoRequirements, "removing every package leaves nothing to save")
		}
		return m.Fire(ctx, workflow.Save{})
	})
}

// Install locks the declared requirements, installs them and provisions the
// kernel. A notebook whose requirements are already installed is left as is.
func (a *App) Install(ctx context.Context, path string, opts InstallOptions) (domain.WorkflowState, error) {
	return a.run(ctx, path, func(ctx context.Context, m *workflow.Machine, state domain.WorkflowState) (domain.WorkflowState, error) {
		var err error
		if opts.KernelName != "" {
			if state, err = m.Fire(ctx, workflow.SetKernelName{Name: opts.KernelName}); err != nil {
				return state, err
			}
		}
		if opts.RecommendationType != "" {
			trigger := workflow.SetRecommendationType{Type: domain.RecommendationType(opts.RecommendationType)}
			if state, err = m.Fire(ctx, trigger); err != nil {
				return state, err
			}
		}

		switch state.Status {
		case domain.StatusStable:
			return state, nil
		case domain.StatusInitial, domain.StatusNoReqsToSave:
			return state, zerr.Wrap(domain.ErrNoRequirements, "add a package before installing")
		}

		if state, err = m.Fire(ctx, workflow.Lock{}); err != nil {
			return state, err
		}
		if state.Status == domain.StatusReady {
			return m.Fire(ctx, workflow.Acknowledge{})
		}
		return state, nil
	})
}

// History returns the recorded locks, oldest first.
func (a *App) History() ([]domain.LockRecord, error) {
	entries, err := a.journal.Entries()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lock journal")
	}
	return entries, nil
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

type step func(ctx context.Context, m *workflow.Machine, state domain.WorkflowState) (domain.WorkflowState, error)

// run opens the notebook, starts a workflow on it and runs fn while status
// changes are printed. A workflow ending in failed is reported as an error.
func (a *App) run(ctx context.Context, path string, fn step) (domain.WorkflowState, error) {
	doc, err := a.opener.Open(path)
	if err != nil {
		return domain.WorkflowState{}, zerr.Wrap(err, "failed to open notebook")
	}

	updates := make(chan domain.WorkflowState, 16)
	m := a.factory.New(doc, workflow.WithObserver(ports.StatusObserverFunc(func(state domain.WorkflowState) {
		updates <- state
	})))
	a.logger.Debug(fmt.Sprintf("session %s for %s", m.SessionID(), path))

	var final domain.WorkflowState
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(updates)

		state, err := m.Start(gctx)
		if err == nil && state.Status != domain.StatusFailed {
			state, err = fn(gctx, m, state)
		}
		final = state
		if err != nil {
			return err
		}
		if state.Status == domain.StatusFailed || state.Status == domain.StatusFailedNoReqs {
			return zerr.With(zerr.Wrap(domain.ErrWorkflowFailed, state.ErrorMessage), "status", state.Status.String())
		}
		return nil
	})
	g.Go(func() error {
		a.printStatus(updates)
		return nil
	})

	err = g.Wait()
	return final, err
}

func (a *App) printStatus(updates <-chan domain.WorkflowState) {
	last := domain.Status(-1)
	for state := range updates {
		if state.Status == last {
			continue
		}
		last = state.Status
		_, _ = fmt.Fprintf(a.out, "%-34s %s\n", state.Status, state.Status.Description())
	}
}
