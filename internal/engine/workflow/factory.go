package workflow

import (
	"github.com/google/uuid"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/engine/install"
	"go.trai.ch/nbreq/internal/engine/locking"
	"go.trai.ch/nbreq/internal/engine/startup"
)

// Factory builds one Machine per document session.
type Factory struct {
	reconciler *startup.Reconciler
	locker     *locking.Orchestrator
	pipeline   *install.Pipeline
	telemetry  ports.Telemetry
	logger     ports.Logger

	kernelName         string
	recommendationType domain.RecommendationType
}

// NewFactory creates a new Factory. An empty kernelName or recommendation
// type falls back to the domain defaults.
func NewFactory(
	reconciler *startup.Reconciler,
	locker *locking.Orchestrator,
	pipeline *install.Pipeline,
	telemetry ports.Telemetry,
	logger ports.Logger,
	kernelName string,
	recommendationType domain.RecommendationType,
) *Factory {
	if kernelName == "" {
		kernelName = domain.DefaultKernelName
	}
	if recommendationType == "" {
		recommendationType = domain.DefaultRecommendationType
	}
	return &Factory{
		reconciler:         reconciler,
		locker:             locker,
		pipeline:           pipeline,
		telemetry:          telemetry,
		logger:             logger,
		kernelName:         kernelName,
		recommendationType: recommendationType,
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithSessionSwitcher replaces the switcher used when entering ready.
func WithSessionSwitcher(s ports.SessionSwitcher) Option {
	return func(m *Machine) {
		m.switcher = s
	}
}

// WithObserver registers a status observer.
func WithObserver(o ports.StatusObserver) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, o)
	}
}

// WithKernelName overrides the kernel name used until the document names one.
func WithKernelName(name string) Option {
	return func(m *Machine) {
		if name != "" {
			m.state.KernelName = name
		}
	}
}

// WithRecommendationType overrides the initial recommendation type.
func WithRecommendationType(rt domain.RecommendationType) Option {
	return func(m *Machine) {
		if rt != "" {
			m.state.RecommendationType = rt
		}
	}
}

// New creates a Machine for doc in the loading status. Call Start to run the
// startup reconciliation.
func (f *Factory) New(doc ports.Document, opts ...Option) *Machine {
	state := domain.NewWorkflowState(doc.PythonVersion())
	state.KernelName = f.kernelName
	state.RecommendationType = f.recommendationType

	m := &Machine{
		sessionID:  uuid.NewString(),
		doc:        doc,
		switcher:   install.NewMetadataSwitcher(doc),
		reconciler: f.reconciler,
		locker:     f.locker,
		pipeline:   f.pipeline,
		telemetry:  f.telemetry,
		logger:     f.logger,
		state:      state,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
