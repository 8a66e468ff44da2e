package ports

import "go.trai.ch/nbreq/internal/core/domain"

// StatusObserver is notified whenever a workflow changes status.
// The state passed in is a copy owned by the observer.
type StatusObserver interface {
	OnStatus(state domain.WorkflowState)
}

// StatusObserverFunc adapts a function to StatusObserver.
type StatusObserverFunc func(state domain.WorkflowState)

// OnStatus calls f(state).
func (f StatusObserverFunc) OnStatus(state domain.WorkflowState) {
	f(state)
}
