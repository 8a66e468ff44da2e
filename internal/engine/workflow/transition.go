package workflow

import (
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/zerr"
)

// Transition is the result of applying a trigger to a state.
type Transition struct {
	// Next is the state the workflow enters.
	Next domain.WorkflowState
	// Persist, when set, is written to the document's requirements.
	Persist *domain.RequirementsSpec
	// Flush saves the document to disk after Persist is written.
	Flush bool
}

// Apply computes the transition caused by t in state. It never mutates state
// and has no side effects. Triggers not accepted in the current status return
// an error matching domain.ErrInvalidTransition.
func Apply(state domain.WorkflowState, t Trigger) (Transition, error) {
	next := state.Clone()

	switch t := t.(type) {
	case AddRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		if state.Draft.HasPlaceholder() {
			return Transition{}, zerr.With(zerr.Wrap(domain.ErrDraftRowExists, "cannot add row"), "status", state.Status.String())
		}
		next.Draft = domain.AddDraftRow(state.Draft)
		return editing(next), nil

	case EditDraftRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		next.Draft = domain.BeginEditDraft(state.Draft, t.Name)
		return editing(next), nil

	case EditSavedRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		next.Saved, next.Draft = domain.BeginEditSaved(state.Saved, state.Draft, t.Name, t.Version)
		return editing(next), nil

	case StoreRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		next.Draft = domain.CommitDraftRow(state.Draft, t.Name, t.Version)
		return editing(next), nil

	case DeleteDraftRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		next.Draft = domain.DiscardDraftRow(state.Draft, t.Name)
		return afterDelete(next), nil

	case DeleteSavedRow:
		if !editable(state.Status) {
			return Transition{}, invalid(state, t)
		}
		next.Saved = domain.DiscardSavedRow(state.Saved, t.Name)
		return afterDelete(next), nil

	case Save:
		if state.Status != domain.StatusEditing {
			return Transition{}, invalid(state, t)
		}
		return save(next), nil

	case Lock:
		switch state.Status {
		case domain.StatusSaved, domain.StatusOnlyInstall, domain.StatusOnlyInstallKernel:
			next.Status = domain.StatusLockingRequirements
			next.ErrorMessage = ""
			return Transition{Next: next}, nil
		default:
			return Transition{}, invalid(state, t)
		}

	case Acknowledge:
		switch state.Status {
		case domain.StatusFailed, domain.StatusFailedNoReqs:
			next.Status = domain.StatusLoading
			next.Draft = domain.PackageMap{}
			next.Saved = domain.PackageMap{}
			next.Installed = domain.PackageMap{}
			next.ErrorMessage = ""
			return Transition{Next: next}, nil
		case domain.StatusReady:
			next.Status = domain.StatusStable
			return Transition{Next: next}, nil
		default:
			return Transition{}, invalid(state, t)
		}

	case SetKernelName:
		if !Quiescent(state.Status) {
			return Transition{}, invalid(state, t)
		}
		if err := domain.ValidateKernelName(t.Name); err != nil {
			return Transition{}, err
		}
		next.KernelName = t.Name
		return Transition{Next: next}, nil

	case SetRecommendationType:
		if !Quiescent(state.Status) {
			return Transition{}, invalid(state, t)
		}
		rt, err := domain.ParseRecommendationType(string(t.Type))
		if err != nil {
			return Transition{}, err
		}
		next.RecommendationType = rt
		return Transition{Next: next}, nil
	}

	return Transition{}, invalid(state, t)
}

// save implements the Save trigger from editing.
func save(next domain.WorkflowState) Transition {
	merged := domain.MergeForSave(next.Saved, next.Draft)
	requirements := next.Requirements.WithPackages(merged)

	if len(merged) == 0 {
		next.Status = domain.StatusFailedNoReqs
		return Transition{Next: next, Persist: &requirements}
	}

	next.Draft = domain.PackageMap{}
	next.Saved = merged
	next.Requirements = requirements
	if merged.Equal(next.Installed) {
		next.Status = domain.StatusStable
	} else {
		next.Status = domain.StatusSaved
	}
	return Transition{Next: next, Persist: &requirements, Flush: true}
}

func editing(next domain.WorkflowState) Transition {
	next.Status = domain.StatusEditing
	next.ErrorMessage = ""
	return Transition{Next: next}
}

// afterDelete enters editing, or no_reqs_to_save once nothing is left.
func afterDelete(next domain.WorkflowState) Transition {
	tr := editing(next)
	if len(tr.Next.Saved) == 0 && len(tr.Next.Draft) == 0 {
		tr.Next.Status = domain.StatusNoReqsToSave
	}
	return tr
}

// editable reports whether package rows may be changed in s.
func editable(s domain.Status) bool {
	switch s {
	case domain.StatusInitial,
		domain.StatusNoReqsToSave,
		domain.StatusOnlyInstall,
		domain.StatusOnlyInstallKernel,
		domain.StatusEditing,
		domain.StatusSaved,
		domain.StatusStable:
		return true
	default:
		return false
	}
}

// Quiescent reports whether s waits for a user trigger rather than running
// an on-enter hook.
func Quiescent(s domain.Status) bool {
	switch s {
	case domain.StatusInitial,
		domain.StatusOnlyInstall,
		domain.StatusOnlyInstallKernel,
		domain.StatusNoReqsToSave,
		domain.StatusEditing,
		domain.StatusSaved,
		domain.StatusFailedNoReqs,
		domain.StatusFailed,
		domain.StatusStable:
		return true
	default:
		return false
	}
}

func invalid(state domain.WorkflowState, t Trigger) error {
	err := zerr.Wrap(domain.ErrInvalidTransition, "trigger not accepted")
	err = zerr.With(err, "trigger", t.String())
	return zerr.With(err, "status", state.Status.String())
}
