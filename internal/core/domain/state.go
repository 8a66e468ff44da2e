package domain

const (
	// DefaultKernelName is used until the notebook or the user names a kernel.
	DefaultKernelName = "jupyterlab_requirements"

	// DefaultRecommendationType is the recommendation type of a fresh workflow.
	DefaultRecommendationType = RecommendationLatest
)

// Fixed diagnostics reported when the workflow fails.
const (
	MsgResolutionExhausted = "No resolution engine was able to install dependendices, please contact Thoth team."
	MsgInstallFailed       = "Error install dependencies in the new virtual environment, please contact Thoth team."
	MsgKernelFailed        = "Error setting new environment in a jupyter kernel, please contact Thoth team."
	MsgKernelSwitchFailed  = "Error switching the notebook session to the new kernel, please contact Thoth team."
	MsgDiscoveryFailed     = "Error discovering packages installed in the kernel, please contact Thoth team."
	MsgStartupFailed       = "Error reading requirements from the notebook metadata, please contact Thoth team."
)

// WorkflowState is the complete state of one requirements workflow session.
// It is a value: transitions return a new state instead of mutating one.
type WorkflowState struct {
	Status             Status
	Draft              PackageMap
	Saved              PackageMap
	Installed          PackageMap
	Requirements       RequirementsSpec
	KernelName         string
	RecommendationType RecommendationType
	ErrorMessage       string
}

// NewWorkflowState returns the state of a workflow about to load pythonVersion requirements.
func NewWorkflowState(pythonVersion string) WorkflowState {
	return WorkflowState{
		Status:             StatusLoading,
		Draft:              PackageMap{},
		Saved:              PackageMap{},
		Installed:          PackageMap{},
		Requirements:       NewRequirementsSpec(pythonVersion),
		KernelName:         DefaultKernelName,
		RecommendationType: DefaultRecommendationType,
	}
}

// Clone returns a deep copy of the state.
func (s WorkflowState) Clone() WorkflowState {
	out := s
	out.Draft = s.Draft.Clone()
	out.Saved = s.Saved.Clone()
	out.Installed = s.Installed.Clone()
	out.Requirements = s.Requirements.Clone()
	return out
}
