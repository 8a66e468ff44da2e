package domain

import "go.trai.ch/zerr"

// Status is the position of a requirements workflow.
type Status int

// The zero value is StatusLoading, the initial status of every workflow.
const (
	StatusLoading Status = iota
	StatusInitial
	StatusOnlyInstall
	StatusOnlyInstallKernel
	StatusNoReqsToSave
	StatusEditing
	StatusSaved
	StatusFailedNoReqs
	StatusLockingRequirements
	StatusLockingRequirementsUsingPipenv
	StatusInstallingRequirements
	StatusSettingKernel
	StatusFailed
	StatusStable
	StatusReady
)

var statusNames = [...]string{
	StatusLoading:                        "loading",
	StatusInitial:                        "initial",
	StatusOnlyInstall:                    "only_install",
	StatusOnlyInstallKernel:              "only_install_kernel",
	StatusNoReqsToSave:                   "no_reqs_to_save",
	StatusEditing:                        "editing",
	StatusSaved:                          "saved",
	StatusFailedNoReqs:                   "failed_no_reqs",
	StatusLockingRequirements:            "locking_requirements",
	StatusLockingRequirementsUsingPipenv: "locking_requirements_using_pipenv",
	StatusInstallingRequirements:         "installing_requirements",
	StatusSettingKernel:                  "setting_kernel",
	StatusFailed:                         "failed",
	StatusStable:                         "stable",
	StatusReady:                          "ready",
}

var statusDescriptions = [...]string{
	StatusLoading:                        "Loading...",
	StatusInitial:                        "No dependencies found! Add a package to start.",
	StatusOnlyInstall:                    "Dependencies found in notebook metadata but lock file is missing.",
	StatusOnlyInstallKernel:              "Pinned down software stack found in notebook metadata! The kernel selected does not match the dependencies found for the notebook. Please install them.",
	StatusNoReqsToSave:                   "Dependencies missing! Add a package to start.",
	StatusEditing:                        "Editing requirements.",
	StatusSaved:                          "Requirements saved. Install them to lock and create the kernel.",
	StatusFailedNoReqs:                   "No requirements have been added, please add a package before saving!",
	StatusLockingRequirements:            "Contacting thoth for advise... please be patient!",
	StatusLockingRequirementsUsingPipenv: "Thoth resolution engine failed... pipenv will be used to lock and install dependencies!",
	StatusInstallingRequirements:         "Requirements locked and saved! Installing new requirements...",
	StatusSettingKernel:                  "Requirements installed! Setting new kernel for your notebook...",
	StatusFailed:                         "Failed.",
	StatusStable:                         "Everything installed and ready to use!",
	StatusReady:                          "Requirements locked and saved! Requirements installed! New kernel created!",
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i := range statusNames {
		out[i] = Status(i)
	}
	return out
}

// String returns the wire name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Description returns the user-facing message for the status.
func (s Status) Description() string {
	if s < 0 || int(s) >= len(statusDescriptions) {
		return ""
	}
	return statusDescriptions[s]
}

// ParseStatus converts a wire name back to a Status.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownStatus, "failed to parse status"), "value", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
