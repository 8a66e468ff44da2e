package domain

import "time"

// Resolver names recorded in lock records.
const (
	ResolverThoth  = "thoth"
	ResolverPipenv = "pipenv"
)

// LockRecord describes one successful locking of a notebook's requirements.
type LockRecord struct {
	SessionID   string    `json:"session_id,omitzero"`
	KernelName  string    `json:"kernel_name,omitzero"`
	Resolver    string    `json:"resolver,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Requested   int       `json:"requested,omitzero"`
	Locked      int       `json:"locked,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
