package locking

import "time"

// SetClock replaces the clock used to timestamp lock records.
// This is exported for testing purposes only.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}
