package ports

import "go.trai.ch/nbreq/internal/core/domain"

// LockJournal records successful locks.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type LockJournal interface {
	// Record appends a lock record.
	Record(record domain.LockRecord) error

	// Entries returns all records, oldest first.
	Entries() ([]domain.LockRecord, error)
}
