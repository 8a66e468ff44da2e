// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/nbreq/internal/core/domain"

// Document is the notebook whose metadata holds the requirements, the lock and
// the resolver configuration. Setters only change the in-memory metadata;
// Save writes the document to disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type Document interface {
	// Path returns the location of the document on disk.
	Path() string

	// Requirements returns the persisted requirements, or nil if there are none.
	Requirements() (*domain.RequirementsSpec, error)

	// RequirementsLock returns the persisted lock, or nil if there is none.
	RequirementsLock() (domain.LockedRequirements, error)

	// KernelName returns the kernel recorded in the document, or "" if none.
	KernelName() string

	// PythonVersion returns the Python version of the document's language info.
	PythonVersion() string

	SetRequirements(spec domain.RequirementsSpec)
	SetRequirementsLock(lock domain.LockedRequirements)
	SetResolverConfig(cfg domain.ResolverConfig)
	SetKernelName(name string)

	// Save persists the document to disk.
	Save() error
}

// DocumentOpener opens notebook documents.
type DocumentOpener interface {
	Open(path string) (Document, error)
}
