package install

import (
	"context"

	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// MetadataSwitcher switches the notebook session by recording the kernel in
// the document metadata and saving it.
type MetadataSwitcher struct {
	doc ports.Document
}

// NewMetadataSwitcher creates a switcher bound to doc.
func NewMetadataSwitcher(doc ports.Document) *MetadataSwitcher {
	return &MetadataSwitcher{doc: doc}
}

// SwitchKernel implements ports.SessionSwitcher.
func (s *MetadataSwitcher) SwitchKernel(ctx context.Context, kernelName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.doc.SetKernelName(kernelName)
	if err := s.doc.Save(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save document"), "document", s.doc.Path())
	}
	return nil
}
