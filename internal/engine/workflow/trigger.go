package workflow

import (
	"fmt"

	"go.trai.ch/nbreq/internal/core/domain"
)

// Trigger is a user action fed to the workflow.
// The set of triggers is closed; every trigger is declared in this file.
type Trigger interface {
	fmt.Stringer
	trigger()
}

// AddRow starts a new, empty package row.
type AddRow struct{}

// EditDraftRow reopens an unsaved row for editing.
type EditDraftRow struct {
	Name string
}

// EditSavedRow moves a saved package back into the draft.
type EditSavedRow struct {
	Name    string
	Version string
}

// StoreRow commits the row being edited.
type StoreRow struct {
	Name    string
	Version string
}

// DeleteDraftRow removes an unsaved row.
type DeleteDraftRow struct {
	Name string
}

// DeleteSavedRow removes a saved package.
type DeleteSavedRow struct {
	Name string
}

// Save merges the draft into the saved packages and persists them.
type Save struct{}

// Lock locks and installs the saved requirements.
type Lock struct{}

// Acknowledge dismisses a failure, or the completion report of a successful install.
type Acknowledge struct{}

// SetKernelName selects the kernel the requirements are installed into.
type SetKernelName struct {
	Name string
}

// SetRecommendationType selects the recommendation type used by the primary resolver.
type SetRecommendationType struct {
	Type domain.RecommendationType
}

func (AddRow) trigger()                {}
func (EditDraftRow) trigger()          {}
func (EditSavedRow) trigger()          {}
func (StoreRow) trigger()              {}
func (DeleteDraftRow) trigger()        {}
func (DeleteSavedRow) trigger()        {}
func (Save) trigger()                  {}
func (Lock) trigger()                  {}
func (Acknowledge) trigger()           {}
func (SetKernelName) trigger()         {}
func (SetRecommendationType) trigger() {}

func (AddRow) String() string           { return "add-row" }
func (t EditDraftRow) String() string   { return "edit-draft-row(" + t.Name + ")" }
func (t EditSavedRow) String() string   { return "edit-saved-row(" + t.Name + ")" }
func (t StoreRow) String() string       { return "store-row(" + t.Name + ")" }
func (t DeleteDraftRow) String() string { return "delete-draft-row(" + t.Name + ")" }
func (t DeleteSavedRow) String() string { return "delete-saved-row(" + t.Name + ")" }
func (Save) String() string             { return "save" }
func (Lock) String() string             { return "lock" }
func (Acknowledge) String() string      { return "acknowledge" }
func (t SetKernelName) String() string  { return "set-kernel-name(" + t.Name + ")" }

func (t SetRecommendationType) String() string {
	return "set-recommendation-type(" + string(t.Type) + ")"
}
