package upsert

import (
	"fmt"

	"staffdesk/internal/domain/roster"
)

// Mode is the workflow's modal state.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdd
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Workflow owns the transient draft while the add/edit modal is open. The
// draft is a value copy; edits never leak into the committed collection
// before Commit, and Cancel discards them outright.
type Workflow struct {
	store       *roster.Store
	mode        Mode
	originalID  int
	draft       roster.Employee
	lastFailure FailureCode
}

func NewWorkflow(store *roster.Store) *Workflow {
	return &Workflow{store: store}
}

// Open transitions Closed -> Open. With an existing employee the workflow
// enters edit mode and seeds the draft from a copy of that record; with nil
// it enters add mode with an empty draft. The final id in add mode is the
// store's to assign at commit.
func (w *Workflow) Open(existing *roster.Employee) {
	w.lastFailure = FailureNone
	if existing != nil {
		w.mode = ModeEdit
		w.originalID = existing.ID
		w.draft = *existing
		return
	}
	w.mode = ModeAdd
	w.originalID = 0
	w.draft = roster.Employee{}
}

// SetField mutates one field of the draft. Date fields arrive in the date
// input's YYYY-MM-DD form and are stored as DD/MM/YYYY.
func (w *Workflow) SetField(field, value string) error {
	if w.mode == ModeClosed {
		return fmt.Errorf("upsert: no open draft")
	}
	switch field {
	case "firstName":
		w.draft.FirstName = value
	case "lastName":
		w.draft.LastName = value
	case "employmentDate":
		w.draft.EmploymentDate = FromInputDate(value)
	case "birthDate":
		w.draft.BirthDate = FromInputDate(value)
	case "phone":
		w.draft.Phone = value
	case "email":
		w.draft.Email = value
	case "department":
		w.draft.Department = value
	case "position":
		w.draft.Position = value
	default:
		return fmt.Errorf("upsert: unknown field %q", field)
	}
	return nil
}

// Commit validates the draft and, on success, writes it to the store (add or
// update per the open mode) and closes the workflow. On failure the workflow
// stays open, the store is untouched, and the failure code is retained for
// the snapshot.
func (w *Workflow) Commit() (roster.Employee, FailureCode) {
	if w.mode == ModeClosed {
		return roster.Employee{}, FailureNone
	}

	if code := Validate(w.draft, w.store.List()); code != FailureNone {
		w.lastFailure = code
		return roster.Employee{}, code
	}

	var committed roster.Employee
	if w.mode == ModeEdit {
		w.draft.ID = w.originalID
		w.store.Update(w.draft)
		committed = w.draft
	} else {
		committed = w.store.Add(w.draft)
	}
	w.reset()
	return committed, FailureNone
}

// Cancel discards the draft unconditionally and closes the workflow.
func (w *Workflow) Cancel() {
	w.reset()
}

// Mode reports the current modal state.
func (w *Workflow) Mode() Mode {
	return w.mode
}

// Draft returns the current draft value.
func (w *Workflow) Draft() roster.Employee {
	return w.draft
}

// LastFailure returns the most recent validation failure, cleared on the
// next Open or successful Commit.
func (w *Workflow) LastFailure() FailureCode {
	return w.lastFailure
}

func (w *Workflow) reset() {
	w.mode = ModeClosed
	w.originalID = 0
	w.draft = roster.Employee{}
	w.lastFailure = FailureNone
}
