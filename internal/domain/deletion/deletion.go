// Package deletion gates employee removal behind an explicit confirmation
// step, mirroring the table's delete dialog.
package deletion

import "staffdesk/internal/domain/roster"

// Workflow is Idle until Request arms it with a target id; Confirm removes
// the target, Cancel discards it. Either way the workflow returns to Idle.
type Workflow struct {
	store   *roster.Store
	target  int
	pending bool
}

func NewWorkflow(store *roster.Store) *Workflow {
	return &Workflow{store: store}
}

// Request arms the workflow with the employee to delete.
func (w *Workflow) Request(id int) {
	w.target = id
	w.pending = true
}

// Confirm removes the pending target, if any, and reports whether a removal
// was dispatched. Removing an id that is already gone is a store-level no-op.
func (w *Workflow) Confirm() bool {
	if !w.pending {
		return false
	}
	w.store.Remove(w.target)
	w.reset()
	return true
}

// Cancel discards the pending target.
func (w *Workflow) Cancel() {
	w.reset()
}

// Pending returns the armed target id, if one is set.
func (w *Workflow) Pending() (int, bool) {
	return w.target, w.pending
}

func (w *Workflow) reset() {
	w.target = 0
	w.pending = false
}
