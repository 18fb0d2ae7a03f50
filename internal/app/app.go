// Package app owns the state container: the roster store, pagination cursor,
// language setting and the upsert/deletion workflows. Handlers receive an
// *App instead of reaching through globals, and every user intent is a method
// here, serialized under one lock the way the original's single event thread
// serialized them.
package app

import (
	"sync"

	"staffdesk/internal/domain/deletion"
	"staffdesk/internal/domain/language"
	"staffdesk/internal/domain/pagination"
	"staffdesk/internal/domain/roster"
	"staffdesk/internal/domain/upsert"
	"staffdesk/internal/platform/config"
	"staffdesk/internal/platform/i18n"
)

// draftFields is the canonical application order for upsert field writes.
var draftFields = []string{
	"firstName", "lastName", "employmentDate", "birthDate",
	"phone", "email", "department", "position",
}

type App struct {
	mu       sync.Mutex
	cfg      config.Config
	catalog  *i18n.Catalog
	store    *roster.Store
	cursor   *pagination.Cursor
	lang     *language.Setting
	upsert   *upsert.Workflow
	deletion *deletion.Workflow
}

// New builds an App seeded with the fixed startup dataset.
func New(cfg config.Config, catalog *i18n.Catalog) *App {
	return NewWithSeed(cfg, catalog, roster.Seed())
}

// NewWithSeed builds an App over an arbitrary seed collection.
func NewWithSeed(cfg config.Config, catalog *i18n.Catalog, seed []roster.Employee) *App {
	store := roster.NewStore(seed)
	cursor := pagination.NewCursor(cfg.ItemsPerPage)

	a := &App{
		cfg:      cfg,
		catalog:  catalog,
		store:    store,
		cursor:   cursor,
		lang:     language.NewSetting(cfg.DefaultLanguage),
		upsert:   upsert.NewWorkflow(store),
		deletion: deletion.NewWorkflow(store),
	}

	// Any collection-size change may invalidate the current page.
	store.Subscribe(func() {
		cursor.Clamp(pagination.TotalPages(store.Len(), cursor.ItemsPerPage()))
	})
	return a
}

// OpenUpsertModal enters add mode (id nil) or edit mode. It reports false
// when the edit target is absent; the view degrades to a not-found state
// instead of failing hard.
func (a *App) OpenUpsertModal(id *int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id == nil {
		a.upsert.Open(nil)
		return true
	}
	existing, ok := a.store.Get(*id)
	if !ok {
		return false
	}
	a.upsert.Open(&existing)
	return true
}

// UpdateField forwards a single field edit into the open draft.
func (a *App) UpdateField(field, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.upsert.SetField(field, value)
}

// SaveEmployee commits the open draft.
func (a *App) SaveEmployee() (roster.Employee, upsert.FailureCode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.upsert.Commit()
}

// CloseModal cancels the upsert workflow, discarding the draft.
func (a *App) CloseModal() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.upsert.Cancel()
}

// SubmitAdd runs a full add-mode upsert session atomically: open, apply
// fields, commit. On validation failure the session is cancelled so no modal
// state lingers, and the failure code is returned.
func (a *App) SubmitAdd(fields map[string]string) (roster.Employee, upsert.FailureCode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.upsert.Open(nil)
	return a.applyAndCommit(fields)
}

// SubmitEdit runs a full edit-mode upsert session atomically. The second
// return reports whether the target exists.
func (a *App) SubmitEdit(id int, fields map[string]string) (roster.Employee, upsert.FailureCode, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	existing, ok := a.store.Get(id)
	if !ok {
		return roster.Employee{}, upsert.FailureNone, false
	}
	a.upsert.Open(&existing)
	committed, code := a.applyAndCommit(fields)
	return committed, code, true
}

func (a *App) applyAndCommit(fields map[string]string) (roster.Employee, upsert.FailureCode) {
	for _, field := range draftFields {
		value, ok := fields[field]
		if !ok {
			continue
		}
		// Fields are pre-filtered to the draft's own names.
		_ = a.upsert.SetField(field, value)
	}
	committed, code := a.upsert.Commit()
	if code != upsert.FailureNone {
		a.upsert.Cancel()
	}
	return committed, code
}

// OpenDeleteModal arms the delete workflow with a target id.
func (a *App) OpenDeleteModal(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deletion.Request(id)
}

// ConfirmDelete removes the pending target, if any.
func (a *App) ConfirmDelete() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deletion.Confirm()
}

// CloseDeleteModal discards the pending target.
func (a *App) CloseDeleteModal() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deletion.Cancel()
}

// DeleteEmployee arms and confirms the delete workflow in one step.
func (a *App) DeleteEmployee(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deletion.Request(id)
	a.deletion.Confirm()
}

// ChangePage moves the cursor; out-of-bounds requests are silently rejected.
func (a *App) ChangePage(requested int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := pagination.TotalPages(a.store.Len(), a.cursor.ItemsPerPage())
	return a.cursor.ChangePage(requested, total)
}

// SetLanguage switches the active language; unknown codes are rejected.
func (a *App) SetLanguage(code string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lang.Set(code)
}

// Language returns the active language code.
func (a *App) Language() string {
	return a.lang.Code()
}

// Employee looks up a single record, for the edit view.
func (a *App) Employee(id int) (roster.Employee, bool) {
	return a.store.Get(id)
}

// Employees returns the whole collection in display order.
func (a *App) Employees() []roster.Employee {
	return a.store.List()
}

// Localize resolves a display string through the catalog's fallback chain
// for the active language.
func (a *App) Localize(path, fallback string) string {
	return a.catalog.Lookup(a.lang.Code(), path, fallback)
}

// ModalState describes the upsert modal in a snapshot.
type ModalState struct {
	Open  bool             `json:"open"`
	Mode  string           `json:"mode"`
	Draft *roster.Employee `json:"draft,omitempty"`
}

// Snapshot is the read-only view the render layer consumes.
type Snapshot struct {
	Employees     []roster.Employee `json:"employees"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	PageWindow    []string          `json:"pageWindow"`
	ItemsPerPage  int               `json:"itemsPerPage"`
	TotalCount    int               `json:"totalCount"`
	Language      string            `json:"language"`
	Modal         ModalState        `json:"modal"`
	PendingDelete *int              `json:"pendingDelete,omitempty"`
	LastFailure   string            `json:"lastFailure,omitempty"`
}

// Snapshot derives the current view state: the page slice, pagination labels,
// language and the transient workflow states.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	list := a.store.List()
	perPage := a.cursor.ItemsPerPage()
	total := pagination.TotalPages(len(list), perPage)
	a.cursor.Clamp(total)
	page := a.cursor.CurrentPage()

	pageSlice := pagination.Slice(list, page, perPage)
	if pageSlice == nil {
		pageSlice = []roster.Employee{}
	}

	snap := Snapshot{
		Employees:    pageSlice,
		CurrentPage:  page,
		TotalPages:   total,
		PageWindow:   pagination.Window(total, page),
		ItemsPerPage: perPage,
		TotalCount:   len(list),
		Language:     a.lang.Code(),
		Modal:        ModalState{Mode: a.upsert.Mode().String()},
		LastFailure:  string(a.upsert.LastFailure()),
	}
	if a.upsert.Mode() != upsert.ModeClosed {
		draft := a.upsert.Draft()
		snap.Modal.Open = true
		snap.Modal.Draft = &draft
	}
	if target, ok := a.deletion.Pending(); ok {
		snap.PendingDelete = &target
	}
	return snap
}
