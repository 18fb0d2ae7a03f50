// Package rosterhandler exposes the employee views and the user intents the
// UI forwards: list and paginate, add, edit, delete, language switch, and the
// full state snapshot.
package rosterhandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staffdesk/internal/app"
	"staffdesk/internal/domain/upsert"
	"staffdesk/internal/transport/http/api"
	"staffdesk/internal/transport/http/middleware"
)

type Handler struct {
	App *app.App
}

func NewHandler(application *app.App) *Handler {
	return &Handler{App: application}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export.pdf", h.handleExportPDF)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
	r.Post("/page", h.handleChangePage)
	r.Post("/language", h.handleSetLanguage)
	r.Get("/state", h.handleState)
}

type employeePayload struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	EmploymentDate *string `json:"employmentDate"`
	BirthDate      *string `json:"birthDate"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Department     *string `json:"department"`
	Position       *string `json:"position"`
}

func (p employeePayload) fields() map[string]string {
	fields := map[string]string{}
	set := func(name string, value *string) {
		if value != nil {
			fields[name] = *value
		}
	}
	set("firstName", p.FirstName)
	set("lastName", p.LastName)
	set("employmentDate", p.EmploymentDate)
	set("birthDate", p.BirthDate)
	set("phone", p.Phone)
	set("email", p.Email)
	set("department", p.Department)
	set("position", p.Position)
	return fields
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		if requested, err := strconv.Atoi(raw); err == nil {
			// Out-of-bounds pages are silently rejected; the response
			// reports whichever page is actually current.
			h.App.ChangePage(requested)
		}
	}
	snap := h.App.Snapshot()
	api.Success(w, map[string]any{
		"employees":   snap.Employees,
		"currentPage": snap.CurrentPage,
		"totalPages":  snap.TotalPages,
		"pageWindow":  snap.PageWindow,
		"totalCount":  snap.TotalCount,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	emp, found := h.App.Employee(id)
	if !found {
		h.recordNotFound(w, r)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	added, code := h.App.SubmitAdd(payload.fields())
	if code != upsert.FailureNone {
		h.failValidation(w, r, code)
		return
	}
	api.Created(w, added, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	updated, code, found := h.App.SubmitEdit(id, payload.fields())
	if !found {
		h.recordNotFound(w, r)
		return
	}
	if code != upsert.FailureNone {
		h.failValidation(w, r, code)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	// Removing an absent id is a no-op; the store's fail-soft policy.
	h.App.DeleteEmployee(id)
	api.Success(w, map[string]any{"deleted": id, "totalCount": h.App.Snapshot().TotalCount}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleChangePage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	changed := h.App.ChangePage(payload.Page)
	snap := h.App.Snapshot()
	api.Success(w, map[string]any{
		"changed":     changed,
		"currentPage": snap.CurrentPage,
		"totalPages":  snap.TotalPages,
		"pageWindow":  snap.PageWindow,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return
	}

	if !h.App.SetLanguage(payload.Language) {
		message := h.App.Localize("errors.invalidLanguage", "Unsupported language.")
		api.Fail(w, http.StatusBadRequest, "invalid_language", message, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"language": h.App.Language()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.App.Snapshot(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be an integer", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return id, true
}

func (h *Handler) recordNotFound(w http.ResponseWriter, r *http.Request) {
	message := h.App.Localize("errors.recordNotFound", "Employee not found.")
	api.NotFound(w, "record_not_found", message, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failValidation(w http.ResponseWriter, r *http.Request, code upsert.FailureCode) {
	api.Fail(w, http.StatusBadRequest, string(code), h.failureMessage(code), middleware.GetRequestID(r.Context()))
}

// failureMessage resolves the localized pop-up text for a validation failure,
// with the original inline literals as the last fallback.
func (h *Handler) failureMessage(code upsert.FailureCode) string {
	switch code {
	case upsert.FailureMissingRequired:
		return h.App.Localize("modal.fillRequiredFields", "Please fill all required fields.")
	case upsert.FailureInvalidEmail:
		return h.App.Localize("modal.invalidEmail", "Please enter a valid email address.")
	case upsert.FailureInvalidPhone:
		return h.App.Localize("modal.invalidPhone", "Please enter a valid phone number.")
	case upsert.FailureDuplicateEmail:
		return h.App.Localize("modal.emailInUse", "This email is already in use by another employee.")
	default:
		return "validation failed"
	}
}
