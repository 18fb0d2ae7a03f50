package rosterhandler

import (
	"bytes"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"staffdesk/internal/transport/http/api"
	"staffdesk/internal/transport/http/middleware"
)

var exportColumns = []struct {
	path     string
	fallback string
	width    float64
}{
	{"table.firstName", "First Name", 30},
	{"table.lastName", "Last Name", 30},
	{"table.employmentDate", "Employment Date", 35},
	{"table.birthDate", "Birth Date", 30},
	{"table.phone", "Phone", 40},
	{"table.email", "Email", 60},
	{"table.department", "Department", 30},
	{"table.position", "Position", 25},
}

// handleExportPDF renders the whole roster, not just the current page, as a
// landscape PDF table with headers in the active language.
func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 10, translate(h.App.Localize("navbar.employees", "Employees")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range exportColumns {
		pdf.CellFormat(col.width, 7, translate(h.App.Localize(col.path, col.fallback)), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, emp := range h.App.Employees() {
		values := []string{
			emp.FirstName, emp.LastName, emp.EmploymentDate, emp.BirthDate,
			emp.Phone, emp.Email, emp.Department, emp.Position,
		}
		for i, value := range values {
			pdf.CellFormat(exportColumns[i].width, 7, translate(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render roster PDF", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
