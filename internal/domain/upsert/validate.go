package upsert

import (
	"regexp"
	"strings"

	"staffdesk/internal/domain/roster"
)

// FailureCode identifies why a draft was rejected. All failures are
// user-correctable; none mutate the collection.
type FailureCode string

const (
	FailureNone            FailureCode = ""
	FailureMissingRequired FailureCode = "missing_required_field"
	FailureInvalidEmail    FailureCode = "invalid_email"
	FailureInvalidPhone    FailureCode = "invalid_phone"
	FailureDuplicateEmail  FailureCode = "duplicate_email"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,}$`)
)

// Validate checks a draft against the current collection. Department and
// position are chosen from closed select lists in the UI, so only the free
// text and date fields are validated here.
func Validate(draft roster.Employee, existing []roster.Employee) FailureCode {
	if strings.TrimSpace(draft.FirstName) == "" ||
		strings.TrimSpace(draft.LastName) == "" ||
		strings.TrimSpace(draft.EmploymentDate) == "" ||
		strings.TrimSpace(draft.BirthDate) == "" ||
		strings.TrimSpace(draft.Phone) == "" ||
		strings.TrimSpace(draft.Email) == "" {
		return FailureMissingRequired
	}

	if !emailPattern.MatchString(draft.Email) {
		return FailureInvalidEmail
	}
	if !phonePattern.MatchString(draft.Phone) {
		return FailureInvalidPhone
	}

	for _, emp := range existing {
		if emp.ID != draft.ID && strings.EqualFold(emp.Email, draft.Email) {
			return FailureDuplicateEmail
		}
	}
	return FailureNone
}
