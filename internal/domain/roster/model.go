package roster

// Employee is a single record in the roster. Dates are display strings in
// DD/MM/YYYY form; conversion to the date-input format happens at the edit
// boundary, not here.
type Employee struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	EmploymentDate string `json:"employmentDate"`
	BirthDate      string `json:"birthDate"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Position       string `json:"position"`
}
