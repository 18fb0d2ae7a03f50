package upsert

import "strings"

// ToInputDate converts a stored DD/MM/YYYY date to the YYYY-MM-DD form the
// date input expects. Strings already containing '-' are assumed to be in
// input form and pass through unchanged, which makes the conversion
// idempotent. Anything unrecognized passes through as-is.
func ToInputDate(date string) string {
	if date == "" {
		return ""
	}
	if strings.Contains(date, "-") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
}

// FromInputDate converts a YYYY-MM-DD date-input value back to the stored
// DD/MM/YYYY form. Non-input strings pass through unchanged.
func FromInputDate(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func pad2(value string) string {
	if len(value) == 1 {
		return "0" + value
	}
	return value
}
