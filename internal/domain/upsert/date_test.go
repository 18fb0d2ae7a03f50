package upsert

import "testing"

func TestToInputDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"23/09/2022", "2022-09-23"},
		{"5/1/2024", "2024-01-05"},
		{"2022-09-23", "2022-09-23"},
		{"", ""},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := ToInputDate(tc.in); got != tc.want {
			t.Fatalf("ToInputDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromInputDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2022-09-23", "23/09/2022"},
		{"", ""},
		{"23/09/2022", "23/09/2022"},
	}
	for _, tc := range cases {
		if got := FromInputDate(tc.in); got != tc.want {
			t.Fatalf("FromInputDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	stored := []string{"01/01/2020", "31/12/1999", "15/06/2023"}
	for _, date := range stored {
		if got := FromInputDate(ToInputDate(date)); got != date {
			t.Fatalf("storage round-trip broke %q, got %q", date, got)
		}
	}

	input := []string{"2020-01-01", "1999-12-31", "2023-06-15"}
	for _, date := range input {
		if got := ToInputDate(FromInputDate(date)); got != date {
			t.Fatalf("input round-trip broke %q, got %q", date, got)
		}
	}
}
