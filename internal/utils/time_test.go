package utils

import "testing"

func TestParseTravelDateTime(t *testing.T) {
	for _, in := range []string{"2025-09-01T10:00", "2025-09-01 10:00", "2025-09-01 10:00:00", "2025-09-01T10:00:00"} {
		got, err := ParseTravelDateTime(in)
		if err != nil {
			t.Fatalf("ParseTravelDateTime(%q) error: %v", in, err)
		}
		if FormatDateTime(got) != "2025-09-01 10:00" {
			t.Fatalf("ParseTravelDateTime(%q) = %s", in, FormatDateTime(got))
		}
	}
	if _, err := ParseTravelDateTime("tomorrow"); err == nil {
		t.Fatalf("expected error for free text")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-09-01")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(d) != "2025-09-01" {
		t.Fatalf("round trip gave %s", FormatDate(d))
	}
	if _, err := ParseDate("01/09/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}
