package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func mustVaccination(t *testing.T, date string) Vaccination {
	t.Helper()
	v, err := NewVaccination(date, "Zoetis", "Versican Plus", "B-42")
	if err != nil {
		t.Fatalf("NewVaccination(%q) error: %v", date, err)
	}
	return v
}

func TestAddYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-10", "2025-03-10"},
		{"2023-12-31", "2024-12-31"},
		{"2024-01-01", "2025-01-01"},
		{"2023-02-28", "2024-02-28"},
		{"2024-02-29", "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
			}
			if got := AddYear(d).Format(time.DateOnly); got != tt.want {
				t.Errorf("AddYear(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "10.03.2024", "2024-13-01", "2024-02-30", "2024/03/10"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) expected error", in)
		}
	}
}

func TestFormatWireDate(t *testing.T) {
	d := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatWireDate(d); got != "2024-03-10T00:00:00.000Z" {
		t.Errorf("FormatWireDate() = %q", got)
	}
}

func TestVaccinationRecord(t *testing.T) {
	v := mustVaccination(t, "2024-03-10")

	r := v.Record()
	if r.VaccineDate != "2024-03-10T00:00:00.000Z" {
		t.Errorf("VaccineDate = %q", r.VaccineDate)
	}
	if r.ValidFromSelection != "NOW" || r.ValidUntilSelection != "VALID1YEAR" {
		t.Errorf("selectors = %q/%q, want NOW/VALID1YEAR", r.ValidFromSelection, r.ValidUntilSelection)
	}
	if r.ValidFrom != "" || r.ValidUntil != "" {
		t.Errorf("Record() carries absolute window %q..%q, want none", r.ValidFrom, r.ValidUntil)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "validFrom\"") || strings.Contains(string(data), "validUntil\"") {
		t.Errorf("vaccination JSON has absolute dates: %s", data)
	}
}

func TestVaccinationLastRecord(t *testing.T) {
	v := mustVaccination(t, "2024-03-10")

	last := v.LastRecord()
	if last.ValidFrom != "2024-03-10T00:00:00.000Z" {
		t.Errorf("ValidFrom = %q", last.ValidFrom)
	}
	if last.ValidUntil != "2025-03-10T00:00:00.000Z" {
		t.Errorf("ValidUntil = %q", last.ValidUntil)
	}

	base := v.Record()
	last.ValidFrom, last.ValidUntil = "", ""
	if last != base {
		t.Errorf("LastRecord() shared fields differ from Record():\n got %+v\nwant %+v", last, base)
	}
}
