package domain

import (
	"fmt"
	"strings"
	"time"
)

// Validity selectors understood by the registry.
const (
	ValidFromNow        = "NOW"
	ValidUntilOneYear   = "VALID1YEAR"
	wireDateSuffix      = "T00:00:00.000Z"
	vaccinationDateForm = time.DateOnly
)

// Vaccination is a single vaccination event applied to every animal in a batch.
// It is rendered into the registry's two record shapes by Record and LastRecord.
type Vaccination struct {
	Date         time.Time
	Manufacturer string
	Name         string
	BatchNumber  string
}

// VaccinationRecord is the wire shape of a vaccination. The absolute validity
// window is only present on the "last vaccination" rendering.
type VaccinationRecord struct {
	VaccineDate         string `json:"vaccineDate"`
	VaccineManufacturer string `json:"vaccineManufacturer"`
	VaccineName         string `json:"vaccineName"`
	BatchNumber         string `json:"batchNumber"`
	ValidFromSelection  string `json:"validFromSelection"`
	ValidUntilSelection string `json:"validUntilSelection"`
	ValidFrom           string `json:"validFrom,omitempty"`
	ValidUntil          string `json:"validUntil,omitempty"`
}

// ParseDate parses a YYYY-MM-DD vaccination date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(vaccinationDateForm, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid vaccination date %q, want YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// NewVaccination parses date and builds a Vaccination.
func NewVaccination(date, manufacturer, name, batchNumber string) (Vaccination, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Vaccination{}, err
	}
	return Vaccination{
		Date:         d,
		Manufacturer: manufacturer,
		Name:         name,
		BatchNumber:  batchNumber,
	}, nil
}

// ValidFrom is the first day the vaccination is valid: the vaccination date itself.
func (v Vaccination) ValidFrom() time.Time {
	return v.Date
}

// ValidUntil is one calendar year after ValidFrom.
func (v Vaccination) ValidUntil() time.Time {
	return AddYear(v.ValidFrom())
}

// Record renders the vaccination with relative validity selectors only.
func (v Vaccination) Record() VaccinationRecord {
	return VaccinationRecord{
		VaccineDate:         FormatWireDate(v.Date),
		VaccineManufacturer: v.Manufacturer,
		VaccineName:         v.Name,
		BatchNumber:         v.BatchNumber,
		ValidFromSelection:  ValidFromNow,
		ValidUntilSelection: ValidUntilOneYear,
	}
}

// LastRecord renders the vaccination with the absolute validity window attached.
func (v Vaccination) LastRecord() VaccinationRecord {
	r := v.Record()
	r.ValidFrom = FormatWireDate(v.ValidFrom())
	r.ValidUntil = FormatWireDate(v.ValidUntil())
	return r
}

// AddYear increments the year of d, keeping month and day.
// February 29 maps to February 28 of the following year.
func AddYear(d time.Time) time.Time {
	y, m, day := d.Date()
	if m == time.February && day == 29 {
		day = 28
	}
	return time.Date(y+1, m, day, 0, 0, 0, 0, time.UTC)
}

// FormatWireDate renders d as a midnight UTC timestamp, e.g. 2024-03-10T00:00:00.000Z.
func FormatWireDate(d time.Time) string {
	return d.Format(vaccinationDateForm) + wireDateSuffix
}
