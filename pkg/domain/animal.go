package domain

// Animal is a registry record returned by the transponder lookup.
// Only the id is consumed; the remaining fields are informational.
type Animal struct {
	ID          int    `json:"id"`
	Transponder string `json:"transponder,omitempty"`
	Name        string `json:"name,omitempty"`
}
