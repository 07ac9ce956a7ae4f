// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one valid manifest row. All three fields are trimmed and non-empty.
type Record struct {
	HijriYear     string `json:"hijri_year" yaml:"hijri_year"`
	HijriMonth    string `json:"hijri_month" yaml:"hijri_month"`
	CouncilNumber string `json:"council_number" yaml:"council_number"`
}

// Key returns the council key the record belongs to.
func (r Record) Key() CouncilKey {
	return CouncilKey{Year: r.HijriYear, Month: r.HijriMonth, Council: r.CouncilNumber}
}

// CouncilKey identifies one council session. Keys hold the raw trimmed
// manifest strings, so "3" and "03" are different keys even though they
// derive the same filename.
type CouncilKey struct {
	Year    string `json:"year" yaml:"year"`
	Month   string `json:"month" yaml:"month"`
	Council string `json:"council" yaml:"council"`
}
