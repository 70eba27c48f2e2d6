package sheet

import "strings"

// Row maps a trimmed header label to the raw cell text for one data row.
// Cells arrive as strings regardless of the source cell type; coercion
// happens downstream.
type Row map[string]string

// Table is the re-based worksheet after header resolution: trimmed header
// labels plus data rows in original sheet order.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`

	// HeaderRow is the zero-based index of the row that was promoted to
	// header within the raw sheet. Used to report absolute sheet row
	// numbers in batch results.
	HeaderRow int `json:"header_row"`

	// HeaderFound reports whether any marker token matched. When false the
	// table was built from whatever labels were already present.
	HeaderFound bool `json:"header_found"`
}

// Get returns the cell under label, or "" if the column is absent.
func (r Row) Get(label string) string {
	return r[label]
}

// IsEmpty reports whether every cell in the row is blank after trimming.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
