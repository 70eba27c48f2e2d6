package sheet

import (
	"strings"
)

// headerMarkersExact are column labels that identify an already-correct
// header row on a case-sensitive exact match.
var headerMarkersExact = []string{
	"PO Number",
	"po_number",
}

// headerMarkerTokens are lower-cased substrings that heuristically identify
// a header row buried in the data.
var headerMarkerTokens = []string{
	"po number",
	"primary contact",
}

// maxHeaderScanRows bounds the header sniffing scan.
const maxHeaderScanRows = 5

// Locate finds the true header row within a loosely structured sheet and
// re-bases the table under it.
//
// Resolution order:
//  1. The first row already carries a marker label (exact match): keep the
//     current layout.
//  2. The second row's cells contain a marker token (case-insensitive
//     substring): promote it to header.
//  3. Scan the first few rows for any cell containing a marker token; the
//     first hit is promoted to header.
//  4. No match: proceed with the first row as header. Table.HeaderFound is
//     false so the caller can log a warning; this is a soft failure.
//
// Rows above the promoted header are excluded from data. Header labels are
// trimmed and rows that are entirely empty are dropped. Duplicate header
// labels are not de-duplicated: the first column with a given label wins
// and later duplicates are unreachable, matching the reference behavior.
func Locate(raw [][]string) Table {
	if len(raw) == 0 {
		return Table{HeaderRow: 0, HeaderFound: false}
	}

	headerIdx := 0
	found := false

	if rowHasExactMarker(raw[0]) {
		found = true
	} else if len(raw) > 1 && rowHasMarkerToken(raw[1]) {
		headerIdx = 1
		found = true
	} else {
		limit := maxHeaderScanRows
		if len(raw) < limit {
			limit = len(raw)
		}
		for i := 0; i < limit; i++ {
			if rowHasMarkerToken(raw[i]) {
				headerIdx = i
				found = true
				break
			}
		}
	}

	return rebase(raw, headerIdx, found)
}

// rebase builds a Table with raw[headerIdx] as the header and everything
// after it as data.
func rebase(raw [][]string, headerIdx int, found bool) Table {
	headers := make([]string, len(raw[headerIdx]))
	for i, label := range raw[headerIdx] {
		headers[i] = strings.TrimSpace(label)
	}

	var rows []Row
	for i := headerIdx + 1; i < len(raw); i++ {
		row := make(Row, len(headers))
		for j, cell := range raw[i] {
			if j >= len(headers) {
				break
			}
			label := headers[j]
			if label == "" {
				continue
			}
			// First column with a given label wins.
			if _, exists := row[label]; !exists {
				row[label] = strings.TrimSpace(cell)
			}
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}

	return Table{
		Headers:     headers,
		Rows:        rows,
		HeaderRow:   headerIdx,
		HeaderFound: found,
	}
}

func rowHasExactMarker(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		for _, marker := range headerMarkersExact {
			if cell == marker {
				return true
			}
		}
	}
	return false
}

func rowHasMarkerToken(row []string) bool {
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, token := range headerMarkerTokens {
			if strings.Contains(lower, token) {
				return true
			}
		}
	}
	return false
}
