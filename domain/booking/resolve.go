package booking

import (
	"strings"

	"bookflow/domain/sheet"
)

// Resolve iterates aliases in priority order and returns the row's value
// for the first alias that is present and non-empty; otherwise def.
// Absence is always representable as the default, so Resolve never fails.
func Resolve(row sheet.Row, aliases []string, def string) string {
	for _, label := range aliases {
		value, ok := row[label]
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value != "" {
			return value
		}
	}
	return def
}

// ResolveField resolves a canonical field through the alias table with an
// empty-string default.
func ResolveField(row sheet.Row, field Field) string {
	return Resolve(row, aliasTable[field], "")
}

// ResolveFieldDefault resolves a canonical field with an explicit default.
func ResolveFieldDefault(row sheet.Row, field Field, def string) string {
	return Resolve(row, aliasTable[field], def)
}
