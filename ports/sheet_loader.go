package ports

import (
	"bookflow/domain/sheet"
)

// SheetLoader turns raw workbook bytes into a header-resolved table.
type SheetLoader interface {
	Load(data []byte) (sheet.Table, error)
}
