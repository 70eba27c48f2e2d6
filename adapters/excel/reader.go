package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookflow/domain/sheet"
	"bookflow/internal/errors"

	"github.com/xuri/excelize/v2"
)

// ordersSheetName is used when present; otherwise the first sheet wins.
const ordersSheetName = "Orders"

// Loader reads order workbooks into a header-resolved table. It handles
// both XLSX bytes (the gateway path) and local XLSX/CSV files (the CLI
// path).
type Loader struct{}

// NewLoader creates a workbook loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses workbook bytes, picks the Orders sheet (or the first one),
// and resolves the header row.
func (l *Loader) Load(data []byte) (sheet.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return sheet.Table{}, errors.SheetInvalid("failed to open workbook", err)
	}
	defer f.Close()
	log.Printf("[Loader] Workbook opened in %.2fms (%d bytes)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(data))

	sheetName := pickSheet(f)
	if sheetName == "" {
		return sheet.Table{}, errors.SheetInvalid("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return sheet.Table{}, errors.SheetInvalid(fmt.Sprintf("failed to read sheet %q", sheetName), err)
	}

	return l.locate(rows, sheetName), nil
}

// LoadFile reads a local .xlsx or .csv file. CSV support exists for the
// CLI only; the gateway always receives workbook bytes.
func (l *Loader) LoadFile(path string) (sheet.Table, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return l.loadCSV(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sheet.Table{}, errors.SheetInvalid(fmt.Sprintf("failed to read file %s", path), err)
	}
	return l.Load(data)
}

func (l *Loader) loadCSV(path string) (sheet.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return sheet.Table{}, errors.SheetInvalid(fmt.Sprintf("failed to open CSV file %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return sheet.Table{}, errors.SheetInvalid("failed to read CSV file", err)
	}

	return l.locate(rows, path), nil
}

// locate runs header resolution and logs the soft-failure case.
func (l *Loader) locate(rows [][]string, source string) sheet.Table {
	table := sheet.Locate(rows)
	if !table.HeaderFound {
		log.Printf("[Loader] Warning: could not find header row in %s, proceeding with existing columns", source)
	}
	log.Printf("[Loader] %s resolved: header row %d, %d columns, %d data rows",
		source, table.HeaderRow, len(table.Headers), len(table.Rows))
	return table
}

// pickSheet prefers the Orders sheet and falls back to the first one.
func pickSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	for _, name := range sheets {
		if name == ordersSheetName {
			return name
		}
	}
	return sheets[0]
}
