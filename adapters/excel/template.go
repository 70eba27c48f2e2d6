package excel

import (
	"fmt"

	"bookflow/domain/booking"
	"bookflow/internal/errors"

	"github.com/xuri/excelize/v2"
)

// templateColumn describes one Orders-sheet column of the generated
// template. Labels come from the alias table so generated workbooks
// always round-trip through the loader.
type templateColumn struct {
	field      booking.Field
	section    string
	required   bool
	width      float64
	validation string // "", "hazardous", "container", "incoterms"
	example    string
}

var templateColumns = []templateColumn{
	{booking.FieldCompanyCode, "Customer Information", true, 15, "", "CUST12345"},
	{booking.FieldPrimaryContact, "Customer Information", true, 20, "", "John Smith"},
	{booking.FieldContactEmail, "Customer Information", true, 25, "", "john.smith@abcshipping.com"},
	{booking.FieldContactPhone, "Customer Information", true, 15, "", "+1-555-123-4567"},

	{booking.FieldPONumber, "Order Details", true, 15, "", "PO78901"},
	{booking.FieldCargoReadyDate, "Order Details", true, 18, "", "2025-04-05"},
	{booking.FieldGoodsRequiredDate, "Order Details", true, 18, "", "2025-04-12"},
	{booking.FieldIncoterms, "Order Details", false, 12, "incoterms", "FOB"},
	{booking.FieldServiceType, "Order Details", false, 16, "", ""},

	{booking.FieldCommodity, "Shipment Details", true, 12, "", "8471.30"},
	{booking.FieldGoodsDescription, "Shipment Details", false, 30, "", "Electronic components - laptop parts"},
	{booking.FieldContainerType1, "Shipment Details", true, 16, "container", "20ft Standard"},
	{booking.FieldContainerCount1, "Shipment Details", true, 16, "", "2"},
	{booking.FieldContainerType2, "Shipment Details", false, 16, "container", ""},
	{booking.FieldContainerCount2, "Shipment Details", false, 16, "", ""},
	{booking.FieldContainerType3, "Shipment Details", false, 16, "container", ""},
	{booking.FieldContainerCount3, "Shipment Details", false, 16, "", ""},
	{booking.FieldWeightKg, "Shipment Details", false, 18, "", "1250.5"},
	{booking.FieldHazardous, "Shipment Details", true, 12, "hazardous", "No"},

	{booking.FieldPickupAddress, "Route", true, 40, "", "123 Industrial Parkway, Boston, MA, 02110, USA"},
	{booking.FieldDeliveryAddress, "Route", true, 40, "", "456 Commerce Street, Los Angeles, CA, 90001, USA"},
	{booking.FieldPortOfLoading, "Route", false, 16, "", ""},
	{booking.FieldPortOfDischarge, "Route", false, 16, "", ""},

	{booking.FieldOriginContact, "Site Contacts", false, 20, "", "Sarah Johnson"},
	{booking.FieldOriginPhone, "Site Contacts", false, 16, "", "+1-555-987-6543"},
	{booking.FieldDestContact, "Site Contacts", false, 20, "", "Michael Brown"},
	{booking.FieldDestPhone, "Site Contacts", false, 16, "", "+1-555-789-0123"},

	{booking.FieldInstructions, "Additional", false, 30, "", "Please handle with care."},
}

var containerTypeOptions = []string{
	"20ft Standard",
	"40ft Standard",
	"40ft High Cube",
	"45ft High Cube",
}

var hazardousOptions = []string{"Yes", "No"}

var incotermsOptions = []string{"EXW", "FCA", "FOB", "CFR", "CIF", "DAP", "DDP"}

// templateDataRows is how many fillable rows get styling and validation.
const templateDataRows = 100

// BuildTemplate generates the order template workbook: an Instructions
// sheet, the Orders sheet users fill in, and a Reference sheet backing
// the dropdown validations.
func BuildTemplate(version string) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", "Instructions")
	if _, err := f.NewSheet(ordersSheetName); err != nil {
		return nil, errors.Wrap(err, "failed to create Orders sheet")
	}
	if _, err := f.NewSheet("Reference"); err != nil {
		return nil, errors.Wrap(err, "failed to create Reference sheet")
	}

	if err := writeReferenceSheet(f); err != nil {
		return nil, err
	}
	if err := writeInstructionsSheet(f, version); err != nil {
		return nil, err
	}
	if err := writeOrdersSheet(f); err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(ordersSheetName)
	if err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func writeReferenceSheet(f *excelize.File) error {
	headerStyle, err := headerStyleID(f)
	if err != nil {
		return err
	}

	headers := []string{"Container Types", "Hazardous Options", "Incoterms"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue("Reference", col+"1", h)
	}
	f.SetCellStyle("Reference", "A1", "C1", headerStyle)

	for i, v := range containerTypeOptions {
		f.SetCellValue("Reference", fmt.Sprintf("A%d", i+2), v)
	}
	for i, v := range hazardousOptions {
		f.SetCellValue("Reference", fmt.Sprintf("B%d", i+2), v)
	}
	for i, v := range incotermsOptions {
		f.SetCellValue("Reference", fmt.Sprintf("C%d", i+2), v)
	}

	f.SetColWidth("Reference", "A", "C", 18)
	return nil
}

func writeInstructionsSheet(f *excelize.File, version string) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 16, Bold: true},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create title style")
	}

	f.SetCellValue("Instructions", "A1", "SHIPPING ORDER TEMPLATE INSTRUCTIONS")
	f.SetCellStyle("Instructions", "A1", "A1", titleStyle)

	lines := []string{
		"",
		"This template is designed to help you submit multiple shipping orders efficiently.",
		"",
		"1. Navigate to the 'Orders' sheet to enter your shipping information.",
		"2. Each row represents one shipping order.",
		"3. Required fields are highlighted in yellow.",
		"4. Use the dropdown menus where available.",
		"5. Dates should be entered in the format YYYY-MM-DD (e.g., 2025-04-15).",
		"6. Do not modify the header row or column structure.",
		"7. Do not merge cells as this will affect our processing system.",
		"8. An example order has been filled in the first row for your reference.",
		"",
		"Template version: " + version,
	}
	for i, text := range lines {
		f.SetCellValue("Instructions", fmt.Sprintf("A%d", i+2), text)
	}

	f.SetColWidth("Instructions", "A", "B", 60)
	return nil
}

func writeOrdersSheet(f *excelize.File) error {
	headerStyle, err := headerStyleID(f)
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"C5D9F1"}, Pattern: 1},
		Font:      &excelize.Font{Family: "Arial", Size: 11, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create section style")
	}
	requiredStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFEB9C"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create required style")
	}

	// Section banner on row 1, header labels on row 2, example on row 3.
	sectionStart := map[string]int{}
	sectionEnd := map[string]int{}

	for i, col := range templateColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		label := booking.PreferredLabel(col.field)

		f.SetCellValue(ordersSheetName, colName+"2", label)
		f.SetColWidth(ordersSheetName, colName, colName, col.width)

		if _, ok := sectionStart[col.section]; !ok {
			sectionStart[col.section] = i + 1
		}
		sectionEnd[col.section] = i + 1

		if col.required {
			f.SetCellStyle(ordersSheetName,
				fmt.Sprintf("%s3", colName),
				fmt.Sprintf("%s%d", colName, templateDataRows+2),
				requiredStyle)
		}
		if col.example != "" {
			f.SetCellValue(ordersSheetName, colName+"3", col.example)
		}

		if err := addColumnValidation(f, colName, col.validation); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(templateColumns))
	f.SetCellStyle(ordersSheetName, "A2", lastCol+"2", headerStyle)

	for section, start := range sectionStart {
		startCol, _ := excelize.ColumnNumberToName(start)
		endCol, _ := excelize.ColumnNumberToName(sectionEnd[section])
		if err := f.MergeCell(ordersSheetName, startCol+"1", endCol+"1"); err != nil {
			return errors.Wrapf(err, "failed to merge section banner %q", section)
		}
		f.SetCellValue(ordersSheetName, startCol+"1", section)
		f.SetCellStyle(ordersSheetName, startCol+"1", endCol+"1", sectionStyle)
	}

	// Keep banner and header visible while scrolling data rows.
	if err := f.SetPanes(ordersSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "failed to freeze header rows")
	}

	return nil
}

func addColumnValidation(f *excelize.File, colName, kind string) error {
	var options []string
	switch kind {
	case "hazardous":
		options = hazardousOptions
	case "container":
		options = containerTypeOptions
	case "incoterms":
		options = incotermsOptions
	default:
		return nil
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s3:%s%d", colName, colName, templateDataRows+2)
	if err := dv.SetDropList(options); err != nil {
		return errors.Wrapf(err, "failed to build %s drop list", kind)
	}
	if err := f.AddDataValidation(ordersSheetName, dv); err != nil {
		return errors.Wrapf(err, "failed to add %s validation", kind)
	}
	return nil
}

func headerStyleID(f *excelize.File) (int, error) {
	id, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Font:      &excelize.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1},
			{Type: "right", Style: 1},
			{Type: "top", Style: 1},
			{Type: "bottom", Style: 1},
		},
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to create header style")
	}
	return id, nil
}
