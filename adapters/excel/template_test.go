package excel

import (
	"testing"

	"bookflow/domain/booking"
)

func TestBuildTemplateSheets(t *testing.T) {
	f, err := BuildTemplate("2.0")
	if err != nil {
		t.Fatalf("BuildTemplate returned error: %v", err)
	}
	defer f.Close()

	want := map[string]bool{"Instructions": false, "Orders": false, "Reference": false}
	for _, name := range f.GetSheetList() {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing sheet %q", name)
		}
	}
}

func TestTemplateRoundTripsThroughLoader(t *testing.T) {
	f, err := BuildTemplate("2.0")
	if err != nil {
		t.Fatalf("BuildTemplate returned error: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	table, err := NewLoader().Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !table.HeaderFound {
		t.Fatal("loader did not find the template header row")
	}

	// The example row must build into a valid record without edits.
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 example row, got %d", len(table.Rows))
	}
	rec, err := booking.Build(table.Rows[0])
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if result := booking.Validate(rec); !result.OK {
		t.Errorf("example row failed validation: %s", result.Reason)
	}
	if rec.PONumber != "PO78901" {
		t.Errorf("PONumber = %q, want PO78901", rec.PONumber)
	}
	if rec.CargoReadyDate != "2025-04-05T00:00:00" {
		t.Errorf("CargoReadyDate = %q, want 2025-04-05T00:00:00", rec.CargoReadyDate)
	}
}

func TestTemplateHeadersUsePreferredLabels(t *testing.T) {
	f, err := BuildTemplate("2.0")
	if err != nil {
		t.Fatalf("BuildTemplate returned error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ordersSheetName)
	if err != nil {
		t.Fatalf("read Orders rows: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("expected banner and header rows, got %d rows", len(rows))
	}

	headers := map[string]bool{}
	for _, h := range rows[1] {
		headers[h] = true
	}
	for _, field := range []booking.Field{
		booking.FieldPONumber,
		booking.FieldContactEmail,
		booking.FieldPickupAddress,
		booking.FieldDeliveryAddress,
		booking.FieldCargoReadyDate,
		booking.FieldGoodsRequiredDate,
		booking.FieldCommodity,
		booking.FieldHazardous,
	} {
		if label := booking.PreferredLabel(field); !headers[label] {
			t.Errorf("template header row missing %q", label)
		}
	}
}
