package booking

import (
	"strings"

	"bookflow/domain/sheet"
)

// countryToken pairs a recognizable spelling with the canonical code the
// derived location should carry.
type countryToken struct {
	token     string
	canonical string
}

// countryTokens is the fixed recognition list. Longer spellings are
// matched by case-insensitive containment; tokens of three characters or
// fewer only match a whole segment, so "US" does not fire inside
// "AUSTIN". Order matters: more specific spellings come first.
var countryTokens = []countryToken{
	{"United States of America", "USA"},
	{"United States", "USA"},
	{"USA", "USA"},
	{"US", "USA"},
	{"United Kingdom", "UK"},
	{"Great Britain", "UK"},
	{"UK", "UK"},
	{"Canada", "Canada"},
	{"Mexico", "Mexico"},
	{"France", "France"},
	{"Germany", "Germany"},
	{"China", "China"},
	{"Japan", "Japan"},
	{"Australia", "Australia"},
	{"Brazil", "Brazil"},
	{"India", "India"},
}

// Build assembles a canonical Record from one resolved row. Construction
// is best-effort and structurally total: resolvers and coercers never
// fail, so semantic completeness is deferred entirely to Validate. The
// error return exists for the construction-failure outcome path and is
// nil in normal operation.
func Build(row sheet.Row) (Record, error) {
	pickupAddr := resolveAddress(row, FieldPickupAddress,
		FieldOriginAddress, FieldOriginCity, FieldOriginState, FieldOriginPostalCode, FieldOriginCountry)
	deliveryAddr := resolveAddress(row, FieldDeliveryAddress,
		FieldDestAddress, FieldDestCity, FieldDestState, FieldDestPostalCode, FieldDestCountry)

	rec := Record{
		CompanyCode:    ResolveField(row, FieldCompanyCode),
		PrimaryContact: ResolveField(row, FieldPrimaryContact),
		ContactEmail:   ResolveField(row, FieldContactEmail),
		ContactPhone:   ResolveField(row, FieldContactPhone),
		PONumber:       ResolveField(row, FieldPONumber),

		CargoReadyDate:    CoerceDate(ResolveField(row, FieldCargoReadyDate)),
		GoodsRequiredDate: CoerceDate(ResolveField(row, FieldGoodsRequiredDate)),

		PickupAddress:   pickupAddr,
		DeliveryAddress: deliveryAddr,

		POL: deriveLocation(row, FieldOriginCountry, pickupAddr),
		POD: deriveLocation(row, FieldDestCountry, deliveryAddr),

		Commodity:        ResolveField(row, FieldCommodity),
		GoodsDescription: ResolveField(row, FieldGoodsDescription),

		Containers: buildContainers(row),

		EstimatedWeightKg: CoerceNumeric(ResolveField(row, FieldWeightKg), 0),
		Hazardous:         CoerceBool(ResolveFieldDefault(row, FieldHazardous, "No"), false),
		Incoterms:         DefaultIncoterms,
		Message:           ResolveField(row, FieldInstructions),
		Stage:             DefaultStage,

		OriginContact:      ResolveField(row, FieldOriginContact),
		OriginPhone:        ResolveField(row, FieldOriginPhone),
		DestinationContact: ResolveField(row, FieldDestContact),
		DestinationPhone:   ResolveField(row, FieldDestPhone),
	}

	applyOverrides(&rec, row)

	return rec, nil
}

// applyOverrides replaces derived values with explicit ones when the row
// carries a dedicated non-empty column. Overrides always win over
// derivation.
func applyOverrides(rec *Record, row sheet.Row) {
	if pol := ResolveField(row, FieldPortOfLoading); pol != "" {
		rec.POL = pol
	}
	if pod := ResolveField(row, FieldPortOfDischarge); pod != "" {
		rec.POD = pod
	}
	if incoterms := ResolveField(row, FieldIncoterms); incoterms != "" {
		rec.Incoterms = incoterms
	}
	if stage := ResolveField(row, FieldServiceType); stage != "" {
		rec.Stage = stage
	}
}

// resolveAddress prefers the dedicated free-text column and falls back to
// composing the address from its split-out parts, the layout older
// templates used.
func resolveAddress(row sheet.Row, direct Field, parts ...Field) string {
	if addr := ResolveField(row, direct); addr != "" {
		return addr
	}
	var segments []string
	for _, part := range parts {
		if v := ResolveField(row, part); v != "" {
			segments = append(segments, v)
		}
	}
	return strings.Join(segments, ", ")
}

// deriveLocation produces the POL/POD code for one side of the shipment.
// An explicit country column wins; otherwise the free-text address is
// mined for a country token.
func deriveLocation(row sheet.Row, countryField Field, address string) string {
	if country := ResolveField(row, countryField); country != "" {
		if canonical, ok := matchCountry(country); ok {
			return canonical
		}
		return country
	}
	return CountryFromAddress(address)
}

// CountryFromAddress extracts a country code from a free-text address.
// The address is split on commas and the last three segments are checked
// nearest-first against the recognition list. With no match the final
// segment is returned verbatim; an empty address yields UnknownLocation.
// This is a heuristic and sometimes wrong; it is kept as a named function
// so its failure modes stay visible and swappable.
func CountryFromAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return UnknownLocation
	}

	segments := strings.Split(address, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	checked := 0
	for i := len(segments) - 1; i >= 0 && checked < 3; i-- {
		if segments[i] == "" {
			continue
		}
		checked++
		if canonical, ok := matchCountry(segments[i]); ok {
			return canonical
		}
	}

	return segments[len(segments)-1]
}

// matchCountry checks one address segment against the recognition list.
func matchCountry(segment string) (string, bool) {
	lower := strings.ToLower(segment)
	for _, ct := range countryTokens {
		token := strings.ToLower(ct.token)
		if len(ct.token) <= 3 {
			if lower == token {
				return ct.canonical, true
			}
			continue
		}
		if strings.Contains(lower, token) {
			return ct.canonical, true
		}
	}
	return "", false
}

// buildContainers assembles up to three container line items in pair
// order. A pair contributes a line only when both its type and count
// resolve to non-empty, non-zero values. When no pair is present at all,
// the older dimensions-based layout is tried as a fallback.
func buildContainers(row sheet.Row) []ContainerItem {
	pairs := []struct {
		typeField  Field
		countField Field
	}{
		{FieldContainerType1, FieldContainerCount1},
		{FieldContainerType2, FieldContainerCount2},
		{FieldContainerType3, FieldContainerCount3},
	}

	var items []ContainerItem
	for _, pair := range pairs {
		typeLabel := ResolveField(row, pair.typeField)
		count := int(CoerceNumeric(ResolveField(row, pair.countField), 0))
		if typeLabel == "" || count <= 0 {
			continue
		}
		items = append(items, ContainerItem{Type: typeLabel, Quantity: count})
	}
	if len(items) > 0 {
		return items
	}

	return containersFromDimensions(row)
}

// containersFromDimensions derives a single container line from the
// package dimensions and quantity columns of the first template
// generation. No dimensions means no line items; an empty list is a
// validation failure, not a construction failure.
func containersFromDimensions(row sheet.Row) []ContainerItem {
	length := CoerceNumeric(ResolveField(row, FieldLengthCm), 0)
	width := CoerceNumeric(ResolveField(row, FieldWidthCm), 0)
	height := CoerceNumeric(ResolveField(row, FieldHeightCm), 0)
	if length <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	quantity := int(CoerceNumeric(ResolveField(row, FieldQuantity), 1))
	if quantity <= 0 {
		quantity = 1
	}

	return []ContainerItem{{
		Type:     ContainerTypeFromDimensions(length, width, height),
		Quantity: quantity,
	}}
}

// Cubic-centimeter capacity cut-offs for standard equipment sizes.
const (
	capacity20ftStd      = 33.2e6
	capacity40ftStd      = 67.7e6
	capacity40ftHighCube = 76.4e6
)

// ContainerTypeFromDimensions picks an equipment label from package
// dimensions in centimeters. A simplification carried over from the
// reference templates.
func ContainerTypeFromDimensions(lengthCm, widthCm, heightCm float64) string {
	volume := lengthCm * widthCm * heightCm
	switch {
	case volume <= capacity20ftStd:
		return "20ft Standard"
	case volume <= capacity40ftStd:
		return "40ft Standard"
	case volume <= capacity40ftHighCube:
		return "40ft High Cube"
	default:
		return "45ft High Cube"
	}
}
