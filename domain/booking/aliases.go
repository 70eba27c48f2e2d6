package booking

// Field is a canonical booking attribute name, independent of any one
// template's column spelling.
type Field string

const (
	FieldCompanyCode       Field = "company_code"
	FieldPrimaryContact    Field = "primary_contact"
	FieldContactEmail      Field = "contact_email"
	FieldContactPhone      Field = "contact_phone"
	FieldPONumber          Field = "po_number"
	FieldCargoReadyDate    Field = "cargo_ready_date"
	FieldGoodsRequiredDate Field = "goods_required_date"
	FieldCommodity         Field = "commodity"
	FieldGoodsDescription  Field = "goods_description"
	FieldPickupAddress     Field = "pickup_address"
	FieldDeliveryAddress   Field = "delivery_address"
	FieldOriginAddress     Field = "origin_address"
	FieldOriginCity        Field = "origin_city"
	FieldOriginState       Field = "origin_state"
	FieldOriginCountry     Field = "origin_country"
	FieldOriginPostalCode  Field = "origin_postal_code"
	FieldOriginContact     Field = "origin_contact"
	FieldOriginPhone       Field = "origin_phone"
	FieldDestAddress       Field = "destination_address"
	FieldDestCity          Field = "destination_city"
	FieldDestState         Field = "destination_state"
	FieldDestCountry       Field = "destination_country"
	FieldDestPostalCode    Field = "destination_postal_code"
	FieldDestContact       Field = "destination_contact"
	FieldDestPhone         Field = "destination_phone"
	FieldContainerType1    Field = "container_type_1"
	FieldContainerCount1   Field = "container_count_1"
	FieldContainerType2    Field = "container_type_2"
	FieldContainerCount2   Field = "container_count_2"
	FieldContainerType3    Field = "container_type_3"
	FieldContainerCount3   Field = "container_count_3"
	FieldQuantity          Field = "quantity"
	FieldWeightKg          Field = "weight_kg"
	FieldLengthCm          Field = "length_cm"
	FieldWidthCm           Field = "width_cm"
	FieldHeightCm          Field = "height_cm"
	FieldHazardous         Field = "hazardous"
	FieldPortOfLoading     Field = "port_of_loading"
	FieldPortOfDischarge   Field = "port_of_discharge"
	FieldIncoterms         Field = "incoterms"
	FieldServiceType       Field = "service_type"
	FieldInstructions      Field = "special_instructions"
)

// aliasTable maps each canonical field to the ordered list of raw column
// labels that may carry it, most preferred first. The first alias is the
// spelling the template generator emits, so generated workbooks always
// round-trip. New template versions extend this table instead of code.
var aliasTable = map[Field][]string{
	FieldCompanyCode:       {"Customer Code", "customer_code", "Company Code"},
	FieldPrimaryContact:    {"Primary Contact", "primary_contact", "Contact Name"},
	FieldContactEmail:      {"Contact Email", "contact_email", "Email"},
	FieldContactPhone:      {"Contact Phone", "contact_phone", "Phone"},
	FieldPONumber:          {"PO Number", "po_number", "Purchase Order", "PO"},
	FieldCargoReadyDate:    {"Cargo Ready Date", "Pickup Date", "pickup_date", "cargo_ready_date"},
	FieldGoodsRequiredDate: {"Goods Required Date", "Delivery Date", "delivery_date", "goods_required_date"},
	FieldCommodity:         {"HS Code", "hs_code", "Commodity Code", "Commodity"},
	FieldGoodsDescription:  {"Goods Description", "goods_description", "Description"},
	FieldPickupAddress:     {"Pickup Address", "pickup_address"},
	FieldDeliveryAddress:   {"Delivery Address", "delivery_address"},
	FieldOriginAddress:     {"Origin Address", "origin_address"},
	FieldOriginCity:        {"Origin City", "origin_city"},
	FieldOriginState:       {"Origin State", "origin_state"},
	FieldOriginCountry:     {"Origin Country", "origin_country"},
	FieldOriginPostalCode:  {"Origin Postal Code", "origin_postal_code"},
	FieldOriginContact:     {"Origin Contact", "origin_contact"},
	FieldOriginPhone:       {"Origin Phone", "origin_phone"},
	FieldDestAddress:       {"Destination Address", "destination_address"},
	FieldDestCity:          {"Destination City", "destination_city"},
	FieldDestState:         {"Destination State", "destination_state"},
	FieldDestCountry:       {"Destination Country", "destination_country"},
	FieldDestPostalCode:    {"Destination Postal Code", "destination_postal_code"},
	FieldDestContact:       {"Destination Contact", "destination_contact"},
	FieldDestPhone:         {"Destination Phone", "destination_phone"},
	FieldContainerType1:    {"Container Type 1", "Container Type", "container_type_1", "container_type"},
	FieldContainerCount1:   {"Container Count 1", "Container Count", "container_count_1", "container_count"},
	FieldContainerType2:    {"Container Type 2", "container_type_2"},
	FieldContainerCount2:   {"Container Count 2", "container_count_2"},
	FieldContainerType3:    {"Container Type 3", "container_type_3"},
	FieldContainerCount3:   {"Container Count 3", "container_count_3"},
	FieldQuantity:          {"Quantity", "quantity"},
	FieldWeightKg:          {"Estimated Weight Kg", "Weight Kg", "weight_kg", "Gross Weight"},
	FieldLengthCm:          {"Length Cm", "length_cm"},
	FieldWidthCm:           {"Width Cm", "width_cm"},
	FieldHeightCm:          {"Height Cm", "height_cm"},
	FieldHazardous:         {"Hazardous", "hazardous"},
	FieldPortOfLoading:     {"Port of Loading", "POL", "Origin Port", "port_of_loading"},
	FieldPortOfDischarge:   {"Port of Discharge", "POD", "Destination Port", "port_of_discharge"},
	FieldIncoterms:         {"Incoterms", "incoterms"},
	FieldServiceType:       {"Service Type", "service_type", "Service"},
	FieldInstructions:      {"Special Instructions", "special_instructions", "Message", "Notes"},
}

// PreferredLabel returns the column spelling the current template emits
// for a canonical field.
func PreferredLabel(field Field) string {
	aliases := aliasTable[field]
	if len(aliases) == 0 {
		return string(field)
	}
	return aliases[0]
}
