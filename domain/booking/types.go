package booking

// UnknownLocation is the sentinel returned when no recognizable country
// token is found in a free-text address and no explicit port column was
// supplied. The validator treats it as a missing value; it is deliberately
// distinct from "" so that a derived-but-unusable location can be told
// apart from a column that was never present.
const UnknownLocation = "Unknown"

// Default values applied when the source row carries no explicit override.
const (
	DefaultIncoterms = "FOB"
	DefaultStage     = "quote_requested"
)

// ContainerItem is one container line on a booking: an equipment type
// label and a positive quantity.
type ContainerItem struct {
	Type     string `json:"containerType"`
	Quantity int    `json:"quantity"`
}

// Record is the canonical, derived representation of one order row. It is
// built once per row, may be adjusted by explicit overrides immediately
// after construction, and is never mutated once submission begins.
type Record struct {
	CompanyCode    string `json:"company_code"`
	PrimaryContact string `json:"primary_contact"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	PONumber       string `json:"po_number"`

	// ISO-8601 timestamps; unparseable source values pass through verbatim
	// and are caught by downstream validation of emptiness only.
	CargoReadyDate    string `json:"cargo_ready_date"`
	GoodsRequiredDate string `json:"goods_required_date"`

	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`

	// POL/POD are derived location codes (country or port). May hold the
	// UnknownLocation sentinel.
	POL string `json:"pol"`
	POD string `json:"pod"`

	Commodity        string `json:"commodity"`
	GoodsDescription string `json:"goods_description"`

	Containers []ContainerItem `json:"containers"`

	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	Hazardous         bool    `json:"hazardous"`
	Incoterms         string  `json:"incoterms"`
	Message           string  `json:"message"`
	Stage             string  `json:"stage"`

	OriginContact      string `json:"origin_contact"`
	OriginPhone        string `json:"origin_phone"`
	DestinationContact string `json:"destination_contact"`
	DestinationPhone   string `json:"destination_phone"`
}
