package booking

import (
	"strings"
)

// ValidationResult carries pass/fail plus a human-readable reason on
// failure.
type ValidationResult struct {
	OK     bool
	Reason string
}

// requiredField pairs the reported field name with its accessor. The
// slice order fixes the enumeration order of missing-field reasons.
var requiredFields = []struct {
	name  string
	value func(Record) string
}{
	{"po_number", func(r Record) string { return r.PONumber }},
	{"contact_email", func(r Record) string { return r.ContactEmail }},
	{"pickup_address", func(r Record) string { return r.PickupAddress }},
	{"delivery_address", func(r Record) string { return r.DeliveryAddress }},
	{"pol", func(r Record) string { return locationOrEmpty(r.POL) }},
	{"pod", func(r Record) string { return locationOrEmpty(r.POD) }},
	{"commodity", func(r Record) string { return r.Commodity }},
	{"cargo_ready_date", func(r Record) string { return r.CargoReadyDate }},
	{"goods_required_date", func(r Record) string { return r.GoodsRequiredDate }},
}

// locationOrEmpty maps the UnknownLocation sentinel to empty so required
// field checks treat it as missing.
func locationOrEmpty(loc string) string {
	if loc == UnknownLocation {
		return ""
	}
	return loc
}

// Validate checks a canonical record against the required-field and
// format rules. The reason for a required-field failure lists every
// missing field, comma-joined, in the fixed enumeration order. Format
// checks run only when all required fields are present. Dates are checked
// for presence only, not format; malformed dates are the Booking
// Service's to reject.
func Validate(rec Record) ValidationResult {
	var missing []string
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(rec)) == "" {
			missing = append(missing, rf.name)
		}
	}
	if len(missing) > 0 {
		return ValidationResult{
			OK:     false,
			Reason: "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	if !strings.Contains(rec.ContactEmail, "@") {
		return ValidationResult{OK: false, Reason: "invalid email format for contact_email"}
	}
	if len(rec.Containers) == 0 {
		return ValidationResult{OK: false, Reason: "missing container details"}
	}
	if strings.TrimSpace(rec.Containers[0].Type) == "" {
		return ValidationResult{OK: false, Reason: "first container line has no type"}
	}

	return ValidationResult{OK: true}
}
