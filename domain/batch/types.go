package batch

import (
	"encoding/json"
	"time"
)

// OutcomeKind is the terminal classification of processing one row.
type OutcomeKind string

const (
	// OutcomeSubmitted means the row reached the Booking Service; Success
	// distinguishes accepted from rejected submissions.
	OutcomeSubmitted OutcomeKind = "submitted"
	// OutcomeValidationFailed means the record failed validation and was
	// never submitted.
	OutcomeValidationFailed OutcomeKind = "validation_failed"
	// OutcomeConstructionFailed means record assembly itself failed. The
	// builder is effectively total, so this is a defensive classification.
	OutcomeConstructionFailed OutcomeKind = "construction_failed"
)

// SubmitResult classifies the outcome of one Booking Service call.
type SubmitResult struct {
	Success    bool
	StatusCode int
	ShipmentID string
	// Detail carries the response body: parsed JSON when ParsedJSON is
	// true, otherwise capped raw text.
	Detail     string
	ParsedJSON bool
	DurationMS float64
}

// RowOutcome is the immutable result of processing one spreadsheet row.
type RowOutcome struct {
	RowNumber       int             `json:"row_number"`
	PONumber        string          `json:"po_number"`
	Kind            OutcomeKind     `json:"kind"`
	Success         bool            `json:"success"`
	StatusCode      int             `json:"status_code,omitempty"`
	ShipmentID      string          `json:"shipment_id,omitempty"`
	Data            json.RawMessage `json:"data,omitempty"`
	RawResponse     string          `json:"raw_response,omitempty"`
	Error           string          `json:"error,omitempty"`
	ProcessingStart time.Time       `json:"processing_start"`
	ProcessingEnd   time.Time       `json:"processing_end"`
	DurationMS      float64         `json:"duration_ms,omitempty"`
}

// Report aggregates one batch run. It is owned by the orchestrator while
// the batch runs and handed to the caller afterwards; persistence is the
// caller's decision.
type Report struct {
	BatchID         string       `json:"batch_id"`
	TotalOrders     int          `json:"total_orders"`
	Successful      int          `json:"successful_orders"`
	Failed          int          `json:"failed_orders"`
	StartTime       time.Time    `json:"start_time"`
	EndTime         time.Time    `json:"end_time"`
	DurationSeconds float64      `json:"duration_seconds"`
	Error           string       `json:"error,omitempty"`
	Outcomes        []RowOutcome `json:"order_results"`
}

// SubmittedOutcome builds the row outcome for a completed submission.
func SubmittedOutcome(rowNumber int, poNumber string, result SubmitResult) RowOutcome {
	outcome := RowOutcome{
		RowNumber:  rowNumber,
		PONumber:   poNumber,
		Kind:       OutcomeSubmitted,
		Success:    result.Success,
		StatusCode: result.StatusCode,
		ShipmentID: result.ShipmentID,
		DurationMS: result.DurationMS,
	}
	switch {
	case result.Success && result.ParsedJSON:
		outcome.Data = json.RawMessage(result.Detail)
	case result.Success:
		outcome.RawResponse = result.Detail
	default:
		outcome.Error = result.Detail
	}
	return outcome
}

// ValidationFailedOutcome builds the row outcome for a validation reject.
func ValidationFailedOutcome(rowNumber int, poNumber, reason string) RowOutcome {
	return RowOutcome{
		RowNumber: rowNumber,
		PONumber:  poNumber,
		Kind:      OutcomeValidationFailed,
		Success:   false,
		Error:     reason,
	}
}

// ConstructionFailedOutcome builds the row outcome for a builder failure.
func ConstructionFailedOutcome(rowNumber int, poNumber, reason string) RowOutcome {
	return RowOutcome{
		RowNumber: rowNumber,
		PONumber:  poNumber,
		Kind:      OutcomeConstructionFailed,
		Success:   false,
		Error:     reason,
	}
}
