package batch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmittedOutcomeDetailPlacement(t *testing.T) {
	tests := []struct {
		name        string
		result      SubmitResult
		wantData    string
		wantRaw     string
		wantError   string
		wantSuccess bool
	}{
		{
			name: "successful parsed response goes to data",
			result: SubmitResult{
				Success:    true,
				StatusCode: 200,
				ShipmentID: "SHP-1",
				Detail:     `{"success":true,"data":{"shipmentId":"SHP-1"}}`,
				ParsedJSON: true,
			},
			wantData:    `{"success":true,"data":{"shipmentId":"SHP-1"}}`,
			wantSuccess: true,
		},
		{
			name: "successful unparsed response goes to raw",
			result: SubmitResult{
				Success:    true,
				StatusCode: 201,
				Detail:     "Created",
			},
			wantRaw:     "Created",
			wantSuccess: true,
		},
		{
			name: "failed response goes to error",
			result: SubmitResult{
				Success:    false,
				StatusCode: 422,
				Detail:     `{"message":"duplicate PO"}`,
				ParsedJSON: true,
			},
			wantError: `{"message":"duplicate PO"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := SubmittedOutcome(4, "PO1", tt.result)

			assert.Equal(t, OutcomeSubmitted, outcome.Kind)
			assert.Equal(t, 4, outcome.RowNumber)
			assert.Equal(t, "PO1", outcome.PONumber)
			assert.Equal(t, tt.wantSuccess, outcome.Success)
			assert.Equal(t, tt.result.StatusCode, outcome.StatusCode)
			assert.Equal(t, tt.wantData, string(outcome.Data))
			assert.Equal(t, tt.wantRaw, outcome.RawResponse)
			assert.Equal(t, tt.wantError, outcome.Error)
		})
	}
}

func TestFailureOutcomes(t *testing.T) {
	validation := ValidationFailedOutcome(3, "PO2", "missing required fields: contact_email")
	assert.Equal(t, OutcomeValidationFailed, validation.Kind)
	assert.False(t, validation.Success)
	assert.Equal(t, "missing required fields: contact_email", validation.Error)

	construction := ConstructionFailedOutcome(5, "", "boom")
	assert.Equal(t, OutcomeConstructionFailed, construction.Kind)
	assert.False(t, construction.Success)
	assert.Equal(t, "boom", construction.Error)
}

func TestReportJSONShape(t *testing.T) {
	report := Report{
		BatchID:     "b1",
		TotalOrders: 2,
		Successful:  1,
		Failed:      1,
		Outcomes: []RowOutcome{
			SubmittedOutcome(2, "PO1", SubmitResult{Success: true, StatusCode: 200, Detail: `{"success":true}`, ParsedJSON: true}),
			ValidationFailedOutcome(3, "PO2", "missing required fields: pol"),
		},
	}

	encoded, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, "b1", decoded["batch_id"])
	assert.Equal(t, float64(2), decoded["total_orders"])
	results, ok := decoded["order_results"].([]any)
	require.True(t, ok, "report must expose outcomes as order_results")
	assert.Len(t, results, 2)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "error", "successful outcome must omit the error key")
	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "missing required fields: pol", second["error"])
}
