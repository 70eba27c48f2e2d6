package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"bookflow/domain/batch"
	"bookflow/domain/booking"
	"bookflow/internal/batchid"
	"bookflow/internal/config"
	"bookflow/ports"

	"github.com/tidwall/gjson"
)

const (
	jsonDetailCap = 500
	textDetailCap = 200
)

// Client submits booking records to the Booking Service over HTTPS.
// One attempt per record; classification of the outcome is the caller's
// signal for retry decisions, which currently nobody makes.
type Client struct {
	httpClient      *http.Client
	timeout         time.Duration
	companyCode     string
	templateVersion string
	extended        bool
}

// NewClient creates a Booking Service client. The endpoint and token are
// per-batch and arrive through the Target, not here.
func NewClient(cfg config.BookingConfig, templateVersion string) *Client {
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		timeout:         cfg.Timeout,
		companyCode:     cfg.CompanyCode,
		templateVersion: templateVersion,
		extended:        cfg.ExtendedPayload,
	}
}

var _ ports.Submitter = (*Client)(nil)

// Submit sends one record and classifies the result. When the extended
// payload is enabled a second, tagged request follows the standard one;
// the extended send is best-effort and never changes the outcome of the
// standard submission.
func (c *Client) Submit(ctx context.Context, rec booking.Record, target ports.Target) batch.SubmitResult {
	id := batchid.FromContext(ctx)
	log.Printf("[Submitter] [%s] Submitting PO %s to %s (token %s)",
		id, rec.PONumber, target.Endpoint, sanitizeSecret(target.Token, 5))

	result := c.send(ctx, standardPayload(rec, c.companyCode), target, "")

	if c.extended && result.Success {
		ext := c.send(ctx, c.extendedPayload(rec, id), target, "extended")
		if !ext.Success {
			log.Printf("[Submitter] [%s] Extended payload send failed for PO %s: status %d", id, rec.PONumber, ext.StatusCode)
		}
	}

	return result
}

func (c *Client) send(ctx context.Context, payload map[string]any, target ports.Target, variant string) batch.SubmitResult {
	raw, err := json.Marshal(payload)
	if err != nil {
		return batch.SubmitResult{
			Success:    false,
			StatusCode: http.StatusInternalServerError,
			Detail:     fmt.Sprintf("failed to encode booking payload: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.Endpoint, bytes.NewReader(raw))
	if err != nil {
		return batch.SubmitResult{
			Success:    false,
			StatusCode: http.StatusInternalServerError,
			Detail:     fmt.Sprintf("failed to build booking request: %v", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+target.Token)
	if variant != "" {
		req.Header.Set("X-Payload-Variant", variant)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	durationMS := float64(time.Since(startTime).Microseconds()) / 1000

	if err != nil {
		return classifyTransportError(err, c.timeout, durationMS)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return batch.SubmitResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("failed to read booking response: %v", err),
			DurationMS: durationMS,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result := batch.SubmitResult{
			Success:    true,
			StatusCode: resp.StatusCode,
			DurationMS: durationMS,
		}
		if gjson.ValidBytes(body) {
			result.ParsedJSON = true
			result.Detail = string(body)
			result.ShipmentID = gjson.GetBytes(body, "data.shipmentId").String()
		} else {
			result.Detail = capText(string(body), jsonDetailCap)
		}
		return result
	}

	return batch.SubmitResult{
		Success:    false,
		StatusCode: resp.StatusCode,
		Detail:     errorDetail(body),
		DurationMS: durationMS,
	}
}

// classifyTransportError maps transport failures onto synthetic status
// codes: 408 for a timed-out request, 500 for everything else.
func classifyTransportError(err error, timeout time.Duration, durationMS float64) batch.SubmitResult {
	msg := err.Error()
	if isTimeout(err) {
		return batch.SubmitResult{
			Success:    false,
			StatusCode: http.StatusRequestTimeout,
			Detail:     fmt.Sprintf("booking request timed out after %s", timeout),
			DurationMS: durationMS,
		}
	}
	return batch.SubmitResult{
		Success:    false,
		StatusCode: http.StatusInternalServerError,
		Detail:     capText(fmt.Sprintf("connection error: %s", msg), jsonDetailCap),
		DurationMS: durationMS,
	}
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeouter); ok && t.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return strings.Contains(err.Error(), "context deadline exceeded")
}

// errorDetail extracts the failure detail from a non-2xx body. JSON
// bodies pass through capped; anything else becomes a short text blob.
func errorDetail(body []byte) string {
	if gjson.ValidBytes(body) {
		return capText(string(body), jsonDetailCap)
	}
	return capText(string(body), textDetailCap)
}

func capText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// standardPayload renders the wire shape the Booking Service accepts.
func standardPayload(rec booking.Record, companyCode string) map[string]any {
	containers := rec.Containers
	if containers == nil {
		containers = []booking.ContainerItem{}
	}
	return map[string]any{
		"pol":                 rec.POL,
		"pod":                 rec.POD,
		"pickup_address":      rec.PickupAddress,
		"delivery_address":    rec.DeliveryAddress,
		"cargo_ready_date":    rec.CargoReadyDate,
		"goods_required_date": rec.GoodsRequiredDate,
		"containers": map[string]any{
			"containers":          containers,
			"total_booking_price": "",
			"price_matched":       false,
			"price_matched_at":    time.Now().Format(time.RFC3339),
		},
		"commodity":             rec.Commodity,
		"factory_contact_email": rec.ContactEmail,
		"incoterms":             rec.Incoterms,
		"message":               rec.Message,
		"user_id":               "",
		"company_code":          firstNonEmpty(rec.CompanyCode, companyCode),
		"po_number":             rec.PONumber,
		"stage":                 rec.Stage,
	}
}

// extendedPayload augments the standard shape with the contact, cargo
// and tracing fields newer Booking Service versions accept.
func (c *Client) extendedPayload(rec booking.Record, batchID string) map[string]any {
	payload := standardPayload(rec, c.companyCode)
	payload["goods_description"] = rec.GoodsDescription
	payload["origin_contact"] = rec.OriginContact
	payload["origin_phone"] = rec.OriginPhone
	payload["destination_contact"] = rec.DestinationContact
	payload["destination_phone"] = rec.DestinationPhone
	payload["hazardous"] = rec.Hazardous
	payload["estimated_weight_kg"] = rec.EstimatedWeightKg
	payload["metadata"] = map[string]any{
		"template_version": c.templateVersion,
		"processed_at":     time.Now().Format(time.RFC3339),
		"batch_id":         batchID,
	}
	return payload
}

// sanitizeSecret keeps only a short prefix of a credential for logging.
func sanitizeSecret(s string, keep int) string {
	if s == "" {
		return "none"
	}
	if len(s) <= keep {
		return s + "..."
	}
	return s[:keep] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
