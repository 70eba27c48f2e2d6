package bookingapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookflow/domain/booking"
	"bookflow/internal/config"
	"bookflow/ports"
)

func testConfig(timeout time.Duration) config.BookingConfig {
	return config.BookingConfig{
		Timeout:     timeout,
		CompanyCode: "CUST001",
	}
}

func testRecord() booking.Record {
	return booking.Record{
		PONumber:          "PO123",
		ContactEmail:      "ops@example.com",
		PickupAddress:     "1 Dock Rd, Boston, MA, USA",
		DeliveryAddress:   "2 Quay St, Felixstowe, UK",
		POL:               "USA",
		POD:               "UK",
		Commodity:         "8471.30",
		CargoReadyDate:    "2025-04-05T00:00:00",
		GoodsRequiredDate: "2025-04-12T00:00:00",
		Containers:        []booking.ContainerItem{{Type: "20ft Standard", Quantity: 2}},
		Incoterms:         "FOB",
		Stage:             "quote_requested",
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"shipmentId":"SHP-42"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(5*time.Second), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if result.ShipmentID != "SHP-42" {
		t.Errorf("ShipmentID = %q, want SHP-42", result.ShipmentID)
	}
	if !result.ParsedJSON {
		t.Error("expected ParsedJSON for a JSON response body")
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q, want Bearer tok", gotAuth)
	}
	if gotBody["po_number"] != "PO123" {
		t.Errorf("payload po_number = %v, want PO123", gotBody["po_number"])
	}
	if gotBody["company_code"] != "CUST001" {
		t.Errorf("payload company_code = %v, want CUST001", gotBody["company_code"])
	}
	containers, ok := gotBody["containers"].(map[string]any)
	if !ok {
		t.Fatalf("payload containers is %T, want object", gotBody["containers"])
	}
	if containers["total_booking_price"] != "" || containers["price_matched"] != false {
		t.Errorf("container placeholders wrong: %+v", containers)
	}
}

func TestSubmitNon2xxJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"duplicate PO number"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(5*time.Second), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if result.Success {
		t.Fatal("expected failure for 422 response")
	}
	if result.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want 422", result.StatusCode)
	}
	if !strings.Contains(result.Detail, "duplicate PO number") {
		t.Errorf("Detail = %q, want the error body", result.Detail)
	}
}

func TestSubmitSuccessNonJSONBodyIsCapped(t *testing.T) {
	long := strings.Repeat("y", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(long))
	}))
	defer server.Close()

	client := NewClient(testConfig(5*time.Second), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if !result.Success {
		t.Fatalf("expected success for 200 response, got %+v", result)
	}
	if result.ParsedJSON {
		t.Error("plain text body must not be marked as parsed JSON")
	}
	// The success-path raw fallback keeps more of the body than the
	// error-path text cap.
	if len(result.Detail) != jsonDetailCap+len("...") {
		t.Errorf("Detail length = %d, want %d", len(result.Detail), jsonDetailCap+3)
	}
}

func TestSubmitNon2xxTextErrorIsCapped(t *testing.T) {
	long := strings.Repeat("x", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(long))
	}))
	defer server.Close()

	client := NewClient(testConfig(5*time.Second), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if result.Success {
		t.Fatal("expected failure for 502 response")
	}
	if len(result.Detail) != textDetailCap+len("...") {
		t.Errorf("Detail length = %d, want %d", len(result.Detail), textDetailCap+3)
	}
	if !strings.HasSuffix(result.Detail, "...") {
		t.Errorf("capped Detail should end with ellipsis, got %q", result.Detail[len(result.Detail)-10:])
	}
}

func TestSubmitTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(testConfig(50*time.Millisecond), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if result.Success {
		t.Fatal("expected failure on timeout")
	}
	if result.StatusCode != http.StatusRequestTimeout {
		t.Errorf("StatusCode = %d, want 408", result.StatusCode)
	}
	if !strings.Contains(result.Detail, "timed out") {
		t.Errorf("Detail = %q, want a timeout message", result.Detail)
	}
}

func TestSubmitConnectionError(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(testConfig(2*time.Second), "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: url, Token: "tok"})

	if result.Success {
		t.Fatal("expected failure on connection error")
	}
	if result.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", result.StatusCode)
	}
	if !strings.Contains(result.Detail, "connection error") {
		t.Errorf("Detail = %q, want a connection error message", result.Detail)
	}
}

func TestSubmitExtendedSendsSecondTaggedRequest(t *testing.T) {
	type seen struct {
		variant string
		body    map[string]any
	}
	var requests []seen
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		json.Unmarshal(body, &decoded)
		requests = append(requests, seen{variant: r.Header.Get("X-Payload-Variant"), body: decoded})
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	cfg := testConfig(5 * time.Second)
	cfg.ExtendedPayload = true
	client := NewClient(cfg, "v2")
	result := client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].variant != "" {
		t.Errorf("first request variant = %q, want empty", requests[0].variant)
	}
	if requests[1].variant != "extended" {
		t.Errorf("second request variant = %q, want extended", requests[1].variant)
	}
	if _, ok := requests[0].body["metadata"]; ok {
		t.Error("standard payload must not carry metadata")
	}
	meta, ok := requests[1].body["metadata"].(map[string]any)
	if !ok {
		t.Fatal("extended payload missing metadata block")
	}
	if meta["template_version"] != "v2" {
		t.Errorf("metadata template_version = %v, want v2", meta["template_version"])
	}
}

func TestSubmitStandardPayloadOnlyByDefault(t *testing.T) {
	var count int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(5*time.Second), "v2")
	client.Submit(context.Background(), testRecord(), ports.Target{Endpoint: server.URL, Token: "tok"})

	if count != 1 {
		t.Errorf("expected exactly 1 request with extended payload disabled, got %d", count)
	}
}
