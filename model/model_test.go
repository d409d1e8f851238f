package model

import (
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	records := []TransactionRecord{
		{CorrelationID: "a", Amount: decimal.RequireFromString("19.9"), Processor: ProcessorDefault},
		{CorrelationID: "b", Amount: decimal.RequireFromString("4.7"), Processor: ProcessorDefault},
		{CorrelationID: "c", Amount: decimal.RequireFromString("18.8"), Processor: ProcessorFallback},
		{CorrelationID: "d", Amount: decimal.RequireFromString("1"), Processor: ProcessorNone},
	}

	got := Summarize(records)

	if got.Default.TotalRequests != 2 {
		t.Errorf("Expected 2 default requests, got %d", got.Default.TotalRequests)
	}
	if !got.Default.TotalAmount.Equal(decimal.RequireFromString("24.6")) {
		t.Errorf("Expected default amount 24.6, got %s", got.Default.TotalAmount)
	}
	if got.Fallback.TotalRequests != 1 {
		t.Errorf("Expected 1 fallback request, got %d", got.Fallback.TotalRequests)
	}
	if !got.Fallback.TotalAmount.Equal(decimal.RequireFromString("18.8")) {
		t.Errorf("Expected fallback amount 18.8, got %s", got.Fallback.TotalAmount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	body, err := easyjson.Marshal(Summarize(nil))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"default":{"totalRequests":0,"totalAmount":0},"fallback":{"totalRequests":0,"totalAmount":0}}`
	if string(body) != want {
		t.Errorf("Expected %s, got %s", want, body)
	}
}

func TestPaymentRequestDecodesNumericAmount(t *testing.T) {
	t.Parallel()

	var req PaymentRequest
	if err := easyjson.Unmarshal([]byte(`{"correlationId":"abc","amount":19.90,"extra":[1,2]}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if req.CorrelationID != "abc" {
		t.Errorf("Expected correlationId 'abc', got '%s'", req.CorrelationID)
	}
	if !req.Amount.Equal(decimal.RequireFromString("19.9")) {
		t.Errorf("Expected amount 19.9, got %s", req.Amount)
	}
}

func TestPaymentRequestRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	var req PaymentRequest
	if err := easyjson.Unmarshal([]byte(`{"correlationId":`), &req); err == nil {
		t.Error("Expected error for truncated body")
	}
}

func TestNewProcessorRequest(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2025, 7, 15, 9, 30, 1, 123456789, loc)
	req := NewProcessorRequest(PaymentRequest{CorrelationID: "abc", Amount: decimal.RequireFromString("19.90")}, at)

	if req.RequestedAt != "2025-07-15T12:30:01.123Z" {
		t.Errorf("Expected UTC millisecond timestamp, got '%s'", req.RequestedAt)
	}

	body, err := easyjson.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"correlationId":"abc","amount":19.9,"requestedAt":"2025-07-15T12:30:01.123Z"}`
	if string(body) != want {
		t.Errorf("Expected %s, got %s", want, body)
	}
}

func TestHealthSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	in := HealthSnapshot{
		LastUpdate:          time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
		DefaultFailing:      true,
		DefaultMinRespTime:  1200,
		FallbackMinRespTime: 40,
	}
	body, err := easyjson.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out HealthSnapshot
	if err := easyjson.Unmarshal(body, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !out.LastUpdate.Equal(in.LastUpdate) || out.DefaultFailing != in.DefaultFailing ||
		out.DefaultMinRespTime != in.DefaultMinRespTime || out.FallbackFailing != in.FallbackFailing ||
		out.FallbackMinRespTime != in.FallbackMinRespTime {
		t.Errorf("Expected %+v, got %+v", in, out)
	}
}
