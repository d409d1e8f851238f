package model

import (
	"time"

	"github.com/shopspring/decimal"
)

//go:generate easyjson -all model.go

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RequestedAtLayout is the timestamp layout the processors expect.
const RequestedAtLayout = "2006-01-02T15:04:05.000Z"

type Processor string

const (
	ProcessorNone     Processor = ""
	ProcessorDefault  Processor = "default"
	ProcessorFallback Processor = "fallback"
)

func (p Processor) String() string {
	if p == ProcessorNone {
		return "none"
	}
	return string(p)
}

// PaymentRequest is what clients post to /payments.
type PaymentRequest struct {
	CorrelationID string          `json:"correlationId"`
	Amount        decimal.Decimal `json:"amount"`
}

// ProcessorRequest is the body sent to a payment processor. It is built
// again for every attempt.
type ProcessorRequest struct {
	CorrelationID string          `json:"correlationId"`
	Amount        decimal.Decimal `json:"amount"`
	RequestedAt   string          `json:"requestedAt"`
}

func NewProcessorRequest(req PaymentRequest, requestedAt time.Time) ProcessorRequest {
	return ProcessorRequest{
		CorrelationID: req.CorrelationID,
		Amount:        req.Amount,
		RequestedAt:   requestedAt.UTC().Format(RequestedAtLayout),
	}
}

type ServiceHealthResponse struct {
	Failing         bool `json:"failing"`
	MinResponseTime int  `json:"minResponseTime"`
}

// HealthSnapshot is the last known state of both processors. The zero value
// means both are healthy and nothing was observed yet.
type HealthSnapshot struct {
	LastUpdate          time.Time `json:"lastUpdate"`
	DefaultFailing      bool      `json:"defaultFailing"`
	DefaultMinRespTime  int       `json:"defaultMinRespTime"`
	FallbackFailing     bool      `json:"fallbackFailing"`
	FallbackMinRespTime int       `json:"fallbackMinRespTime"`
}

// TransactionRecord is one entry of the transaction log. ID keeps repeated
// payments with the same correlation id apart.
type TransactionRecord struct {
	ID            string          `json:"id"`
	CorrelationID string          `json:"correlationId"`
	Amount        decimal.Decimal `json:"amount"`
	Processor     Processor       `json:"processor"`
	RequestedAt   time.Time       `json:"requestedAt"`
}

type Summary struct {
	TotalRequests int             `json:"totalRequests"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

type SummaryResponse struct {
	Default  Summary `json:"default"`
	Fallback Summary `json:"fallback"`
}

// Summarize groups records by processor. Records of an unknown processor are
// ignored.
func Summarize(records []TransactionRecord) SummaryResponse {
	var resp SummaryResponse
	for _, r := range records {
		switch r.Processor {
		case ProcessorDefault:
			resp.Default.TotalRequests++
			resp.Default.TotalAmount = resp.Default.TotalAmount.Add(r.Amount)
		case ProcessorFallback:
			resp.Fallback.TotalRequests++
			resp.Fallback.TotalAmount = resp.Fallback.TotalAmount.Add(r.Amount)
		}
	}
	return resp
}
