package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"
)

const (
	storeTimeout = 5 * time.Second
	// localLayout is a bound without a zone, read as UTC.
	localLayout = "2006-01-02T15:04:05.999999999"
)

type Queue interface {
	Enqueue(req model.PaymentRequest)
}

type Store interface {
	GetSummary(ctx context.Context, from, to *time.Time) ([]model.TransactionRecord, error)
	ClearAllTransactions(ctx context.Context) error
}

type Handler struct {
	Queue Queue
	Store Store
}

func NewHandler(q Queue, s Store) *Handler {
	return &Handler{Queue: q, Store: s}
}

// Route is the fasthttp entry point.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/payments":
		h.PostPayments(ctx)
	case "/payments-summary":
		h.GetSummary(ctx)
	case "/purge-payments":
		h.PurgePayments(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

// PostPayments only queues the payment. The answer never reflects whether
// it was processed.
func (h *Handler) PostPayments(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	var req model.PaymentRequest
	if err := easyjson.Unmarshal(ctx.PostBody(), &req); err != nil || req.CorrelationID == "" || !req.Amount.IsPositive() {
		ctx.Error("Bad Request", fasthttp.StatusBadRequest)
		return
	}

	h.Queue.Enqueue(req)
	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (h *Handler) PurgePayments(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	sctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.Store.ClearAllTransactions(sctx); err != nil {
		slog.Error("Error purging transactions", "error", err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
}

func (h *Handler) GetSummary(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	from, err := parseBound(ctx.QueryArgs().Peek("from"))
	if err != nil {
		ctx.Error("Invalid from", fasthttp.StatusBadRequest)
		return
	}
	to, err := parseBound(ctx.QueryArgs().Peek("to"))
	if err != nil {
		ctx.Error("Invalid to", fasthttp.StatusBadRequest)
		return
	}

	sctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	records, err := h.Store.GetSummary(sctx, from, to)
	if err != nil {
		slog.Error("Error getting summary", "error", err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}

	summary := model.Summarize(records)
	ctx.SetContentType("application/json")
	if _, err := easyjson.MarshalToWriter(summary, ctx); err != nil {
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}

// parseBound reads an optional RFC 3339 timestamp, or one without a zone
// taken as UTC. An empty value is an open bound.
func parseBound(raw []byte) (*time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		var lerr error
		if t, lerr = time.ParseInLocation(localLayout, string(raw), time.UTC); lerr != nil {
			return nil, err
		}
	}
	return &t, nil
}
